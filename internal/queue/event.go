// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingConfirmedEvent is published after a booking row has been written.
// It contains enough information for downstream consumers to log or notify
// without querying the primary database.
type BookingConfirmedEvent struct {
	BookingID   string `json:"booking_id"`
	MovieName   string `json:"movie_name"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Theater     string `json:"theater"`
	Address     string `json:"address"`
	BookedBy    string `json:"booked_by"`
	UserName    string `json:"user_name"`
	Seats       string `json:"seats"`
	AmountPaid  string `json:"amount_paid"`
	BookingTime string `json:"booking_time"`
}
