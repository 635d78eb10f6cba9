package model

// Booking mirrors a row of the `bookings` table.  Every showing field is a
// free-form string supplied by the client; there is no movie or showtime
// catalog to validate against, and seats/amount are opaque on purpose.
//
// Fields:
//
//	BookingID  – primary key, formatted MVM-<YYYYMMDD>-<8 hex chars>.
//	MovieName  – title as submitted by the booking form.
//	Date       – showing date string.
//	Time       – showing time string.
//	Theater    – theater name.
//	Address    – theater address.
//	BookedBy   – email of the account that created the booking.
//	UserName   – display name captured at booking time.
//	Seats      – free-form seat selection (e.g. "A1,A2").
//	AmountPaid – opaque amount string, stored unchanged.
//	BookingTime – RFC 3339 creation timestamp.
type Booking struct {
	BookingID   string // bookings.booking_id
	MovieName   string // bookings.movie_name
	Date        string // bookings.date
	Time        string // bookings.time
	Theater     string // bookings.theater
	Address     string // bookings.address
	BookedBy    string // bookings.booked_by
	UserName    string // bookings.user_name
	Seats       string // bookings.seats
	AmountPaid  string // bookings.amount_paid
	BookingTime string // bookings.booking_time
}
