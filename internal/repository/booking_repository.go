package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/movie-magic/internal/model"
)

// BookingRepo persists ticket bookings in the 'bookings' table.
type BookingRepo struct{ DB *sql.DB }

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{DB: db} }

// Create inserts a booking row.  The caller is responsible for filling in
// the booking id, ownership fields and timestamp; bookings are never updated
// or deleted afterwards.
func (r *BookingRepo) Create(ctx context.Context, b model.Booking) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO bookings
		(booking_id, movie_name, date, time, theater, address, booked_by, user_name, seats, amount_paid, booking_time)
		VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		b.BookingID, b.MovieName, b.Date, b.Time, b.Theater, b.Address,
		b.BookedBy, b.UserName, b.Seats, b.AmountPaid, b.BookingTime)
	return err
}

// ListByEmail returns all bookings owned by the given account email, newest
// first.  Used by the authenticated home page to show booking history.
func (r *BookingRepo) ListByEmail(ctx context.Context, email string) ([]model.Booking, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT booking_id, movie_name, date, time, theater, address, booked_by, user_name, seats, amount_paid, booking_time
		FROM bookings WHERE booked_by=? ORDER BY booking_time DESC`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Booking
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(&b.BookingID, &b.MovieName, &b.Date, &b.Time, &b.Theater, &b.Address,
			&b.BookedBy, &b.UserName, &b.Seats, &b.AmountPaid, &b.BookingTime); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
