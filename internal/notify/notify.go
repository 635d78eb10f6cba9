// Package notify delivers booking confirmations.  The default implementation
// simulates email by writing the confirmation text to the operational log;
// an AMQP implementation hands the booking to the message broker instead.
// Either way delivery is best effort: the booking handler logs a failure and
// carries on, it never rolls back the booking.
package notify

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/iliyamo/movie-magic/internal/model"
	"github.com/iliyamo/movie-magic/internal/queue"
	queue_publisher "github.com/iliyamo/movie-magic/internal/service"
)

// Notifier sends a confirmation for a freshly persisted booking.
type Notifier interface {
	Send(ctx context.Context, b model.Booking) error
}

// ConsoleNotifier formats the confirmation email a real mailer would send
// and writes it to Out.
type ConsoleNotifier struct {
	Out io.Writer
}

// NewConsoleNotifier returns a ConsoleNotifier writing to stdout.
func NewConsoleNotifier() *ConsoleNotifier {
	return &ConsoleNotifier{Out: os.Stdout}
}

// Send writes the human-readable confirmation text for b.
func (n *ConsoleNotifier) Send(_ context.Context, b model.Booking) error {
	_, err := fmt.Fprintf(n.Out, `
=== Booking Confirmation Email ===
To: %s
Subject: MovieMagic Booking Confirmation - %s

Hello %s,

Your movie ticket booking is confirmed!

Booking Details:
----------------
Booking ID: %s
Movie: %s
Date: %s
Time: %s
Theater: %s
Location: %s
Seats: %s
Amount Paid: ₹%s

Please show this confirmation at the theater to collect your tickets.

Thank you for choosing MovieMagic!
`,
		b.BookedBy, b.BookingID, b.UserName, b.BookingID, b.MovieName,
		b.Date, b.Time, b.Theater, b.Address, b.Seats, b.AmountPaid)
	return err
}

// AMQPNotifier publishes confirmations to the booking.confirmed queue where
// the background consumer (or any other subscriber) picks them up.
type AMQPNotifier struct{}

// Send publishes a BookingConfirmedEvent for b.
func (AMQPNotifier) Send(ctx context.Context, b model.Booking) error {
	return queue_publisher.PublishBookingConfirmed(ctx, queue.BookingConfirmedEvent{
		BookingID:   b.BookingID,
		MovieName:   b.MovieName,
		Date:        b.Date,
		Time:        b.Time,
		Theater:     b.Theater,
		Address:     b.Address,
		BookedBy:    b.BookedBy,
		UserName:    b.UserName,
		Seats:       b.Seats,
		AmountPaid:  b.AmountPaid,
		BookingTime: b.BookingTime,
	})
}
