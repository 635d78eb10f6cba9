package handler

// Store interfaces consumed by the handlers.  The repository types satisfy
// them in production; tests substitute mocks.

import (
	"context"

	"github.com/iliyamo/movie-magic/internal/model"
)

// UserStore is the slice of the credential store the auth handlers need.
type UserStore interface {
	Create(ctx context.Context, name, email, password string, cost int) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
}

// BookingStore is the slice of the booking store the booking handlers need.
type BookingStore interface {
	Create(ctx context.Context, b model.Booking) error
	ListByEmail(ctx context.Context, email string) ([]model.Booking, error)
}
