package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-magic/internal/middleware"
	"github.com/iliyamo/movie-magic/internal/model"
	"github.com/iliyamo/movie-magic/internal/notify"
	"github.com/iliyamo/movie-magic/internal/session"
	"github.com/iliyamo/movie-magic/internal/utils"
)

// BookingHandler handles booking form submissions.
type BookingHandler struct {
	Bookings BookingStore
	Notifier notify.Notifier
}

func NewBookingHandler(bookings BookingStore, notifier notify.Notifier) *BookingHandler {
	return &BookingHandler{Bookings: bookings, Notifier: notifier}
}

// CreateTicket handles POST /tickets.  It persists a booking owned by the
// session identity and renders the confirmation page.  All showing fields
// are stored exactly as submitted; the service keeps no movie or seat
// catalog to validate them against.  The confirmation notification is fire
// and forget: a delivery failure is logged and the booking stands.
func (h *BookingHandler) CreateTicket(c echo.Context) error {
	id, ok := middleware.Identity(c)
	if !ok {
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	now := time.Now().UTC()
	b := model.Booking{
		BookingID:   utils.NewBookingID(now),
		MovieName:   c.FormValue("movie"),
		Date:        c.FormValue("date"),
		Time:        c.FormValue("time"),
		Theater:     c.FormValue("theater"),
		Address:     c.FormValue("address"),
		BookedBy:    id.Email,
		UserName:    id.Name,
		Seats:       c.FormValue("seats"),
		AmountPaid:  c.FormValue("amount"),
		BookingTime: now.Format(time.RFC3339),
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Bookings.Create(ctx, b); err != nil {
		log.Printf("tickets: create booking failed: %v", err)
		session.SetFlash(c.Response(), "danger", "Error processing booking")
		return c.Redirect(http.StatusSeeOther, "/home1")
	}

	if err := h.Notifier.Send(ctx, b); err != nil {
		log.Printf("tickets: confirmation notify failed for %s: %v", b.BookingID, err)
	}

	return renderPage(c, "tickets.html", echo.Map{
		"Booking": b,
		"Flash":   session.Flash{Kind: "success", Message: "Booking successful! Confirmation has been sent to your email."},
	})
}
