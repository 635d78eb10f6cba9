package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-magic/internal/middleware"
	"github.com/iliyamo/movie-magic/internal/model"
)

// PageHandler serves the remaining site pages: the authenticated home, the
// static informational pages and the booking form.
type PageHandler struct {
	Bookings BookingStore
}

func NewPageHandler(bookings BookingStore) *PageHandler {
	return &PageHandler{Bookings: bookings}
}

// Home1 renders the authenticated home page with the user's booking history.
// A failed history lookup is logged and the page renders without it; the
// home page must not break because the store hiccuped.
func (h *PageHandler) Home1(c echo.Context) error {
	id, _ := middleware.Identity(c)

	var bookings []model.Booking
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if bs, err := h.Bookings.ListByEmail(ctx, id.Email); err == nil {
		bookings = bs
	} else {
		log.Printf("home1: list bookings failed: %v", err)
	}

	return renderPage(c, "home1.html", echo.Map{"User": id, "Bookings": bookings})
}

// About renders the public about page.
func (h *PageHandler) About(c echo.Context) error {
	return c.Render(http.StatusOK, "about.html", nil)
}

// Contact renders the public contact page.
func (h *PageHandler) Contact(c echo.Context) error {
	return c.Render(http.StatusOK, "contact_us.html", nil)
}

// BookingForm renders the booking form, echoing the movie, theater, address
// and price query parameters into the form fields so a showing picked on a
// listing page arrives pre-filled.
func (h *PageHandler) BookingForm(c echo.Context) error {
	return renderPage(c, "b1.html", echo.Map{
		"Movie":   c.QueryParam("movie"),
		"Theater": c.QueryParam("theater"),
		"Address": c.QueryParam("address"),
		"Price":   c.QueryParam("price"),
	})
}
