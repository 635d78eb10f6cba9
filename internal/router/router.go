// Package router defines how HTTP routes are registered for the site.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/movie-magic/internal/config"
	"github.com/iliyamo/movie-magic/internal/handler"
	"github.com/iliyamo/movie-magic/internal/middleware"
)

// Handlers groups the handler sets the router wires up.
type Handlers struct {
	Auth    *handler.AuthHandler
	Pages   *handler.PageHandler
	Booking *handler.BookingHandler
}

// RegisterRoutes registers the whole HTTP surface on the provided Echo
// instance.  The session middleware runs globally so every page can see who
// is logged in; RequireSession gates only the three protected routes.  The
// login and signup submissions additionally pass through the Redis token
// bucket, and the two static informational pages go through the response
// cache.  Both Redis-backed middlewares degrade to pass-throughs when rdb is
// nil.
func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers, rdb *redis.Client) {
	e.Use(middleware.LoadSession(cfg.SessionSecret))

	limit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	e.GET("/healthz", handler.Health)

	// Public pages.
	e.GET("/", h.Auth.Index)
	e.GET("/login", h.Auth.LoginForm)
	e.POST("/login", h.Auth.Login, limit)
	e.GET("/signup", h.Auth.SignupForm)
	e.POST("/signup", h.Auth.Signup, limit)
	e.GET("/logout", h.Auth.Logout)
	e.GET("/about", h.Pages.About, cache)
	e.GET("/contact_us", h.Pages.Contact, cache)

	// Pages requiring an authenticated session.
	e.GET("/home1", h.Pages.Home1, middleware.RequireSession)
	e.GET("/b1", h.Pages.BookingForm, middleware.RequireSession)
	e.POST("/tickets", h.Booking.CreateTicket, middleware.RequireSession)
}
