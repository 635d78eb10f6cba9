package middleware // middleware provides shared request processing for handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-magic/internal/model"
	"github.com/iliyamo/movie-magic/internal/session"
)

// identityKey is the echo context key holding the parsed session identity.
const identityKey = "identity"

// LoadSession returns middleware that parses the session cookie, if present,
// and stores the authenticated identity in the request context.  An absent,
// expired or tampered cookie simply leaves the request anonymous; rejection
// is the job of RequireSession on protected routes.
func LoadSession(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cookie, err := c.Cookie(session.CookieName); err == nil && cookie.Value != "" {
				if id, err := session.Parse(secret, cookie.Value); err == nil {
					c.Set(identityKey, id)
				}
			}
			return next(c)
		}
	}
}

// RequireSession redirects anonymous requests to the login page before any
// handler logic runs.  It must be registered after LoadSession.
func RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := Identity(c); !ok {
			return c.Redirect(http.StatusSeeOther, "/login")
		}
		return next(c)
	}
}

// Identity returns the authenticated identity stored by LoadSession, or
// ok=false when the request is anonymous.
func Identity(c echo.Context) (model.Identity, bool) {
	id, ok := c.Get(identityKey).(model.Identity)
	return id, ok
}
