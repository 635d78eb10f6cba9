package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-magic/internal/session"
)

// renderPage renders a template with any pending flash notice merged into
// the data map.  An inline notice (set by the handler on the same request)
// wins over one queued in the flash cookie, since the cookie written by a
// previous redirect is consumed here either way.
func renderPage(c echo.Context, name string, data echo.Map) error {
	if data == nil {
		data = echo.Map{}
	}
	if f, ok := session.PopFlash(c.Response(), c.Request()); ok {
		if _, inline := data["Flash"]; !inline {
			data["Flash"] = f
		}
	}
	if _, ok := data["Flash"]; !ok {
		data["Flash"] = nil
	}
	return c.Render(http.StatusOK, name, data)
}
