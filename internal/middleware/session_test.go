package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/movie-magic/internal/model"
	"github.com/iliyamo/movie-magic/internal/session"
)

const testSecret = "test-secret"

func newProtectedEcho() *echo.Echo {
	e := echo.New()
	e.Use(LoadSession(testSecret))
	e.GET("/home1", func(c echo.Context) error {
		id, _ := Identity(c)
		return c.String(http.StatusOK, "hello "+id.Name)
	}, RequireSession)
	return e
}

func TestRequireSessionRedirectsAnonymous(t *testing.T) {
	t.Parallel()

	e := newProtectedEcho()
	req := httptest.NewRequest(http.MethodGet, "/home1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
}

func TestRequireSessionAllowsAuthenticated(t *testing.T) {
	t.Parallel()

	token, err := session.Issue(testSecret, model.Identity{ID: "u-1", Name: "Ada", Email: "ada@example.com"}, 60)
	require.NoError(t, err)

	e := newProtectedEcho()
	req := httptest.NewRequest(http.MethodGet, "/home1", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hello Ada", rec.Body.String())
}

func TestRequireSessionRejectsTamperedCookie(t *testing.T) {
	t.Parallel()

	token, err := session.Issue(testSecret, model.Identity{ID: "u-1", Name: "Ada", Email: "ada@example.com"}, 60)
	require.NoError(t, err)

	e := newProtectedEcho()
	req := httptest.NewRequest(http.MethodGet, "/home1", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token[:len(token)-2] + "xx"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
}
