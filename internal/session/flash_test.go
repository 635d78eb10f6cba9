package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlashRoundTrip(t *testing.T) {
	t.Parallel()

	// First response sets the flash.
	rec := httptest.NewRecorder()
	SetFlash(rec, "success", "Registration successful! Please login.")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	// Next request carries the cookie; PopFlash returns and clears it.
	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(cookies[0])
	rec2 := httptest.NewRecorder()

	f, ok := PopFlash(rec2, req)
	require.True(t, ok)
	assert.Equal(t, "success", f.Kind)
	assert.Equal(t, "Registration successful! Please login.", f.Message)

	// The clearing cookie must expire the original.
	cleared := rec2.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, -1, cleared[0].MaxAge)
}

func TestPopFlashWithoutCookie(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	_, ok := PopFlash(rec, req)
	assert.False(t, ok)
}

func TestPopFlashBadValue(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "mvm_flash", Value: "%%%not-base64%%%"})
	rec := httptest.NewRecorder()

	_, ok := PopFlash(rec, req)
	assert.False(t, ok)
}
