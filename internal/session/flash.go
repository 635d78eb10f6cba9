package session

// Flash notices are one-shot messages shown to the user after a redirect
// ("Registration successful! Please login.", "Invalid email or password").
// They ride in a short-lived cookie: set just before the redirect, read and
// cleared by the next page render.

import (
	"encoding/base64"
	"net/http"
	"strings"
)

// flashCookie is the browser cookie carrying the pending notice.
const flashCookie = "mvm_flash"

// Flash is a transient user-visible notice with a display category.
type Flash struct {
	Kind    string // "success", "danger" or "info"
	Message string
}

// SetFlash queues a notice for the next rendered page.  The value is
// base64-encoded so arbitrary message text stays cookie-safe.
func SetFlash(w http.ResponseWriter, kind, message string) {
	v := base64.URLEncoding.EncodeToString([]byte(kind + "|" + message))
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    v,
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// PopFlash returns the pending notice, if any, and clears it so it is shown
// exactly once.
func PopFlash(w http.ResponseWriter, r *http.Request) (Flash, bool) {
	c, err := r.Cookie(flashCookie)
	if err != nil || c.Value == "" {
		return Flash{}, false
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	raw, err := base64.URLEncoding.DecodeString(c.Value)
	if err != nil {
		return Flash{}, false
	}
	kind, msg, ok := strings.Cut(string(raw), "|")
	if !ok {
		return Flash{}, false
	}
	return Flash{Kind: kind, Message: msg}, true
}
