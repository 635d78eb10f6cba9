// Package session implements the per-client Session Context as a signed
// HS256 cookie.  The cookie carries exactly the {id, name, email} triple of
// the authenticated account; it is set only after a successful login and the
// signature makes it tamper-evident at the boundary.  Nothing is re-derived
// from the database on later requests.
package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iliyamo/movie-magic/internal/model"
)

// CookieName is the browser cookie holding the signed session token.
const CookieName = "mvm_session"

// ErrInvalidToken is returned when a session token is missing a claim, is
// expired, or fails signature verification.
var ErrInvalidToken = errors.New("invalid session token")

// Issue builds and signs an HS256 token for the given identity.  The token
// includes subject (sub), name, email, expiration (exp) and issued at (iat)
// claims.
func Issue(secret string, id model.Identity, ttlMin int) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":   id.ID,
		"name":  id.Name,
		"email": id.Email,
		"exp":   now.Add(time.Duration(ttlMin) * time.Minute).Unix(),
		"iat":   now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// Parse verifies a session token and extracts the identity triple.  Any
// verification failure, wrong signing method or missing claim yields
// ErrInvalidToken; callers treat that the same as no session at all.
func Parse(secret, raw string) (model.Identity, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return model.Identity{}, ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return model.Identity{}, ErrInvalidToken
	}
	id, _ := claims["sub"].(string)
	name, _ := claims["name"].(string)
	email, _ := claims["email"].(string)
	if id == "" || email == "" {
		return model.Identity{}, ErrInvalidToken
	}
	return model.Identity{ID: id, Name: name, Email: email}, nil
}

// SetCookie attaches a freshly issued session cookie to the response.
func SetCookie(w http.ResponseWriter, token string, ttlMin int) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   ttlMin * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear expires the session cookie.  Clearing an absent cookie is harmless,
// which makes logout idempotent.
func Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
