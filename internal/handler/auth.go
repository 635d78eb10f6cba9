package handler

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-magic/internal/config"
	"github.com/iliyamo/movie-magic/internal/model"
	"github.com/iliyamo/movie-magic/internal/repository"
	"github.com/iliyamo/movie-magic/internal/session"
	"github.com/iliyamo/movie-magic/internal/utils"
)

// AuthHandler bundles dependencies for the signup, login and logout pages.
type AuthHandler struct {
	Cfg   config.Config
	Users UserStore
}

func NewAuthHandler(cfg config.Config, users UserStore) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: users}
}

// Index renders the public landing page.
func (h *AuthHandler) Index(c echo.Context) error {
	return renderPage(c, "index.html", nil)
}

// LoginForm renders the login page.
func (h *AuthHandler) LoginForm(c echo.Context) error {
	return renderPage(c, "login.html", nil)
}

// Login verifies the submitted credentials.  On success it issues the
// session cookie and redirects to the authenticated home; on failure it
// re-renders the login page with a notice.  Unknown email and wrong password
// are deliberately indistinguishable to the client.
func (h *AuthHandler) Login(c echo.Context) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, email)
	if err != nil && err != sql.ErrNoRows {
		log.Printf("login: query failed: %v", err)
		return renderPage(c, "login.html", echo.Map{
			"Flash": session.Flash{Kind: "danger", Message: "An error occurred. Please try again later."},
		})
	}
	if err == sql.ErrNoRows || !utils.VerifyPassword(u.PasswordHash, password) {
		return renderPage(c, "login.html", echo.Map{
			"Flash": session.Flash{Kind: "danger", Message: "Invalid email or password"},
		})
	}

	token, err := session.Issue(h.Cfg.SessionSecret, model.Identity{ID: u.ID, Name: u.Name, Email: u.Email}, h.Cfg.SessionTTLMin)
	if err != nil {
		log.Printf("login: issue session failed: %v", err)
		return renderPage(c, "login.html", echo.Map{
			"Flash": session.Flash{Kind: "danger", Message: "An error occurred. Please try again later."},
		})
	}
	session.SetCookie(c.Response(), token, h.Cfg.SessionTTLMin)
	return c.Redirect(http.StatusSeeOther, "/home1")
}

// SignupForm renders the signup page.
func (h *AuthHandler) SignupForm(c echo.Context) error {
	return renderPage(c, "signup.html", nil)
}

// Signup registers a new account.  A duplicate email redirects back to the
// signup page with a notice; success redirects to the login page.
func (h *AuthHandler) Signup(c echo.Context) error {
	name := c.FormValue("name")
	email := c.FormValue("email")
	password := c.FormValue("password")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	_, err := h.Users.Create(ctx, name, email, password, h.Cfg.BcryptCost)
	if err != nil {
		if err == repository.ErrEmailExists {
			session.SetFlash(c.Response(), "danger", "Email already registered!")
			return c.Redirect(http.StatusSeeOther, "/signup")
		}
		log.Printf("signup: create user failed: %v", err)
		session.SetFlash(c.Response(), "danger", "An error occurred during registration. Please try again.")
		return c.Redirect(http.StatusSeeOther, "/signup")
	}

	session.SetFlash(c.Response(), "success", "Registration successful! Please login.")
	return c.Redirect(http.StatusSeeOther, "/login")
}

// Logout clears the session cookie and returns to the landing page.  It is
// idempotent: logging out without a session is not an error.
func (h *AuthHandler) Logout(c echo.Context) error {
	session.Clear(c.Response())
	session.SetFlash(c.Response(), "info", "You have been logged out!")
	return c.Redirect(http.StatusSeeOther, "/")
}
