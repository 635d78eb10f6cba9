package handler_test

// Hand-rolled testify mocks for the store and notifier interfaces, plus a
// helper that stands up an Echo instance with the full route table so tests
// exercise the same middleware chain as production (with Redis absent, the
// rate limiter and page cache are pass-throughs).

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/movie-magic/internal/config"
	"github.com/iliyamo/movie-magic/internal/handler"
	"github.com/iliyamo/movie-magic/internal/model"
	"github.com/iliyamo/movie-magic/internal/notify"
	"github.com/iliyamo/movie-magic/internal/router"
	"github.com/iliyamo/movie-magic/internal/session"
	"github.com/iliyamo/movie-magic/internal/view"
)

const testSecret = "test-secret"

type userStoreMock struct{ mock.Mock }

func (m *userStoreMock) Create(ctx context.Context, name, email, password string, cost int) (model.User, error) {
	args := m.Called(ctx, name, email, password, cost)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *userStoreMock) GetByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

type bookingStoreMock struct{ mock.Mock }

func (m *bookingStoreMock) Create(ctx context.Context, b model.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *bookingStoreMock) ListByEmail(ctx context.Context, email string) ([]model.Booking, error) {
	args := m.Called(ctx, email)
	bs, _ := args.Get(0).([]model.Booking)
	return bs, args.Error(1)
}

type notifierMock struct{ mock.Mock }

func (m *notifierMock) Send(ctx context.Context, b model.Booking) error {
	return m.Called(ctx, b).Error(0)
}

var _ handler.UserStore = (*userStoreMock)(nil)
var _ handler.BookingStore = (*bookingStoreMock)(nil)
var _ notify.Notifier = (*notifierMock)(nil)

func testConfig() config.Config {
	return config.Config{
		Env:           "test",
		SessionSecret: testSecret,
		SessionTTLMin: 60,
		BcryptCost:    bcrypt.MinCost,
	}
}

// newApp wires the real router and renderer around the mocks.
func newApp(t *testing.T, users *userStoreMock, bookings *bookingStoreMock, notifier *notifierMock) *echo.Echo {
	t.Helper()

	renderer, err := view.New()
	require.NoError(t, err)

	cfg := testConfig()
	e := echo.New()
	e.Renderer = renderer
	router.RegisterRoutes(e, cfg, router.Handlers{
		Auth:    handler.NewAuthHandler(cfg, users),
		Pages:   handler.NewPageHandler(bookings),
		Booking: handler.NewBookingHandler(bookings, notifier),
	}, nil)
	return e
}

// sessionCookie returns a valid session cookie for the given identity.
func sessionCookie(t *testing.T, id model.Identity) *http.Cookie {
	t.Helper()
	token, err := session.Issue(testSecret, id, 60)
	require.NoError(t, err)
	return &http.Cookie{Name: session.CookieName, Value: token}
}

// postForm performs a form submission against the app.
func postForm(e *echo.Echo, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}
