package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/fuelquote/fuel-quote-api/internal/core/domain"
)

type stubSessions struct {
	active map[string]string
}

func (s *stubSessions) Issue(context.Context, string) (string, error) { return "", nil }

func (s *stubSessions) Resolve(_ context.Context, token string) (string, error) {
	accountID, ok := s.active[token]
	if !ok {
		return "", domain.ErrUnauthenticated
	}
	return accountID, nil
}

func (s *stubSessions) Revoke(context.Context, string) error { return nil }

func runSession(t *testing.T, req *http.Request) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Session(&stubSessions{active: map[string]string{"tok-good": "acc-1"}})
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	return c, mw(next)(c)
}

func TestSession_MissingToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/profile", nil)

	_, err := runSession(t, req)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestSession_UnknownToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/profile", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "tok-revoked"})

	_, err := runSession(t, req)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestSession_ValidCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/profile", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "tok-good"})

	c, err := runSession(t, req)
	if err != nil {
		t.Fatalf("middleware rejected valid session: %v", err)
	}
	if accountID, _ := c.Get("account_id").(string); accountID != "acc-1" {
		t.Fatalf("account_id not injected, got %q", accountID)
	}
}

func TestSession_BearerFallback(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/profile", nil)
	req.Header.Set("Authorization", "Bearer tok-good")

	c, err := runSession(t, req)
	if err != nil {
		t.Fatalf("middleware rejected bearer token: %v", err)
	}
	if accountID, _ := c.Get("account_id").(string); accountID != "acc-1" {
		t.Fatalf("account_id not injected, got %q", accountID)
	}
}

func TestSession_CookieWinsOverBearer(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/profile", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "tok-good"})
	req.Header.Set("Authorization", "Bearer tok-other")

	if got := TokenFromRequest(echo.New().NewContext(req, httptest.NewRecorder())); got != "tok-good" {
		t.Fatalf("expected cookie token, got %q", got)
	}
}
