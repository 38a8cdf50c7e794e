package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Aman7097/taskie/internal/core/domain"
	"github.com/Aman7097/taskie/internal/core/service"
)

type stubUserFinder struct {
	user *domain.User
	err  error
}

func (s *stubUserFinder) FindByID(_ context.Context, id string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.user == nil || s.user.ID != id {
		return nil, domain.ErrUserNotFound
	}
	return s.user, nil
}

func invoke(t *testing.T, mw echo.MiddlewareFunc, authHeader string) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/tasks/getAll", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return c, handler(c)
}

func assertUnauthorized(t *testing.T, err error) {
	t.Helper()
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", httpErr.Code)
	}
}

func TestAuth_ValidToken(t *testing.T) {
	issuer := service.NewTokenIssuer("middleware-secret", time.Hour)
	user := &domain.User{ID: "u-1", Email: "maria@example.com"}
	mw := Auth(issuer, &stubUserFinder{user: user})

	token, err := issuer.Issue(user.ID)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	c, err := invoke(t, mw, "Bearer "+token)
	if err != nil {
		t.Fatalf("expected request to pass, got %v", err)
	}
	if got := c.Get(ContextUserID); got != user.ID {
		t.Fatalf("userID not set on context: %v", got)
	}
	got, ok := c.Get(ContextUser).(*domain.User)
	if !ok || got.Email != user.Email {
		t.Fatalf("user not set on context: %v", c.Get(ContextUser))
	}
}

func TestAuth_SchemeIsCaseInsensitive(t *testing.T) {
	issuer := service.NewTokenIssuer("middleware-secret", time.Hour)
	user := &domain.User{ID: "u-1"}
	mw := Auth(issuer, &stubUserFinder{user: user})

	token, err := issuer.Issue(user.ID)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	if _, err := invoke(t, mw, "bearer "+token); err != nil {
		t.Fatalf("lowercase scheme rejected: %v", err)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	issuer := service.NewTokenIssuer("middleware-secret", time.Hour)
	mw := Auth(issuer, &stubUserFinder{})

	_, err := invoke(t, mw, "")
	assertUnauthorized(t, err)
}

func TestAuth_MalformedHeader(t *testing.T) {
	issuer := service.NewTokenIssuer("middleware-secret", time.Hour)
	mw := Auth(issuer, &stubUserFinder{})

	for _, header := range []string{"Bearer", "Basic dXNlcjpwYXNz", "token-without-scheme"} {
		_, err := invoke(t, mw, header)
		assertUnauthorized(t, err)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	issuer := service.NewTokenIssuer("middleware-secret", time.Hour)
	mw := Auth(issuer, &stubUserFinder{user: &domain.User{ID: "u-1"}})

	_, err := invoke(t, mw, "Bearer not.a.token")
	assertUnauthorized(t, err)

	// signed with a different secret
	other := service.NewTokenIssuer("other-secret", time.Hour)
	token, issueErr := other.Issue("u-1")
	if issueErr != nil {
		t.Fatalf("issue token: %v", issueErr)
	}
	_, err = invoke(t, mw, "Bearer "+token)
	assertUnauthorized(t, err)
}

func TestAuth_DeletedUser(t *testing.T) {
	issuer := service.NewTokenIssuer("middleware-secret", time.Hour)
	mw := Auth(issuer, &stubUserFinder{err: domain.ErrUserNotFound})

	token, err := issuer.Issue("u-gone")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	_, invokeErr := invoke(t, mw, "Bearer "+token)
	assertUnauthorized(t, invokeErr)
}
