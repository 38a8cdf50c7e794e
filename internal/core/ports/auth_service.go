package ports

import (
	"context"

	"github.com/Aman7097/taskie/internal/core/domain"
)

// RegisterInput carries the fields of a registration request. The transport
// layer validates presence and password length before calling the service.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// AuthService implements registration and the three login flows.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// GoogleLogin exchanges a Google access token for a local session:
	// fetch the profile, find-or-create the user, issue a token.
	GoogleLogin(ctx context.Context, accessToken string) (string, *domain.User, error)
	// Me returns the current profile, re-read from the store.
	Me(ctx context.Context, userID string) (*domain.User, error)
}
