package ports

import (
	"context"

	"github.com/Aman7097/taskie/internal/core/domain"
)

// ProfilePatch carries the mutable profile fields of a user. Nil means
// "leave unchanged".
type ProfilePatch struct {
	FirstName *string
	LastName  *string
	Email     *string
	Avatar    *string
}

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create inserts a new user and returns it with the store-assigned ID.
	// Returns domain.ErrUserExists when the email is already taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByGoogleID(ctx context.Context, googleID string) (*domain.User, error)
	// EmailInUse reports whether another user (id != excludeID) already owns
	// the given email.
	EmailInUse(ctx context.Context, email, excludeID string) (bool, error)
	// Update applies the non-nil fields of patch and returns the updated user.
	Update(ctx context.Context, id string, patch ProfilePatch) (*domain.User, error)
}
