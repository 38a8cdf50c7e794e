package ports

import (
	"context"
	"io"

	"github.com/Aman7097/taskie/internal/core/domain"
)

// UpdateProfileInput carries the editable profile fields. Nil means "leave
// unchanged".
type UpdateProfileInput struct {
	FirstName *string
	LastName  *string
	Email     *string
}

// AvatarUpload is an uploaded avatar image. Filename is the client-supplied
// name, used only for its extension.
type AvatarUpload struct {
	Filename string
	Content  io.Reader
}

// UserService defines profile maintenance operations for the authenticated
// user.
type UserService interface {
	UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*domain.User, error)
	UpdateAvatar(ctx context.Context, userID string, upload AvatarUpload) (*domain.User, error)
}

// AvatarStore persists avatar files and hands back the relative URL under
// which they are served.
type AvatarStore interface {
	Save(upload AvatarUpload) (string, error)
	// Remove deletes a previously stored avatar by its relative URL.
	Remove(url string) error
}
