package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Aman7097/taskie/internal/core/domain"
	"github.com/Aman7097/taskie/internal/core/ports"
)

// UserService implements profile and avatar maintenance for the
// authenticated user.
type UserService struct {
	users   ports.UserRepository
	avatars ports.AvatarStore
	log     zerolog.Logger
}

func NewUserService(users ports.UserRepository, avatars ports.AvatarStore, log zerolog.Logger) *UserService {
	return &UserService{users: users, avatars: avatars, log: log}
}

// UpdateProfile applies a partial name/email update. A new email must not
// belong to any other account.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, input ports.UpdateProfileInput) (*domain.User, error) {
	patch := ports.ProfilePatch{
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}

	if input.Email != nil {
		email := normalizeEmail(*input.Email)
		taken, err := s.users.EmailInUse(ctx, email, userID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.ErrEmailTaken
		}
		patch.Email = &email
	}

	return s.users.Update(ctx, userID, patch)
}

// UpdateAvatar stores the uploaded file, points the user record at the new
// URL and then removes the previous file. A failed removal is logged and
// otherwise ignored: the profile update must not depend on it.
func (s *UserService) UpdateAvatar(ctx context.Context, userID string, upload ports.AvatarUpload) (*domain.User, error) {
	if upload.Content == nil {
		return nil, domain.ErrNoFile
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	url, err := s.avatars.Save(upload)
	if err != nil {
		return nil, err
	}

	updated, err := s.users.Update(ctx, userID, ports.ProfilePatch{Avatar: &url})
	if err != nil {
		// the record was not updated, do not orphan the new file
		if rmErr := s.avatars.Remove(url); rmErr != nil {
			s.log.Warn().Err(rmErr).Str("avatar", url).Msg("failed to clean up new avatar")
		}
		return nil, err
	}

	if user.Avatar != "" && user.Avatar != url {
		if rmErr := s.avatars.Remove(user.Avatar); rmErr != nil {
			s.log.Warn().Err(rmErr).Str("avatar", user.Avatar).Msg("failed to delete old avatar")
		}
	}

	return updated, nil
}
