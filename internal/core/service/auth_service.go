package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/Aman7097/taskie/internal/core/domain"
	"github.com/Aman7097/taskie/internal/core/ports"
)

// AuthService implements registration, local login and Google OAuth login.
type AuthService struct {
	users    ports.UserRepository
	identity ports.IdentityProvider
	tokens   *TokenIssuer
	log      zerolog.Logger
}

func NewAuthService(users ports.UserRepository, identity ports.IdentityProvider, tokens *TokenIssuer, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, identity: identity, tokens: tokens, log: log}
}

// Register hashes the password, persists the user and issues a session
// token. A taken email yields domain.ErrUserExists.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (string, *domain.User, error) {
	email := normalizeEmail(input.Email)

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return "", nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(created.ID)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("user_id", created.ID).Msg("user registered")
	return token, created, nil
}

// Login authenticates local credentials. A missing account, an account
// without a local password (OAuth-only) and a wrong password all collapse
// into domain.ErrInvalidCredentials so callers cannot probe which it was.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !user.HasPassword() || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// GoogleLogin exchanges a Google access token for a session: fetch the
// profile from the provider, find the local user by the Google subject id,
// create one on first login, then issue a token.
func (s *AuthService) GoogleLogin(ctx context.Context, accessToken string) (string, *domain.User, error) {
	profile, err := s.identity.FetchProfile(ctx, accessToken)
	if err != nil {
		s.log.Warn().Err(err).Msg("google user-info fetch failed")
		return "", nil, domain.ErrAuthenticationFailed
	}

	user, err := s.users.FindByGoogleID(ctx, profile.Subject)
	switch {
	case err == nil:
		// returning user
	case errors.Is(err, domain.ErrUserNotFound):
		now := time.Now().UTC()
		user, err = s.users.Create(ctx, &domain.User{
			FirstName: profile.GivenName,
			LastName:  profile.FamilyName,
			Email:     normalizeEmail(profile.Email),
			GoogleID:  profile.Subject,
			Avatar:    profile.Picture,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return "", nil, err
		}
		s.log.Info().Str("user_id", user.ID).Msg("user created from google profile")
	default:
		return "", nil, err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// Me re-reads the current user from the store.
func (s *AuthService) Me(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
