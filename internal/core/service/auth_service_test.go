package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/Aman7097/taskie/internal/core/domain"
	"github.com/Aman7097/taskie/internal/core/ports"
)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = string(rune('a' + r.nextID))
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByGoogleID(_ context.Context, googleID string) (*domain.User, error) {
	for _, u := range r.users {
		if u.GoogleID != "" && u.GoogleID == googleID {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) EmailInUse(_ context.Context, email, excludeID string) (bool, error) {
	for id, u := range r.users {
		if id != excludeID && u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, patch ports.ProfilePatch) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if patch.FirstName != nil {
		u.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		u.LastName = *patch.LastName
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Avatar != nil {
		u.Avatar = *patch.Avatar
	}
	return cloneUser(u), nil
}

type stubIdentity struct {
	profile *ports.GoogleProfile
	err     error
}

func (s *stubIdentity) FetchProfile(_ context.Context, _ string) (*ports.GoogleProfile, error) {
	return s.profile, s.err
}

func newAuthService(repo ports.UserRepository, identity ports.IdentityProvider) *AuthService {
	return NewAuthService(repo, identity, NewTokenIssuer("secret", time.Hour), zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, &stubIdentity{})

	token, user, err := svc.Register(context.Background(), ports.RegisterInput{
		FirstName: "Alice", LastName: "Doe", Email: "Alice@Example.com", Password: "pass123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("expected lowercased email, got %q", user.Email)
	}

	stored, _ := repo.FindByID(context.Background(), user.ID)
	if stored.PasswordHash == "pass123" || stored.PasswordHash == "" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	// the response token must resolve to the newly created user
	userID, err := NewTokenIssuer("secret", time.Hour).Verify(token)
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}
	if userID != user.ID {
		t.Fatalf("token resolves to %q, want %q", userID, user.ID)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, &stubIdentity{})

	input := ports.RegisterInput{FirstName: "Bob", LastName: "One", Email: "bob@example.com", Password: "pass123"}
	if _, _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("first register: %v", err)
	}

	// same email again, other fields different, including case changes
	input.FirstName = "Other"
	input.Email = "BOB@example.com"
	input.Password = "different"
	if _, _, err := svc.Register(context.Background(), input); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, &stubIdentity{})

	_, created, err := svc.Register(context.Background(), ports.RegisterInput{
		FirstName: "Carol", LastName: "Ng", Email: "carol@example.com", Password: "s3cret",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "Carol@Example.com", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token")
	}
	if user.ID != created.ID {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, &stubIdentity{})

	_, _, _ = svc.Register(context.Background(), ports.RegisterInput{
		FirstName: "Dave", LastName: "Lee", Email: "dave@example.com", Password: "goodpass",
	})

	if _, _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), &stubIdentity{})

	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_OAuthOnlyAccount(t *testing.T) {
	repo := newStubUserRepo()
	identity := &stubIdentity{profile: &ports.GoogleProfile{
		Subject: "g-sub-1", Email: "eve@example.com", GivenName: "Eve", FamilyName: "Stone",
	}}
	svc := newAuthService(repo, identity)

	if _, _, err := svc.GoogleLogin(context.Background(), "google-token"); err != nil {
		t.Fatalf("google login: %v", err)
	}

	// the account has no local password; any password attempt must fail the
	// same way a wrong password does
	if _, _, err := svc.Login(context.Background(), "eve@example.com", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "eve@example.com", "anything"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_GoogleLogin_FindOrCreate(t *testing.T) {
	repo := newStubUserRepo()
	identity := &stubIdentity{profile: &ports.GoogleProfile{
		Subject: "g-sub-2", Email: "frank@example.com", GivenName: "Frank", FamilyName: "Hall",
		Picture: "https://lh3.example.com/frank.jpg",
	}}
	svc := newAuthService(repo, identity)

	_, first, err := svc.GoogleLogin(context.Background(), "tok")
	if err != nil {
		t.Fatalf("first google login: %v", err)
	}
	if first.GoogleID != "g-sub-2" || first.Email != "frank@example.com" {
		t.Fatalf("unexpected created user: %+v", first)
	}
	if first.Avatar != "https://lh3.example.com/frank.jpg" {
		t.Fatalf("google picture not carried onto the new account: %q", first.Avatar)
	}
	if first.HasPassword() {
		t.Fatalf("oauth account must not carry a password hash")
	}

	_, second, err := svc.GoogleLogin(context.Background(), "tok")
	if err != nil {
		t.Fatalf("second google login: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected the same account on repeat login, got %q and %q", first.ID, second.ID)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected 1 stored user, got %d", len(repo.users))
	}
}

func TestAuthService_GoogleLogin_ProviderFailure(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), &stubIdentity{err: errors.New("upstream 502")})

	if _, _, err := svc.GoogleLogin(context.Background(), "tok"); !errors.Is(err, domain.ErrAuthenticationFailed) {
		t.Fatalf("expected ErrAuthenticationFailed, got %v", err)
	}
}

func TestAuthService_Me(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, &stubIdentity{})

	_, created, _ := svc.Register(context.Background(), ports.RegisterInput{
		FirstName: "Gina", LastName: "Ray", Email: "gina@example.com", Password: "pass123",
	})

	user, err := svc.Me(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if user.Email != "gina@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := svc.Me(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
