package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Aman7097/taskie/internal/core/domain"
	"github.com/Aman7097/taskie/internal/core/ports"
)

type stubAvatarStore struct {
	saved   []string
	removed []string
	saveErr error
	rmErr   error
}

func (s *stubAvatarStore) Save(_ ports.AvatarUpload) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	url := "/uploads/avatars/stub-" + strconv.Itoa(len(s.saved)) + ".png"
	s.saved = append(s.saved, url)
	return url, nil
}

func (s *stubAvatarStore) Remove(url string) error {
	s.removed = append(s.removed, url)
	return s.rmErr
}

func seedUser(t *testing.T, repo *stubUserRepo, email string) *domain.User {
	t.Helper()
	u, err := repo.Create(context.Background(), &domain.User{
		FirstName: "Seed", LastName: "User", Email: email, PasswordHash: "x",
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func TestUserService_UpdateProfile(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, &stubAvatarStore{}, zerolog.Nop())
	u := seedUser(t, repo, "henry@example.com")

	first := "Henri"
	email := "Henri@Example.com"
	updated, err := svc.UpdateProfile(context.Background(), u.ID, ports.UpdateProfileInput{
		FirstName: &first,
		Email:     &email,
	})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if updated.FirstName != "Henri" {
		t.Fatalf("first name not updated: %+v", updated)
	}
	if updated.Email != "henri@example.com" {
		t.Fatalf("expected normalized email, got %q", updated.Email)
	}
	if updated.LastName != "User" {
		t.Fatalf("untouched field changed: %+v", updated)
	}
}

func TestUserService_UpdateProfile_EmailTaken(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, &stubAvatarStore{}, zerolog.Nop())
	u := seedUser(t, repo, "ivy@example.com")
	seedUser(t, repo, "taken@example.com")

	email := "taken@example.com"
	if _, err := svc.UpdateProfile(context.Background(), u.ID, ports.UpdateProfileInput{Email: &email}); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	// keeping your own email is not a conflict
	own := "ivy@example.com"
	if _, err := svc.UpdateProfile(context.Background(), u.ID, ports.UpdateProfileInput{Email: &own}); err != nil {
		t.Fatalf("own email rejected: %v", err)
	}
}

func TestUserService_UpdateAvatar(t *testing.T) {
	repo := newStubUserRepo()
	store := &stubAvatarStore{}
	svc := NewUserService(repo, store, zerolog.Nop())
	u := seedUser(t, repo, "jack@example.com")

	upload := ports.AvatarUpload{Filename: "me.png", Content: strings.NewReader("img")}
	first, err := svc.UpdateAvatar(context.Background(), u.ID, upload)
	if err != nil {
		t.Fatalf("update avatar: %v", err)
	}
	if first.Avatar == "" {
		t.Fatalf("avatar url not set: %+v", first)
	}
	if len(store.removed) != 0 {
		t.Fatalf("nothing should be removed on first upload, got %v", store.removed)
	}

	// replacing deletes the previous file
	upload = ports.AvatarUpload{Filename: "me2.png", Content: strings.NewReader("img2")}
	second, err := svc.UpdateAvatar(context.Background(), u.ID, upload)
	if err != nil {
		t.Fatalf("replace avatar: %v", err)
	}
	if second.Avatar == first.Avatar {
		t.Fatalf("avatar url not replaced")
	}
	if len(store.removed) != 1 || store.removed[0] != first.Avatar {
		t.Fatalf("old avatar not removed: %v", store.removed)
	}
}

func TestUserService_UpdateAvatar_RemoveFailureDoesNotBlock(t *testing.T) {
	repo := newStubUserRepo()
	store := &stubAvatarStore{rmErr: errors.New("file locked")}
	svc := NewUserService(repo, store, zerolog.Nop())
	u := seedUser(t, repo, "kate@example.com")

	if _, err := svc.UpdateAvatar(context.Background(), u.ID, ports.AvatarUpload{
		Filename: "a.png", Content: strings.NewReader("1"),
	}); err != nil {
		t.Fatalf("first upload: %v", err)
	}

	updated, err := svc.UpdateAvatar(context.Background(), u.ID, ports.AvatarUpload{
		Filename: "b.png", Content: strings.NewReader("2"),
	})
	if err != nil {
		t.Fatalf("replace must succeed despite delete failure, got %v", err)
	}
	if updated.Avatar == "" {
		t.Fatalf("avatar not updated: %+v", updated)
	}
}

func TestUserService_UpdateAvatar_NoFile(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, &stubAvatarStore{}, zerolog.Nop())
	u := seedUser(t, repo, "liam@example.com")

	if _, err := svc.UpdateAvatar(context.Background(), u.ID, ports.AvatarUpload{}); !errors.Is(err, domain.ErrNoFile) {
		t.Fatalf("expected ErrNoFile, got %v", err)
	}
}
