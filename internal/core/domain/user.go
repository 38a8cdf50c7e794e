package domain

import (
	"errors"
	"time"
)

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email is already in use")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrAuthenticationFailed = errors.New("authentication failed")
var ErrInvalidToken = errors.New("invalid token")
var ErrNoFile = errors.New("no file uploaded")

// User models an account holder. PasswordHash is empty for accounts created
// through Google OAuth; GoogleID is empty for local accounts.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	GoogleID     string
	Avatar       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasPassword reports whether the account can authenticate with local
// credentials at all. OAuth-only accounts cannot.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}
