package ports

import "context"

// GoogleProfile is the subset of the Google user-info response the auth
// service needs to find-or-create a local account.
type GoogleProfile struct {
	Subject    string
	Email      string
	GivenName  string
	FamilyName string
	Picture    string
}

// IdentityProvider fetches the profile behind an external OAuth access
// token. Implementations must bound the outbound call with a timeout; a
// timeout is reported like any other fetch failure.
type IdentityProvider interface {
	FetchProfile(ctx context.Context, accessToken string) (*GoogleProfile, error)
}
