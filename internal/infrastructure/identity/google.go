// Package identity talks to external OAuth identity providers.
package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Aman7097/taskie/internal/api/metrics"
	"github.com/Aman7097/taskie/internal/core/ports"
)

const defaultTimeout = 5 * time.Second

// Config captures the settings for the Google user-info client.
type Config struct {
	UserInfoURL string
	Timeout     time.Duration
}

// GoogleProvider resolves a Google access token to the holder's profile via
// the OpenID Connect user-info endpoint. Every call is bounded by the
// configured timeout; a timeout surfaces as an ordinary fetch error.
type GoogleProvider struct {
	userInfoURL string
	client      *http.Client
}

func NewGoogleProvider(cfg Config) *GoogleProvider {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &GoogleProvider{
		userInfoURL: cfg.UserInfoURL,
		client:      &http.Client{Timeout: timeout},
	}
}

// userInfoResponse is the subset of the OIDC user-info payload we read.
type userInfoResponse struct {
	Sub        string `json:"sub"`
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Picture    string `json:"picture"`
}

func (p *GoogleProvider) FetchProfile(ctx context.Context, accessToken string) (*ports.GoogleProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("google userinfo: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	start := time.Now()
	resp, err := p.client.Do(req)
	if err != nil {
		metrics.GoogleUserInfoDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return nil, fmt.Errorf("google userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.GoogleUserInfoDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return nil, fmt.Errorf("google userinfo: unexpected status %d", resp.StatusCode)
	}

	var info userInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		metrics.GoogleUserInfoDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return nil, fmt.Errorf("google userinfo: decode: %w", err)
	}
	metrics.GoogleUserInfoDuration.WithLabelValues("success").Observe(time.Since(start).Seconds())

	if info.Sub == "" {
		return nil, fmt.Errorf("google userinfo: response missing subject")
	}

	return &ports.GoogleProfile{
		Subject:    info.Sub,
		Email:      info.Email,
		GivenName:  info.GivenName,
		FamilyName: info.FamilyName,
		Picture:    info.Picture,
	}, nil
}
