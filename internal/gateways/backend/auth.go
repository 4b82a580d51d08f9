package backend

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"subtrack/internal/entity"
)

// Login exchanges credentials for a session token. The endpoint speaks
// the OAuth2 password-grant form encoding, with the email as username.
// A 401 here means wrong credentials, not a missing session.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	form := url.Values{
		"username": {email},
		"password": {password},
	}

	var tok TokenResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", false,
		"application/x-www-form-urlencoded", strings.NewReader(form.Encode()), &tok)
	if errors.Is(err, ErrNotAuthenticated) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	return tok.AccessToken, nil
}

// Signup registers a new account. The user still has to log in after.
func (c *Client) Signup(ctx context.Context, email, password string) (*entity.User, error) {
	body := map[string]string{"email": email, "password": password}
	var u entity.User
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/signup", false, body, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// SocialLogin trades a provider token (google, facebook, linkedin) for
// a session token.
func (c *Client) SocialLogin(ctx context.Context, provider, providerToken string) (string, error) {
	body := map[string]string{"provider": provider, "token": providerToken}
	var tok TokenResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/social-login", false, body, &tok); err != nil {
		return "", err
	}
	return tok.AccessToken, nil
}
