package usecase

import (
	"context"
	"errors"
	"strings"

	"subtrack/internal/entity"
)

// Auth handles the session lifecycle around the token store
type Auth struct {
	api    API
	tokens TokenStore
	cache  ListCache
}

// NewAuth creates the auth use case
func NewAuth(api API, tokens TokenStore, cache ListCache) *Auth {
	return &Auth{
		api:    api,
		tokens: tokens,
		cache:  cache,
	}
}

// LogIn exchanges credentials for a session token and persists it
func (a *Auth) LogIn(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return ErrMissingCredentials
	}
	token, err := a.api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return a.tokens.Save(token)
}

// SignUp registers a new account. The caller still logs in afterwards.
func (a *Auth) SignUp(ctx context.Context, email, password string) (*entity.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}
	return a.api.Signup(ctx, email, password)
}

// SocialLogIn trades a provider token for a session token and persists it
func (a *Auth) SocialLogIn(ctx context.Context, provider, providerToken string) error {
	if provider == "" || providerToken == "" {
		return ErrMissingCredentials
	}
	token, err := a.api.SocialLogin(ctx, provider, providerToken)
	if err != nil {
		return err
	}
	return a.tokens.Save(token)
}

// LogOut forgets the session token and the cached list. Purely local,
// the backend keeps no session state to tear down.
func (a *Auth) LogOut() error {
	return errors.Join(a.tokens.Clear(), a.cache.Clear())
}
