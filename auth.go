package courier

import (
	"context"
	"sync/atomic"

	"github.com/pkg/errors"
)

// AuthProvider is the external identity provider holding the session.
type AuthProvider interface {
	// CurrentUser returns the signed-in principal, or nil when none is present yet.
	CurrentUser() Principal
	SignOut(ctx context.Context) error
}

// Principal issues bearer tokens. Token caching and expiry belong to the provider.
type Principal interface {
	IDToken(ctx context.Context, forceRefresh bool) (string, error)
}

type staticToken struct {
	token     string
	signedOut atomic.Bool
}

// StaticToken returns a provider that always issues the same token until it is signed out.
func StaticToken(token string) AuthProvider {
	return &staticToken{token: token}
}

func (s *staticToken) CurrentUser() Principal {
	if s.signedOut.Load() {
		return nil
	}
	return s
}

func (s *staticToken) SignOut(context.Context) error {
	s.signedOut.Store(true)
	return nil
}

func (s *staticToken) IDToken(context.Context, bool) (string, error) {
	if s.token == "" {
		return "", errors.New("static token is empty")
	}
	return s.token, nil
}
