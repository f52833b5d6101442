package client

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/dyaksa/courier"
)

var errEmptyToken = errors.New("auth provider returned an empty token")

// acquireToken returns a bearer token from the current principal. It makes
// up to three attempts; when they are exhausted the principal is signed out,
// OnAuthFailure runs and a *SessionExpiredError is returned.
func (c *Client) acquireToken(ctx context.Context, forceRefresh bool) (string, error) {
	attemptErrs := &MultiError{}

	for attempt := 0; attempt < maxTokenAttempts; {
		var principal courier.Principal
		if c.auth != nil {
			principal = c.auth.CurrentUser()
		}

		if principal == nil {
			if err := c.sleep(ctx, c.principalWait.NextInterval(attempt)); err != nil {
				return "", err
			}
			attempt++
			continue
		}

		token, err := principal.IDToken(ctx, forceRefresh)
		if err == nil && token != "" {
			return token, nil
		}
		if err == nil {
			err = errEmptyToken
		}

		attempt++
		attemptErrs.Push(err)
		if attempt >= maxTokenAttempts {
			c.log.Error().Err(err).Int("attempts", attempt).Msg("failed to acquire auth token")
			break
		}

		if err := c.sleep(ctx, c.tokenRetrier.NextInterval(attempt)); err != nil {
			return "", err
		}
	}

	if c.auth != nil {
		if err := c.auth.SignOut(ctx); err != nil {
			c.log.Error().Err(err).Msg("failed to sign out after token error")
		}
	}

	if c.onAuthFailure != nil {
		c.onAuthFailure()
	}

	return "", &SessionExpiredError{
		Message: c.messages.SessionExpired(),
		Err:     attemptErrs.HasError(),
	}
}

// refreshToken forces a token refresh in the background so the provider
// caches a fresh token for later calls. The current call does not wait.
func (c *Client) refreshToken(ctx context.Context) {
	if c.auth == nil {
		c.log.Debug().Msg("update-token requested without an auth provider")
		return
	}

	ctx = context.WithoutCancel(ctx)
	go func() {
		if _, err := c.acquireToken(ctx, true); err != nil {
			c.log.Warn().Err(err).Msg("background token refresh failed")
		}
	}()
}

// sleepContext waits for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "token acquisition interrupted")
	case <-t.C:
		return nil
	}
}
