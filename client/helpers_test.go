package client

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/dyaksa/courier"
)

const (
	testToken     = "test-token"
	testUsersPath = "/users"
)

type fakePrincipal struct {
	mu        sync.Mutex
	results   []tokenResult
	calls     int32
	refreshes int32
}

type tokenResult struct {
	token string
	err   error
}

// IDToken replays results in order and repeats the last one.
func (p *fakePrincipal) IDToken(_ context.Context, forceRefresh bool) (string, error) {
	atomic.AddInt32(&p.calls, 1)
	if forceRefresh {
		atomic.AddInt32(&p.refreshes, 1)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.results) == 0 {
		return testToken, nil
	}
	r := p.results[0]
	if len(p.results) > 1 {
		p.results = p.results[1:]
	}
	return r.token, r.err
}

type fakeAuth struct {
	principal  courier.Principal
	signOuts   int32
	signOutErr error
}

func (a *fakeAuth) CurrentUser() courier.Principal {
	return a.principal
}

func (a *fakeAuth) SignOut(context.Context) error {
	atomic.AddInt32(&a.signOuts, 1)
	return a.signOutErr
}

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(t *testing.T, baseURL string, mutate ...func(*Config)) *Client {
	t.Helper()
	cfg := Config{
		BaseURL: baseURL,
		Auth:    courier.StaticToken(testToken),
	}
	for _, m := range mutate {
		m(&cfg)
	}
	c, err := New(cfg)
	require.NoError(t, err)
	return c
}

// recordSleeps replaces the client's waits with a recorder that returns immediately.
func recordSleeps(c *Client) func() []time.Duration {
	var mu sync.Mutex
	var waits []time.Duration
	c.sleep = func(_ context.Context, d time.Duration) error {
		mu.Lock()
		defer mu.Unlock()
		waits = append(waits, d)
		return nil
	}
	return func() []time.Duration {
		mu.Lock()
		defer mu.Unlock()
		return append([]time.Duration(nil), waits...)
	}
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newBufferLogger() (*zerolog.Logger, *syncBuffer) {
	buf := &syncBuffer{}
	log := zerolog.New(buf)
	return &log, buf
}
