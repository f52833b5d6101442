package courier

import (
	"sync"
	"time"

	"github.com/cenkalti/backoff"
)

// Retriable yields the wait before the given retry of token acquisition.
type Retriable interface {
	NextInterval(retry int) time.Duration
}

type RetriableFunc func(retry int) time.Duration

func (f RetriableFunc) NextInterval(retry int) time.Duration {
	return f(retry)
}

func NewRetrierFunc(f RetriableFunc) Retriable {
	return f
}

// DefaultTokenRetrier waits retry seconds after a failed token request.
var DefaultTokenRetrier Retriable = RetriableFunc(func(retry int) time.Duration {
	return time.Duration(retry) * time.Second
})

// DefaultPrincipalWait waits 3s for a principal to appear on the first
// attempt and retry seconds afterwards.
var DefaultPrincipalWait Retriable = RetriableFunc(func(retry int) time.Duration {
	if retry == 0 {
		return 3 * time.Second
	}
	return time.Duration(retry) * time.Second
})

type retrier struct {
	mu      sync.Mutex
	backoff backoff.BackOff
}

// NewRetrier adapts a backoff policy into a Retriable. The policy restarts on
// the first retry; a policy that stops yields no wait.
//
// The policy is shared by every token acquisition of the client, so
// concurrent acquisitions advance and restart the same schedule. Use a
// stateless RetriableFunc when the waits must not interleave.
func NewRetrier(b backoff.BackOff) Retriable {
	return &retrier{
		backoff: b,
	}
}

func (r *retrier) NextInterval(retry int) time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()

	if retry <= 1 {
		r.backoff.Reset()
	}

	next := r.backoff.NextBackOff()
	if next == backoff.Stop {
		return 0
	}
	return next
}

type noRetrier struct {
}

func NewNoRetrier() Retriable {
	return &noRetrier{}
}

func (r *noRetrier) NextInterval(retry int) time.Duration {
	return 0 * time.Millisecond
}
