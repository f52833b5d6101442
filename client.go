package courier

import (
	"context"
	"time"
)

type RequestOption func(*RequestOptions)

// RequestOptions holds the per-call settings assembled from RequestOption values.
type RequestOptions struct {
	// Data is the request payload. GET and DELETE reject a non-nil payload.
	Data Payload

	// Controller aborts the call. When nil the client creates one for the call.
	Controller *Controller

	// Authenticate attaches a bearer token from the auth provider. Defaults to true.
	Authenticate bool

	// Headers override the client's default headers for this call.
	Headers map[string]string

	// Timeout overrides the client's default timeout for this call.
	Timeout time.Duration
}

func NewRequestOptions(options ...RequestOption) RequestOptions {
	opts := RequestOptions{Authenticate: true}
	for _, option := range options {
		if option != nil {
			option(&opts)
		}
	}
	return opts
}

type Client interface {
	Do(ctx context.Context, method, route string, options ...RequestOption) (*Result, error)
	Get(ctx context.Context, route string, options ...RequestOption) (*Result, error)
	Post(ctx context.Context, route string, options ...RequestOption) (*Result, error)
	Put(ctx context.Context, route string, options ...RequestOption) (*Result, error)
	Patch(ctx context.Context, route string, options ...RequestOption) (*Result, error)
	Delete(ctx context.Context, route string, options ...RequestOption) (*Result, error)
	UpdateHeaders(headers map[string]string)
	AddPlugin(plugins ...Plugin)
}
