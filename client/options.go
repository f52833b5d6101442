package client

import (
	"io"
	"net/url"
	"time"

	"github.com/dyaksa/courier"
)

func WithData(data courier.Payload) courier.RequestOption {
	return func(o *courier.RequestOptions) {
		o.Data = data
	}
}

func WithJSON(body any) courier.RequestOption {
	return WithData(courier.JSON{Value: body})
}

func WithForm(values url.Values) courier.RequestOption {
	return WithData(courier.Form(values))
}

func WithMultipart(fields map[string]string, files ...courier.File) courier.RequestOption {
	return WithData(courier.Multipart{Fields: fields, Files: files})
}

func WithBinary(data []byte, contentType string) courier.RequestOption {
	return WithData(courier.Binary{Data: data, ContentType: contentType})
}

func WithStream(r io.Reader) courier.RequestOption {
	return WithData(courier.Stream{Reader: r})
}

// WithHeaders merges headers into the per-call overrides.
func WithHeaders(headers map[string]string) courier.RequestOption {
	return func(o *courier.RequestOptions) {
		if o.Headers == nil {
			o.Headers = make(map[string]string, len(headers))
		}
		for key, value := range headers {
			o.Headers[key] = value
		}
	}
}

func WithHeader(key, value string) courier.RequestOption {
	return WithHeaders(map[string]string{key: value})
}

// WithBearerToken sends token as-is and skips the auth provider for this call.
func WithBearerToken(token string) courier.RequestOption {
	return func(o *courier.RequestOptions) {
		WithHeader(HeaderAuthorization, AuthTypeBearer+" "+token)(o)
		o.Authenticate = false
	}
}

func WithController(controller *courier.Controller) courier.RequestOption {
	return func(o *courier.RequestOptions) {
		o.Controller = controller
	}
}

func WithAuthenticate(authenticate bool) courier.RequestOption {
	return func(o *courier.RequestOptions) {
		o.Authenticate = authenticate
	}
}

// WithoutAuth sends the call without an Authorization header from the auth provider.
func WithoutAuth() courier.RequestOption {
	return WithAuthenticate(false)
}

func WithTimeout(timeout time.Duration) courier.RequestOption {
	return func(o *courier.RequestOptions) {
		o.Timeout = timeout
	}
}
