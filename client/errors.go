package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// ConfigError reports an invalid client configuration.
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

func (e *ConfigError) Error() string { return e.Message }

func (e *ConfigError) Unwrap() error { return e.Err }

// UsageError reports a payload passed to GET or DELETE. No request is sent.
type UsageError struct {
	Method  string
	Message string
}

func (e *UsageError) Error() string { return e.Message }

// SessionExpiredError reports that no bearer token could be acquired.
// Err holds the failures of the individual attempts, if any.
type SessionExpiredError struct {
	Message string
	Err     error
}

func (e *SessionExpiredError) Error() string { return e.Message }

func (e *SessionExpiredError) Unwrap() error { return e.Err }

// RequestFailedError reports a non-2xx response.
type RequestFailedError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *RequestFailedError) Error() string { return e.Message }

// StatusCode returns the HTTP status of a *RequestFailedError anywhere in err's chain, or 0.
func StatusCode(err error) int {
	var rf *RequestFailedError
	if errors.As(err, &rf) {
		return rf.StatusCode
	}
	return 0
}

var messageFields = []string{"message", "msg", "error", "detail", "details"}

// handleError builds the error for a non-2xx response.
func (c *Client) handleError(resp *http.Response) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read error response body")
	}

	var msg string
	if strings.Contains(strings.ToLower(resp.Header.Get(HeaderContentType)), contentTypeJSON) {
		msg = extractJSONMessage(data)
	} else {
		msg = string(data)
	}

	if strings.TrimSpace(msg) == "" {
		msg = c.messages.RequestFailed(resp.StatusCode)
	}

	return &RequestFailedError{
		StatusCode: resp.StatusCode,
		Message:    msg,
		Body:       data,
	}
}

// extractJSONMessage picks the human-readable message out of a JSON error body.
func extractJSONMessage(data []byte) string {
	var body any
	if err := json.Unmarshal(data, &body); err != nil {
		return string(data)
	}

	if obj, ok := body.(map[string]any); ok {
		for _, field := range messageFields {
			if s, ok := obj[field].(string); ok && s != "" {
				return s
			}
		}

		if list, ok := obj["errors"].([]any); ok && len(list) > 0 {
			parts := make([]string, 0, len(list))
			for _, item := range list {
				parts = append(parts, stringify(item))
			}
			return strings.Join(parts, ", ")
		}
	}

	if s, ok := body.(string); ok {
		return s
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, data); err != nil {
		return string(data)
	}
	return compact.String()
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return ""
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}
