package client

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyaksa/courier/locale"
)

func TestExtractJSONMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"message", `{"message":"bad input"}`, "bad input"},
		{"msg", `{"msg":"short"}`, "short"},
		{"error", `{"error":"forbidden"}`, "forbidden"},
		{"detail", `{"detail":"not found"}`, "not found"},
		{"details", `{"details":"conflict"}`, "conflict"},
		{"priority", `{"detail":"second","message":"first"}`, "first"},
		{"skips empty and non-string", `{"message":"","error":{"code":1},"detail":"used"}`, "used"},
		{"errors array", `{"errors":["a","b"]}`, "a, b"},
		{"errors with objects", `{"errors":["a",{"field":"x"}]}`, `a, {"field":"x"}`},
		{"json string", `"plain"`, "plain"},
		{"fallback", `{"code": 42}`, `{"code":42}`},
		{"not json", `oops`, "oops"},
		{"empty", ``, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSONMessage([]byte(tt.body)))
		})
	}
}

func TestHandleError(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/json":
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"message": "bad input"}`))
		case "/errors":
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"errors": ["a","b"]}`))
		case "/text":
			w.Header().Set("Content-Type", "text/plain")
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("upstream down"))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	})
	ctx := context.Background()

	tests := []struct {
		route  string
		status int
		want   string
	}{
		{"/json", http.StatusBadRequest, "bad input"},
		{"/errors", http.StatusUnprocessableEntity, "a, b"},
		{"/text", http.StatusBadGateway, "upstream down"},
		{"/empty", http.StatusInternalServerError, "Request failed with status 500."},
	}

	c := newTestClient(t, srv.URL)
	for _, tt := range tests {
		t.Run(tt.route, func(t *testing.T) {
			res, err := c.Get(ctx, tt.route)
			assert.Nil(t, res)
			require.Error(t, err)
			assert.EqualError(t, err, tt.want)

			var failed *RequestFailedError
			require.True(t, errors.As(err, &failed))
			assert.Equal(t, tt.status, failed.StatusCode)
			assert.Equal(t, tt.status, StatusCode(err))
		})
	}

	t.Run("localized fallback", func(t *testing.T) {
		sv := newTestClient(t, srv.URL, func(cfg *Config) {
			cfg.Language = locale.SV
		})
		_, err := sv.Get(ctx, "/empty")
		assert.EqualError(t, err, "Förfrågan misslyckades med status 500.")
	})
}

func TestStatusCode_NotRequestFailed(t *testing.T) {
	assert.Equal(t, 0, StatusCode(errors.New("boom")))
	assert.Equal(t, 0, StatusCode(nil))
}
