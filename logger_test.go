package courier

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	plugin := NewLogger(zerolog.New(&buf))
	assert.Equal(t, "logger", plugin.Type())

	req := httptest.NewRequest(http.MethodGet, "https://api.example.com/users", nil)

	plugin.OnRequestStart(req)
	plugin.OnRequestEnd(req, &http.Response{StatusCode: http.StatusOK})

	out := buf.String()
	assert.Contains(t, out, `"message":"courier request"`)
	assert.Contains(t, out, `"message":"courier response"`)
	assert.Contains(t, out, `"status":200`)
	assert.Contains(t, out, `"url":"https://api.example.com/users"`)

	buf.Reset()
	plugin.OnRequestStart(req)
	plugin.OnRequestError(req, errors.New("connection refused"))
	assert.Contains(t, buf.String(), `"error":"connection refused"`)
	assert.Contains(t, buf.String(), `"message":"courier request failed"`)
}
