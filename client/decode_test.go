package client

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyaksa/courier"
)

type user struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func TestHandleSuccess_JSON(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/user":
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			_, _ = w.Write([]byte(`{"id":7,"name":"ada"}`))
		case "/no-content":
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNoContent)
		case "/zero-length":
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Content-Length", "0")
			w.WriteHeader(http.StatusOK)
		case "/whitespace":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("  \n"))
		case "/broken":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":`))
		}
	})
	c := newTestClient(t, srv.URL)
	ctx := context.Background()

	t.Run("decodes body", func(t *testing.T) {
		res, err := c.Get(ctx, "/user")
		require.NoError(t, err)
		assert.Equal(t, courier.KindJSON, res.Kind)

		u, err := courier.DecodeJSON[user](res, nil)
		require.NoError(t, err)
		assert.Equal(t, &user{ID: 7, Name: "ada"}, u)
	})

	for _, route := range []string{"/no-content", "/zero-length", "/whitespace"} {
		t.Run("empty "+route, func(t *testing.T) {
			res, err := c.Get(ctx, route)
			require.NoError(t, err)
			assert.True(t, res.Empty())

			u, err := courier.DecodeJSON[user](c.Get(ctx, route))
			require.NoError(t, err)
			assert.Nil(t, u)
		})
	}

	t.Run("invalid JSON", func(t *testing.T) {
		_, err := c.Get(ctx, "/broken")
		assert.Error(t, err)
	})
}

func TestHandleSuccess_Blob(t *testing.T) {
	pdf := []byte("%PDF-1.7 fake")
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/report":
			w.Header().Set("Content-Type", "application/pdf")
			w.Header().Set("Content-Disposition", `attachment; filename="a.pdf"`)
			_, _ = w.Write(pdf)
		case "/anonymous":
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write([]byte{0x89, 0x50})
		case "/encoded":
			w.Header().Set("Content-Type", "text/csv")
			w.Header().Set("Content-Disposition", `attachment; filename*=UTF-8''report%20final.csv`)
			_, _ = w.Write([]byte("a,b\n"))
		case "/empty":
			w.Header().Set("Content-Type", "application/zip")
			w.WriteHeader(http.StatusOK)
		}
	})
	c := newTestClient(t, srv.URL)
	ctx := context.Background()

	t.Run("pdf with filename", func(t *testing.T) {
		res, err := c.Get(ctx, "/report")
		require.NoError(t, err)
		require.Equal(t, courier.KindBlob, res.Kind)
		assert.Equal(t, pdf, res.Blob.Data)
		assert.Equal(t, "a.pdf", res.Blob.Filename)
		assert.Equal(t, "application/pdf", res.Blob.ContentType)
	})

	t.Run("media without filename", func(t *testing.T) {
		res, err := c.Get(ctx, "/anonymous")
		require.NoError(t, err)
		require.Equal(t, courier.KindBlob, res.Kind)
		assert.Empty(t, res.Blob.Filename)
	})

	t.Run("encoded filename", func(t *testing.T) {
		res, err := c.Get(ctx, "/encoded")
		require.NoError(t, err)
		require.Equal(t, courier.KindBlob, res.Kind)
		assert.Equal(t, "report final.csv", res.Blob.Filename)
	})

	t.Run("empty blob", func(t *testing.T) {
		res, err := c.Get(ctx, "/empty")
		require.NoError(t, err)
		assert.True(t, res.Empty())
		assert.Nil(t, res.Blob)
	})
}

func TestHandleSuccess_Text(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		if r.URL.Path == "/page" {
			_, _ = w.Write([]byte("<p>hi</p>"))
		}
	})
	c := newTestClient(t, srv.URL)

	res, err := c.Get(context.Background(), "/page")
	require.NoError(t, err)
	assert.Equal(t, courier.KindText, res.Kind)
	assert.Equal(t, "<p>hi</p>", res.Text)

	res, err = c.Get(context.Background(), "/empty")
	require.NoError(t, err)
	assert.True(t, res.Empty())
}

func TestHandleSuccess_UpdateTokenRefreshes(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Update-Token", "true")
		w.WriteHeader(http.StatusNoContent)
	})
	principal := &fakePrincipal{}
	c := newTestClient(t, srv.URL, func(cfg *Config) {
		cfg.Auth = &fakeAuth{principal: principal}
	})

	res, err := c.Get(context.Background(), "/")
	require.NoError(t, err)
	assert.True(t, res.Empty())

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&principal.refreshes) == 1
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, int32(2), atomic.LoadInt32(&principal.calls))
}
