package client

import (
	"context"
	"net/http"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/dyaksa/courier"
)

const (
	HeaderAuthorization      = "Authorization"
	HeaderClientVersion      = "X-Client-Version"
	HeaderContentType        = "Content-Type"
	HeaderContentDisposition = "Content-Disposition"
	HeaderUpdateToken        = "Update-Token"

	contentTypeJSON = "application/json"
	contentTypeForm = "application/x-www-form-urlencoded"
)

// canonicalHeaderKey capitalizes every hyphen-separated segment: "x-client-version" becomes "X-Client-Version".
func canonicalHeaderKey(key string) string {
	parts := strings.Split(strings.ToLower(key), "-")
	for i, part := range parts {
		if part != "" {
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, "-")
}

// mergeHeaders folds the sources in order into one Train-Case set. Keys of a
// single source are applied in sorted order, so the later spelling of a
// header wins deterministically.
func (c *Client) mergeHeaders(sources ...map[string]string) http.Header {
	merged := make(http.Header)
	variants := make(map[string][]string)

	for _, source := range sources {
		keys := make([]string, 0, len(source))
		for key := range source {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			lower := strings.ToLower(key)
			if !containsString(variants[lower], key) {
				variants[lower] = append(variants[lower], key)
			}
			merged[canonicalHeaderKey(key)] = []string{source[key]}
		}
	}

	for lower, spellings := range variants {
		if len(spellings) > 1 {
			c.log.Warn().
				Str("header", lower).
				Strs("variants", spellings).
				Msg("duplicate header with different casing, only the last one is used")
		}
	}

	return merged
}

// resolveHeaders builds the outgoing header set: defaults merged with
// per-call overrides, the bearer token, the client version, the optional
// request id and the payload's content type.
func (c *Client) resolveHeaders(ctx context.Context, opts courier.RequestOptions, contentType string) (http.Header, error) {
	headers := c.mergeHeaders(*c.headers.Load(), opts.Headers)

	if opts.Authenticate {
		token, err := c.acquireToken(ctx, false)
		if err != nil {
			return nil, err
		}
		headers[HeaderAuthorization] = []string{c.authType + " " + token}
	}

	if _, ok := headers[HeaderClientVersion]; !ok {
		headers[HeaderClientVersion] = []string{c.clientVersion}
	}

	if c.requestIDHeader != "" {
		key := canonicalHeaderKey(c.requestIDHeader)
		if _, ok := headers[key]; !ok {
			headers[key] = []string{uuid.NewString()}
		}
	}

	if _, ok := headers[HeaderContentType]; !ok && contentType != "" {
		headers[HeaderContentType] = []string{contentType}
	}

	return headers, nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
