package client

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	encodedFilenamePattern = regexp.MustCompile(`(?i)filename\*\s*=\s*[^']*'[^']*'([^;\n]+)`)
	plainFilenamePattern   = regexp.MustCompile(`(?i)filename\s*=\s*"?([^";\n]+)"?`)
)

// extractFilename reads the file name from a Content-Disposition value,
// preferring the RFC 5987 filename* form. Failures are logged, never returned.
func (c *Client) extractFilename(contentDisposition string) string {
	if contentDisposition == "" {
		return ""
	}

	if m := encodedFilenamePattern.FindStringSubmatch(contentDisposition); m != nil {
		encoded := strings.TrimSpace(m[1])
		name, err := url.PathUnescape(encoded)
		if err != nil {
			c.log.Warn().
				Err(err).
				Str("content_disposition", contentDisposition).
				Msg("failed to decode filename from Content-Disposition header")
			return ""
		}
		return name
	}

	if m := plainFilenamePattern.FindStringSubmatch(contentDisposition); m != nil {
		return strings.TrimSpace(m[1])
	}

	if strings.Contains(strings.ToLower(contentDisposition), "filename") {
		c.log.Warn().
			Str("content_disposition", contentDisposition).
			Msg("unrecognized Content-Disposition format, unable to extract filename")
	}

	return ""
}
