package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/dyaksa/courier"
)

// SupportedFileTypes are document, archive and text types returned as blobs.
var SupportedFileTypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"application/rtf",
	"application/vnd.oasis.opendocument.text",

	"application/vnd.ms-excel",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"text/csv",

	"application/vnd.ms-powerpoint",
	"application/vnd.openxmlformats-officedocument.presentationml.presentation",

	"application/zip",
	"application/x-zip-compressed",
	"application/x-tar",
	"application/x-7z-compressed",
	"application/x-rar-compressed",
	"application/gzip",

	"text/plain",
	"text/markdown",
}

// SupportedMediaTypes are audio, video, image, font and model types returned as blobs.
var SupportedMediaTypes = []string{
	"audio/mpeg",
	"audio/wav",
	"audio/ogg",
	"audio/webm",
	"audio/aac",
	"audio/flac",
	"audio/mp4",
	"audio/3gpp",

	"video/mp4",
	"video/webm",
	"video/ogg",
	"video/quicktime",
	"video/x-msvideo",
	"video/x-matroska",
	"video/3gpp",

	"image/png",
	"image/jpeg",
	"image/gif",
	"image/webp",
	"image/svg+xml",
	"image/avif",
	"image/bmp",
	"image/tiff",

	"font/woff",
	"font/woff2",
	"font/ttf",
	"font/otf",
	"application/font-woff",
	"application/vnd.ms-fontobject",

	"model/gltf+json",
	"model/obj",
	"model/stl",
	"model/3mf",

	"application/octet-stream",
}

func hasTypePrefix(contentType string, types []string) bool {
	for _, t := range types {
		if strings.HasPrefix(contentType, t) {
			return true
		}
	}
	return false
}

// handleSuccess decodes a 2xx response by its content type.
func (c *Client) handleSuccess(ctx context.Context, resp *http.Response) (*courier.Result, error) {
	if resp.Header.Get(HeaderUpdateToken) == "true" {
		c.refreshToken(ctx)
	}

	result := &courier.Result{
		Kind:       courier.KindEmpty,
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
	}

	contentType := resp.Header.Get(HeaderContentType)
	lowered := strings.ToLower(contentType)

	switch {
	case strings.HasPrefix(lowered, contentTypeJSON):
		if resp.StatusCode == http.StatusNoContent || resp.ContentLength == 0 {
			return result, nil
		}
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read response body")
		}
		if len(bytes.TrimSpace(data)) == 0 {
			return result, nil
		}
		if !json.Valid(data) {
			return nil, errors.New("invalid JSON response body")
		}
		result.Kind = courier.KindJSON
		result.JSON = json.RawMessage(data)

	case hasTypePrefix(lowered, SupportedFileTypes), hasTypePrefix(lowered, SupportedMediaTypes):
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read response body")
		}
		if len(data) == 0 {
			return result, nil
		}
		result.Kind = courier.KindBlob
		result.Blob = &courier.Blob{
			Data:        data,
			ContentType: contentType,
			Filename:    c.extractFilename(resp.Header.Get(HeaderContentDisposition)),
		}

	default:
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read response body")
		}
		if len(data) == 0 {
			return result, nil
		}
		result.Kind = courier.KindText
		result.Text = string(data)
	}

	return result, nil
}
