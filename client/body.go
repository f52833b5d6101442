package client

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/url"
	"sort"

	"github.com/pkg/errors"

	"github.com/dyaksa/courier"
)

// encodeBody turns the payload into a request body and the content type it
// implies. An empty content type leaves the header to the caller.
func encodeBody(data courier.Payload) (io.Reader, string, error) {
	switch payload := data.(type) {
	case nil:
		return nil, contentTypeJSON, nil
	case courier.Form:
		return bytes.NewBufferString(url.Values(payload).Encode()), contentTypeForm, nil
	case courier.Multipart:
		return encodeMultipart(payload)
	case courier.Binary:
		return bytes.NewReader(payload.Data), payload.ContentType, nil
	case courier.Stream:
		return payload.Reader, "", nil
	case courier.JSON:
		b, err := json.Marshal(payload.Value)
		if err != nil {
			return nil, "", errors.Wrap(err, "failed to encode JSON body")
		}
		return bytes.NewReader(b), contentTypeJSON, nil
	default:
		return nil, "", errors.Errorf("unsupported payload type %T", data)
	}
}

func encodeMultipart(payload courier.Multipart) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	keys := make([]string, 0, len(payload.Fields))
	for key := range payload.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := w.WriteField(key, payload.Fields[key]); err != nil {
			return nil, "", errors.Wrap(err, "failed to write multipart field")
		}
	}

	for _, file := range payload.Files {
		part, err := w.CreateFormFile(file.ParamName, file.Name)
		if err != nil {
			return nil, "", errors.Wrap(err, "failed to create multipart file")
		}
		if file.Reader != nil {
			if _, err := io.Copy(part, file.Reader); err != nil {
				return nil, "", errors.Wrapf(err, "failed to copy file %s", file.Name)
			}
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", errors.Wrap(err, "failed to close multipart writer")
	}

	return &buf, w.FormDataContentType(), nil
}
