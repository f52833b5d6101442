package courier

import (
	"io"
	"net/url"
)

// Payload is the request body. The set of implementations is closed:
// JSON, Form, Multipart, Binary and Stream.
type Payload interface {
	payload()
}

// JSON is serialized with encoding/json and sent as application/json.
type JSON struct {
	Value any
}

// Form is sent URL-encoded as application/x-www-form-urlencoded.
type Form url.Values

// Multipart is sent as multipart/form-data.
type Multipart struct {
	Fields map[string]string
	Files  []File
}

type File struct {
	Name      string
	ParamName string
	Reader    io.Reader
}

// Binary is sent as-is. ContentType is used only when the caller did not set one.
type Binary struct {
	Data        []byte
	ContentType string
}

// Stream is sent as-is with no Content-Type of its own.
type Stream struct {
	Reader io.Reader
}

func (JSON) payload()      {}
func (Form) payload()      {}
func (Multipart) payload() {}
func (Binary) payload()    {}
func (Stream) payload()    {}
