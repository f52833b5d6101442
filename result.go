package courier

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
)

type ResultKind int

const (
	// KindEmpty is the absent value: no content, zero length or an empty body.
	KindEmpty ResultKind = iota
	KindJSON
	KindBlob
	KindText
)

func (k ResultKind) String() string {
	switch k {
	case KindJSON:
		return "json"
	case KindBlob:
		return "blob"
	case KindText:
		return "text"
	default:
		return "empty"
	}
}

// Result is a decoded success response.
type Result struct {
	Kind       ResultKind
	StatusCode int
	Header     http.Header

	JSON json.RawMessage
	Blob *Blob
	Text string
}

// Blob is a file or media response body.
type Blob struct {
	Data        []byte
	ContentType string
	// Filename comes from Content-Disposition and is empty when absent.
	Filename string
}

func (r *Result) Empty() bool {
	return r == nil || r.Kind == KindEmpty
}

// Decode unmarshals a JSON result into v. An empty result leaves v untouched.
func (r *Result) Decode(v any) error {
	if r.Empty() {
		return nil
	}
	if r.Kind != KindJSON {
		return errors.Errorf("cannot decode %s result as JSON", r.Kind)
	}
	return errors.Wrap(json.Unmarshal(r.JSON, v), "failed to decode JSON result")
}

// DecodeJSON chains onto a verb call and returns the decoded value, or nil
// when the response was empty:
//
//	user, err := courier.DecodeJSON[User](c.Get(ctx, "/me"))
func DecodeJSON[T any](res *Result, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	if res.Empty() {
		return nil, nil
	}
	out := new(T)
	if err := res.Decode(out); err != nil {
		return nil, err
	}
	return out, nil
}
