package schema

import (
	"bytes"
	"encoding/json"
	"net/http"

	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Response is the normalized result of a service call. Data holds the parsed
// JSON body, or nil when the response had no body.
type Response struct {
	Status int             `json:"status"`
	Header http.Header     `json:"-"`
	Data   any             `json:"data,omitempty"`
	Body   json.RawMessage `json:"-"`
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r Response) String() string {
	return types.Stringify(r)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Empty returns true if the response carried no body
func (r *Response) Empty() bool {
	return r == nil || len(bytes.TrimSpace(r.Body)) == 0
}

// Decode unmarshals the response body into a value of type T. An empty body
// returns the zero value of T.
func Decode[T any](r *Response) (T, error) {
	var result T
	if r.Empty() {
		return result, nil
	}
	if err := json.Unmarshal(r.Body, &result); err != nil {
		return result, err
	}
	return result, nil
}
