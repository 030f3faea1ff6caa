package service

import (
	"bytes"
	"encoding/json"

	// Packages
	client "github.com/mutablelogic/go-client"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// jsonPayload implements client.Payload for requests with a JSON body.
type jsonPayload struct {
	method      string
	contentType string
	body        *bytes.Reader
}

var _ client.Payload = (*jsonPayload)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func newJSONPayload(method, contentType string, v any) (*jsonPayload, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return &jsonPayload{
		method:      method,
		contentType: contentType,
		body:        bytes.NewReader(data),
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// INTERFACE IMPLEMENTATION

func (p *jsonPayload) Method() string {
	return p.method
}

func (p *jsonPayload) Accept() string {
	return types.ContentTypeJSON
}

func (p *jsonPayload) Type() string {
	return p.contentType
}

func (p *jsonPayload) Read(b []byte) (int, error) {
	return p.body.Read(b)
}
