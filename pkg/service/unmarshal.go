package service

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strings"

	// Packages
	client "github.com/mutablelogic/go-client"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// responseUnmarshaler captures the response header and the whole body, which
// is parsed after the exchange completes.
type responseUnmarshaler struct {
	header http.Header
	body   []byte
}

var _ client.Unmarshaler = (*responseUnmarshaler)(nil)

///////////////////////////////////////////////////////////////////////////////
// INTERFACE IMPLEMENTATION

func (r *responseUnmarshaler) Unmarshal(header http.Header, reader io.Reader) error {
	r.header = header
	if reader == nil {
		return nil
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	r.body = data
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// data returns the parsed body. An empty body is nil. JSON bodies (or bodies
// without a content type) must parse; other content types are returned as
// a string.
func (r *responseUnmarshaler) data() (any, error) {
	if len(bytes.TrimSpace(r.body)) == 0 {
		return nil, nil
	}
	if !isJSON(r.header.Get(types.ContentTypeHeader)) {
		return string(r.body), nil
	}
	var v any
	if err := json.Unmarshal(r.body, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func isJSON(contentType string) bool {
	if contentType == "" {
		return true
	}
	mediatype, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return true
	}
	return mediatype == types.ContentTypeJSON || strings.HasSuffix(mediatype, "+json")
}
