package schema

import (
	"errors"
	"fmt"
	"net/http"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// ResponseError is returned when a request completed with a non-2xx status.
// Response holds the envelope of the unsuccessful response, including any
// body the server sent.
type ResponseError struct {
	Status   int
	Response *Response
	Err      error
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

var (
	ErrNotInitialized = errors.New("seems like you need to initialize the library first, before using UseTypedApi")
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (e *ResponseError) Error() string {
	return fmt.Sprintf("%d %s", e.Status, http.StatusText(e.Status))
}

func (e *ResponseError) Unwrap() error {
	return e.Err
}
