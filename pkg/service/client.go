package service

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"sync"

	// Packages
	client "github.com/mutablelogic/go-client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Client is the transport shared by services. It wraps the base HTTP client
// so that the status and body of every response are available to the caller,
// including responses which the base client reports as errors.
type Client struct {
	*client.Client
}

// statusTransport records the response into the recorder carried on the
// request context, if any.
type statusTransport struct {
	http.RoundTripper
}

type recorder struct {
	sync.Mutex
	status int
	header http.Header
	body   []byte
}

type recorderKey struct{}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// The base client needs an endpoint to be created. Every request replaces it
// with the URL of the service making the request.
const placeholderEndpoint = "http://localhost/"

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewClient creates a transport for services with the given client options.
// Requests have no timeout unless one is set with client.OptTimeout.
func NewClient(opts ...client.ClientOpt) (*Client, error) {
	cl, err := client.New(append([]client.ClientOpt{
		client.OptEndpoint(placeholderEndpoint),
		client.OptTimeout(0),
	}, opts...)...)
	if err != nil {
		return nil, err
	}
	transport := cl.Client.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	cl.Client.Transport = &statusTransport{transport}
	return &Client{cl}, nil
}

///////////////////////////////////////////////////////////////////////////////
// INTERFACE IMPLEMENTATION

func (t *statusTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.RoundTripper.RoundTrip(req)
	if resp == nil {
		return resp, err
	}
	rec, ok := req.Context().Value(recorderKey{}).(*recorder)
	if !ok {
		return resp, err
	}

	rec.Lock()
	defer rec.Unlock()
	rec.status = resp.StatusCode
	rec.header = resp.Header.Clone()

	// Keep a copy of the body of unsuccessful responses, which the base client
	// does not pass to the unmarshaler
	if !isSuccess(resp.StatusCode) && resp.Body != nil {
		data, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		rec.body = data
		resp.Body = io.NopCloser(bytes.NewReader(data))
		if readErr != nil && err == nil {
			err = readErr
		}
	}
	return resp, err
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func withRecorder(ctx context.Context) (context.Context, *recorder) {
	rec := new(recorder)
	return context.WithValue(ctx, recorderKey{}, rec), rec
}

// Status returns the last recorded status, or zero if no response was received
func (r *recorder) Status() int {
	r.Lock()
	defer r.Unlock()
	return r.status
}

// unmarshaler returns the recorded header and body of an unsuccessful response
func (r *recorder) unmarshaler() responseUnmarshaler {
	r.Lock()
	defer r.Unlock()
	return responseUnmarshaler{header: r.header, body: r.body}
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
