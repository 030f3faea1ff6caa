package service

import (
	"context"
	"fmt"
	"net/http"

	// Packages
	client "github.com/mutablelogic/go-client"
	otel "github.com/mutablelogic/go-client/pkg/otel"
	types "github.com/mutablelogic/go-server/pkg/types"
	config "github.com/mutablelogic/go-typedapi/pkg/config"
	schema "github.com/mutablelogic/go-typedapi/pkg/schema"
	trace "go.opentelemetry.io/otel/trace"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Service issues requests against a single target. The target is a path
// appended to the base URL, or an absolute URL when base URL resolution has
// been switched off in the shared config. The service itself does not know
// which: the config is consulted each time a request is made.
//
// A response with a non-2xx status is returned together with a
// *schema.ResponseError, so the status and body remain available.
type Service struct {
	target string
	config *config.Config
	client *Client
	tracer trace.Tracer
}

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns a service for target. The tracer may be nil.
func New(target string, config *config.Config, client *Client, tracer trace.Tracer) *Service {
	return &Service{
		target: target,
		config: config,
		client: client,
		tracer: tracer,
	}
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (s *Service) String() string {
	return types.Stringify(map[string]string{
		"target": s.target,
		"url":    s.URL(),
	})
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Target returns the path or URL the service was created with
func (s *Service) Target() string {
	return s.target
}

// URL returns the URL a request would be made to at this moment
func (s *Service) URL() string {
	return s.config.Resolve(s.target)
}

// Get issues a GET request
func (s *Service) Get(ctx context.Context, opts ...Opt) (*schema.Response, error) {
	return s.do(ctx, client.NewRequestEx(http.MethodGet, types.ContentTypeJSON), opts)
}

// Post issues a POST request with a JSON-encoded body
func (s *Service) Post(ctx context.Context, body any, opts ...Opt) (*schema.Response, error) {
	payload, err := newJSONPayload(http.MethodPost, types.ContentTypeJSON, body)
	if err != nil {
		return nil, err
	}
	return s.do(ctx, payload, opts)
}

// Put issues a PUT request with a JSON-encoded body
func (s *Service) Put(ctx context.Context, body any, opts ...Opt) (*schema.Response, error) {
	payload, err := newJSONPayload(http.MethodPut, types.ContentTypeJSON, body)
	if err != nil {
		return nil, err
	}
	return s.do(ctx, payload, opts)
}

// Patch issues a PATCH request with an ordered list of patch operations
func (s *Service) Patch(ctx context.Context, ops schema.Patch, opts ...Opt) (*schema.Response, error) {
	if ops == nil {
		ops = schema.Patch{}
	}
	payload, err := newJSONPayload(http.MethodPatch, schema.ContentTypeJSONPatch, ops)
	if err != nil {
		return nil, err
	}
	return s.do(ctx, payload, opts)
}

// Delete issues a DELETE request
func (s *Service) Delete(ctx context.Context, opts ...Opt) (*schema.Response, error) {
	return s.do(ctx, client.NewRequestEx(http.MethodDelete, types.ContentTypeJSON), opts)
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (s *Service) do(ctx context.Context, payload client.Payload, opts []Opt) (_ *schema.Response, result error) {
	// OTEL span
	child, endFunc := otel.StartSpan(s.tracer, ctx, spanServiceName(payload.Method()))
	defer func() { endFunc(result) }()

	// Apply options
	o, err := applyOpts(opts)
	if err != nil {
		return nil, err
	}

	// Resolve the URL at call time
	endpoint, err := o.endpoint(s.config.Resolve(s.target))
	if err != nil {
		return nil, err
	}
	reqopts := append([]client.RequestOpt{client.OptReqEndpoint(endpoint)}, o.header...)

	// Perform request
	var response responseUnmarshaler
	child, rec := withRecorder(child)
	if err := s.client.DoWithContext(child, payload, &response, reqopts...); err != nil {
		if status := rec.Status(); status != 0 && !isSuccess(status) {
			return responseError(status, rec.unmarshaler(), err)
		}
		return nil, err
	} else if status := rec.Status(); status != 0 && !isSuccess(status) {
		return responseError(status, response, nil)
	}

	// Parse the body
	data, err := response.data()
	if err != nil {
		return nil, fmt.Errorf("%s %s: malformed response body: %w", payload.Method(), endpoint, err)
	}

	// Return the response
	return &schema.Response{
		Status: statusOf(rec),
		Header: response.header,
		Data:   data,
		Body:   response.body,
	}, nil
}

// responseError returns the envelope of an unsuccessful response alongside a
// ResponseError which carries the same envelope. A body which cannot be parsed
// is kept as raw bytes with no data.
func responseError(status int, response responseUnmarshaler, err error) (*schema.Response, error) {
	data, _ := response.data()
	resp := &schema.Response{
		Status: status,
		Header: response.header,
		Data:   data,
		Body:   response.body,
	}
	return resp, &schema.ResponseError{Status: status, Response: resp, Err: err}
}

func spanServiceName(method string) string {
	return schema.SchemaName + ".service." + method
}

// statusOf returns the recorded status, which is only missing when the base
// client short-circuits a response it considers successful
func statusOf(rec *recorder) int {
	if status := rec.Status(); status != 0 {
		return status
	}
	return http.StatusOK
}
