package service

import (
	"net/url"
	"strings"

	// Packages
	client "github.com/mutablelogic/go-client"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt is a functional option for a single service call.
type Opt func(*opts) error

type opts struct {
	query  url.Values
	header []client.RequestOpt
}

////////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithQuery adds query parameters to the request URL. Parameters are
// encoded in key order, after any query already on the URL.
func WithQuery(query map[string]string) Opt {
	return func(o *opts) error {
		for k, v := range query {
			o.query.Set(k, v)
		}
		return nil
	}
}

// WithHeader sets a request header for a single call.
func WithHeader(key, value string) Opt {
	return func(o *opts) error {
		if key = strings.TrimSpace(key); key == "" {
			return httpresponse.ErrBadRequest.With("empty header key")
		}
		o.header = append(o.header, client.OptReqHeader(key, value))
		return nil
	}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func applyOpts(opt []Opt) (opts, error) {
	// Set defaults
	o := opts{
		query: make(url.Values),
	}

	// Apply options
	for _, fn := range opt {
		if err := fn(&o); err != nil {
			return opts{}, err
		}
	}

	// Return success
	return o, nil
}

// endpoint returns the resolved URL unchanged when there is no option query.
// Otherwise the encoded option query is appended to any query already on the
// resolved URL, which is kept as it was written.
func (o opts) endpoint(resolved string) (string, error) {
	u, err := url.Parse(resolved)
	if err != nil {
		return "", err
	}
	if len(o.query) == 0 {
		return resolved, nil
	}
	if u.RawQuery == "" {
		u.RawQuery = o.query.Encode()
	} else {
		u.RawQuery = u.RawQuery + "&" + o.query.Encode()
	}
	u.ForceQuery = false
	return u.String(), nil
}
