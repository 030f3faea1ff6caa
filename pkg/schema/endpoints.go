package schema

import (
	"sort"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Endpoints maps a logical endpoint name to a path, which is appended to the
// base URL when a request is made.
type Endpoints[K ~string] map[K]string

// ServiceConfig is the input used to initialize a set of typed services.
type ServiceConfig[K ~string] struct {
	BaseURL   string       `json:"base_url"`
	Endpoints Endpoints[K] `json:"endpoints"`
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Keys returns the endpoint names in sorted order
func (e Endpoints[K]) Keys() []K {
	keys := make([]K, 0, len(e))
	for key := range e {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}
