package registry

import (
	"sort"

	// Packages
	config "github.com/mutablelogic/go-typedapi/pkg/config"
	service "github.com/mutablelogic/go-typedapi/pkg/service"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Services maps endpoint names to services.
type Services[K ~string] map[K]*service.Service

// Context is the value published by Initialize: the services built from the
// endpoint map, and the config they share.
type Context struct {
	services any
	named    map[string]*service.Service
	config   *config.Config
}

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func newContext[K ~string](services Services[K], config *config.Config) *Context {
	named := make(map[string]*service.Service, len(services))
	for key, svc := range services {
		named[string(key)] = svc
	}
	return &Context{
		services: services,
		named:    named,
		config:   config,
	}
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Services returns the published services, as the Services[K] map they were
// initialized with
func (c *Context) Services() any {
	return c.services
}

// Config returns the config shared by the published services
func (c *Context) Config() *config.Config {
	return c.config
}

// Names returns the endpoint names in sorted order
func (c *Context) Names() []string {
	names := make([]string, 0, len(c.named))
	for name := range c.named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Service returns a service by endpoint name, or nil
func (c *Context) Service(name string) *service.Service {
	return c.named[name]
}
