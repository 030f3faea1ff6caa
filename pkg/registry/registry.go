package registry

import (
	"sync"

	// Packages
	config "github.com/mutablelogic/go-typedapi/pkg/config"
	service "github.com/mutablelogic/go-typedapi/pkg/service"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Registry holds the state shared by typed and raw services: the config, the
// HTTP transport and the published context. The context is set at most once.
type Registry struct {
	opts
	mu     sync.RWMutex
	client *service.Client
	config *config.Config
	ctx    *Context
}

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates an empty registry. Call Initialize to publish typed services.
func New(opts ...Opt) (*Registry, error) {
	self := new(Registry)

	// Apply options
	if opt, err := applyOpts(opts); err != nil {
		return nil, err
	} else {
		self.opts = opt
	}

	// Create the transport
	if client, err := service.NewClient(self.clientopts...); err != nil {
		self.logger.WithError(err).Error("new: cannot create client")
		return nil, err
	} else {
		self.client = client
	}

	// Return success
	return self, nil
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Config returns the live config, creating an empty one on first use
func (r *Registry) Config() *config.Config {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.configLocked()
}

// Context returns the published context, or nil if Initialize has not been
// called
func (r *Registry) Context() *Context {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ctx
}

// UseRequestsConfig returns the live config shared by every service
func (r *Registry) UseRequestsConfig() *config.Config {
	return r.Config()
}

// UseRawApi returns a factory for services bound to absolute URLs. Every call
// to the factory switches off base URL resolution in the shared config, which
// also affects typed services from then on.
func (r *Registry) UseRawApi() func(url string) *service.Service {
	return func(url string) *service.Service {
		config := r.Config()
		if config.UseBaseURL() {
			r.logger.WithField("url", url).Debug("raw request: base URL resolution disabled")
		}
		config.SetUseBaseURL(false)
		return service.New(url, config, r.client, r.tracer)
	}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (r *Registry) configLocked() *config.Config {
	if r.config == nil {
		r.config = config.New("")
	}
	return r.config
}
