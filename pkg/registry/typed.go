package registry

import (
	"net/url"

	// Packages
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	schema "github.com/mutablelogic/go-typedapi/pkg/schema"
	service "github.com/mutablelogic/go-typedapi/pkg/service"
	logrus "github.com/sirupsen/logrus"
)

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Initialize sets the base URL on the config, creates one service per
// endpoint and publishes them. Only the first call publishes; later calls
// leave the published context and base URL in place and return nil.
func Initialize[K ~string](r *Registry, cfg schema.ServiceConfig[K]) error {
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return httpresponse.ErrBadRequest.Withf("base url %q: %v", cfg.BaseURL, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Set the base URL, the first time only
	config := r.configLocked()
	if !config.Init(cfg.BaseURL) && config.BaseURL() != cfg.BaseURL {
		r.logger.WithFields(logrus.Fields{
			"base_url": config.BaseURL(),
			"ignored":  cfg.BaseURL,
		}).Debug("initialize: base url already set")
	}

	// First writer wins
	if r.ctx != nil {
		r.logger.Debug("initialize: already initialized")
		return nil
	}

	// Create services and publish
	services := make(Services[K], len(cfg.Endpoints))
	for key, path := range cfg.Endpoints {
		services[key] = service.New(path, config, r.client, r.tracer)
	}
	r.ctx = newContext(services, config)
	r.logger.WithFields(logrus.Fields{
		"base_url":  config.BaseURL(),
		"endpoints": len(services),
	}).Debug("initialize: published services")

	// Return success
	return nil
}

// UseTypedApi returns the published services keyed by endpoint name, or
// schema.ErrNotInitialized if Initialize has not been called. When K differs
// from the key type used with Initialize, the same services are returned
// re-keyed as K.
func UseTypedApi[K ~string](r *Registry) (Services[K], error) {
	ctx := r.Context()
	if ctx == nil {
		return nil, schema.ErrNotInitialized
	}
	if services, ok := ctx.services.(Services[K]); ok {
		return services, nil
	}
	services := make(Services[K], len(ctx.named))
	for name, svc := range ctx.named {
		services[K(name)] = svc
	}
	return services, nil
}

// Get returns the service for an endpoint name
func (s Services[K]) Get(key K) (*service.Service, error) {
	if svc, exists := s[key]; exists {
		return svc, nil
	}
	return nil, httpresponse.ErrNotFound.Withf("endpoint %q", key)
}
