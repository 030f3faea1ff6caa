package typedapi

import (
	"sync"

	// Packages
	config "github.com/mutablelogic/go-typedapi/pkg/config"
	registry "github.com/mutablelogic/go-typedapi/pkg/registry"
	schema "github.com/mutablelogic/go-typedapi/pkg/schema"
	service "github.com/mutablelogic/go-typedapi/pkg/service"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

var (
	defaultMu       sync.Mutex
	defaultOnce     sync.Once
	defaultRegistry *registry.Registry
	defaultOpts     []registry.Opt
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Configure sets the options used to create the process-wide registry. It has
// no effect once the registry has been created by any other function in this
// package.
func Configure(opts ...registry.Opt) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultOpts = append(defaultOpts, opts...)
}

// Default returns the process-wide registry, creating it on first use with
// the options passed to Configure. It panics if the registry cannot be
// created, which only happens when a configured option is invalid. The error
// is logged through the configured logger first.
func Default() *registry.Registry {
	defaultOnce.Do(func() {
		defaultMu.Lock()
		defer defaultMu.Unlock()
		r, err := registry.New(defaultOpts...)
		if err != nil {
			panic(err)
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// Initialize publishes one service per endpoint in the process-wide registry.
// Only the first call has any effect.
func Initialize[K ~string](cfg schema.ServiceConfig[K]) error {
	return registry.Initialize(Default(), cfg)
}

// UseTypedApi returns the services published by Initialize, or
// schema.ErrNotInitialized
func UseTypedApi[K ~string]() (registry.Services[K], error) {
	return registry.UseTypedApi[K](Default())
}

// UseRawApi returns a factory for services bound to absolute URLs
func UseRawApi() func(url string) *service.Service {
	return Default().UseRawApi()
}

// UseRequestsConfig returns the live process-wide config
func UseRequestsConfig() *config.Config {
	return Default().UseRequestsConfig()
}
