package config

import (
	"sync"

	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Config holds the base URL which typed services resolve against, and whether
// base URL resolution is in effect. A single Config is shared by every
// service created from the same registry, and is read at call time.
type Config struct {
	mu          sync.RWMutex
	baseURL     string
	useBaseURL  bool
	initialized bool
}

type config struct {
	BaseURL    string `json:"base_url"`
	UseBaseURL bool   `json:"use_base_url"`
}

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns a config which resolves against baseURL. The config is
// considered initialized when baseURL is not empty.
func New(baseURL string) *Config {
	return &Config{
		baseURL:     baseURL,
		useBaseURL:  true,
		initialized: baseURL != "",
	}
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (c *Config) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return types.Stringify(config{c.baseURL, c.useBaseURL})
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Init sets the base URL the first time it is called, and returns true.
// Subsequent calls leave the base URL untouched and return false.
func (c *Config) Init(baseURL string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.initialized {
		return false
	}
	c.baseURL = baseURL
	c.initialized = true
	return true
}

// BaseURL returns the base URL, which may be empty
func (c *Config) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL
}

// UseBaseURL returns true if targets are resolved against the base URL
func (c *Config) UseBaseURL() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.useBaseURL
}

// SetUseBaseURL switches base URL resolution on or off for every service
// which shares this config, including ones already created.
func (c *Config) SetUseBaseURL(value bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.useBaseURL = value
}

// Resolve returns the URL for a target: the base URL joined with the target
// when base URL resolution is in effect, or the target itself otherwise.
func (c *Config) Resolve(target string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.useBaseURL {
		return c.baseURL + target
	}
	return target
}
