package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"
	"time"

	// Packages
	client "github.com/mutablelogic/go-client"
	typedapi "github.com/mutablelogic/go-typedapi"
	registry "github.com/mutablelogic/go-typedapi/pkg/registry"
	schema "github.com/mutablelogic/go-typedapi/pkg/schema"
	logrus "github.com/sirupsen/logrus"
	otel "go.opentelemetry.io/otel"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	Endpoint string            `name:"endpoint" env:"TYPEDAPI_ENDPOINT" help:"Base URL for typed endpoints"`
	Api      map[string]string `name:"api" short:"a" placeholder:"NAME=PATH" help:"Typed endpoint, as name=path. May be repeated."`
	Timeout  time.Duration     `name:"timeout" env:"TYPEDAPI_TIMEOUT" help:"Request timeout"`
	Debug    bool              `help:"Enable debug output"`
	Trace    bool              `help:"Trace HTTP requests and responses"`

	ctx    context.Context
	cancel context.CancelFunc
	logger *logrus.Logger
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func NewApp(app Globals) *Globals {
	// Create the context
	// This context is cancelled when the process receives a SIGINT or SIGTERM
	app.ctx, app.cancel = signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	// Create the logger
	app.logger = logrus.New()
	app.logger.SetOutput(os.Stderr)
	if app.Debug {
		app.logger.SetLevel(logrus.DebugLevel)
	}

	// Return the app
	return &app
}

func (app *Globals) Close() error {
	app.cancel()
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// METHODS

func (app *Globals) Context() context.Context {
	return app.ctx
}

// Services configures the process-wide registry from the global flags,
// publishes the typed endpoints and returns them
func (app *Globals) Services() (registry.Services[string], error) {
	opts := []client.ClientOpt{}
	if app.Trace {
		opts = append(opts, client.OptTrace(os.Stderr, app.Debug))
	}
	if app.Timeout > 0 {
		opts = append(opts, client.OptTimeout(app.Timeout))
	}
	typedapi.Configure(
		registry.WithLogger(app.logger.WithField("prefix", "typedapi")),
		registry.WithTracer(otel.Tracer(schema.SchemaName)),
		registry.WithClientOpts(opts...),
	)
	if err := typedapi.Initialize(schema.ServiceConfig[string]{
		BaseURL:   app.Endpoint,
		Endpoints: app.Api,
	}); err != nil {
		return nil, err
	}
	return typedapi.UseTypedApi[string]()
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func prettyJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
