package registry

import (
	// Packages
	client "github.com/mutablelogic/go-client"
	logrus "github.com/sirupsen/logrus"
	trace "go.opentelemetry.io/otel/trace"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt is a functional option for registry configuration.
type Opt func(*opts) error

type opts struct {
	logger     logrus.FieldLogger
	tracer     trace.Tracer
	clientopts []client.ClientOpt
}

////////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithLogger sets the logger used for lifecycle messages.
func WithLogger(logger logrus.FieldLogger) Opt {
	return func(o *opts) error {
		if logger != nil {
			o.logger = logger
		}
		return nil
	}
}

// WithTracer sets the tracer used for tracing service calls.
func WithTracer(tracer trace.Tracer) Opt {
	return func(o *opts) error {
		o.tracer = tracer
		return nil
	}
}

// WithClientOpts passes options to the underlying HTTP client, for example
// client.OptTimeout or client.OptTrace.
func WithClientOpts(clientopts ...client.ClientOpt) Opt {
	return func(o *opts) error {
		o.clientopts = append(o.clientopts, clientopts...)
		return nil
	}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func applyOpts(opt []Opt) (opts, error) {
	// Set defaults
	o := opts{
		logger: defaultLogger(),
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

func defaultLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	return logger.WithField("prefix", "typedapi")
}
