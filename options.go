package fielddata

import "log/slog"

// FieldDataOptions carries per-field settings supplied by the loader.
// The read path does not interpret them; they are kept for consumers.
type FieldDataOptions struct {
	// Freqs reports whether the dictionary freqs column was populated.
	Freqs bool
}

type options struct {
	fieldData        FieldDataOptions
	logger           *Logger
	metricsCollector MetricsCollector
}

// Option configures field data construction and collection behavior.
type Option func(*options)

// WithFreqs records whether the loader populated per-value frequencies.
func WithFreqs(freqs bool) Option {
	return func(o *options) {
		o.fieldData.Freqs = freqs
	}
}

// WithFieldDataOptions replaces the field data options wholesale.
func WithFieldDataOptions(fdo FieldDataOptions) Option {
	return func(o *options) {
		o.fieldData = fdo
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := fielddata.NewJSONLogger(slog.LevelDebug)
//	fd := fielddata.NewSingleValueFloat("price", order, values, freqs, fielddata.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector.
// Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	return o
}

// Settings is the resolved form of a set of Options.
// Packages building on field data use it to share logging and metrics configuration.
type Settings struct {
	FieldData        FieldDataOptions
	Logger           *Logger
	MetricsCollector MetricsCollector
}

// ResolveOptions applies optFns over the defaults.
func ResolveOptions(optFns ...Option) Settings {
	o := applyOptions(optFns)
	return Settings{
		FieldData:        o.fieldData,
		Logger:           o.logger,
		MetricsCollector: o.metricsCollector,
	}
}
