package observability

import (
	"context"
	"time"
)

// Provider is the combined observability surface (tracing, metrics,
// structured logging) the analysis core reports through.
type Provider interface {
	Tracer
	Metrics
	Logger
}

// --- TRACING ---

// Tracer starts spans around units of work (one analysis invocation, one
// executor call).
type Tracer interface {
	StartSpan(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Span represents a single unit of work.
type Span interface {
	// End completes the span.
	End()
	// SetAttributes adds attributes to the span.
	SetAttributes(attrs ...Attribute)
	// SetStatus sets the span status.
	SetStatus(code StatusCode, description string)
	// RecordError records an error on the span.
	RecordError(err error)
	// AddEvent adds a point-in-time event to the span.
	AddEvent(name string, attrs ...Attribute)
}

// StatusCode represents the status of a span.
type StatusCode int

const (
	StatusUnset StatusCode = iota
	StatusOK
	StatusError
)

// --- METRICS ---

// Metrics provides counter and histogram collection.
type Metrics interface {
	Counter(name string) Counter
	Histogram(name string) Histogram
}

// Counter is a monotonically increasing metric.
type Counter interface {
	Add(ctx context.Context, value int64, attrs ...Attribute)
}

// Histogram records a distribution of values.
type Histogram interface {
	Record(ctx context.Context, value float64, attrs ...Attribute)
}

// --- LOGGING ---

// Logger provides leveled structured logging.
type Logger interface {
	Debug(ctx context.Context, msg string, attrs ...Attribute)
	Info(ctx context.Context, msg string, attrs ...Attribute)
	Warn(ctx context.Context, msg string, attrs ...Attribute)
	Error(ctx context.Context, msg string, attrs ...Attribute)
}

// --- ATTRIBUTES ---

// Attribute is a key-value pair of span, metric, or log metadata.
type Attribute struct {
	Key   string
	Value any
}

// String creates a string attribute.
func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// Int creates an integer attribute.
func Int(key string, value int) Attribute {
	return Attribute{Key: key, Value: value}
}

// Float64 creates a float64 attribute.
func Float64(key string, value float64) Attribute {
	return Attribute{Key: key, Value: value}
}

// Bool creates a boolean attribute.
func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

// Duration creates a duration attribute.
func Duration(key string, value time.Duration) Attribute {
	return Attribute{Key: key, Value: value}
}

// Error creates an error attribute.
func Error(err error) Attribute {
	if err == nil {
		return Attribute{Key: AttrError, Value: ""}
	}
	return Attribute{Key: AttrError, Value: err.Error()}
}

// --- NOOP ---

// Noop returns a Provider that discards all telemetry. It is the default
// for every component constructed without an explicit observer.
func Noop() Provider {
	return noopProvider{}
}

type noopProvider struct{}

func (noopProvider) StartSpan(ctx context.Context, _ string, _ ...Attribute) (context.Context, Span) {
	return ctx, noopSpan{}
}
func (noopProvider) Counter(string) Counter                           { return noopMetric{} }
func (noopProvider) Histogram(string) Histogram                       { return noopMetric{} }
func (noopProvider) Debug(context.Context, string, ...Attribute)      {}
func (noopProvider) Info(context.Context, string, ...Attribute)       {}
func (noopProvider) Warn(context.Context, string, ...Attribute)       {}
func (noopProvider) Error(context.Context, string, ...Attribute)      {}

type noopSpan struct{}

func (noopSpan) End()                            {}
func (noopSpan) SetAttributes(...Attribute)      {}
func (noopSpan) SetStatus(StatusCode, string)    {}
func (noopSpan) RecordError(error)               {}
func (noopSpan) AddEvent(string, ...Attribute)   {}

type noopMetric struct{}

func (noopMetric) Add(context.Context, int64, ...Attribute)      {}
func (noopMetric) Record(context.Context, float64, ...Attribute) {}
