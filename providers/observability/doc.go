// Package observability defines the injectable tracing, metrics, and
// logging collaborator the analysis core reports through. The core never
// prints; every trace of its work flows through a [Provider], so embedders
// decide where (and whether) it goes.
//
// The [Noop] provider discards everything and is the default. The slogobs
// subpackage adapts Go's log/slog into a Provider for embedders who just
// want structured logs.
package observability
