// Package analyzer orchestrates the two analysis flows over a model
// executor: single-shot structured capture (Analyze) and conversational
// capture (Chat).
//
// Analyze never fails from the caller's point of view: when the executor
// errors or the response carries no usable JSON, the result degrades to a
// title-only fallback holding the raw input text, with the failure recorded
// on the result. Chat instead guarantees a human-readable message on every
// successful executor round trip, and propagates executor errors as-is.
//
// An Analyzer holds no per-call state; concurrent invocations are safe.
package analyzer
