// Package coerce converts untyped candidate field values, whatever a
// language model happened to emit, into the exact typed representations a
// strict records API requires, guided by an externally supplied schema.
//
// The coercer is deliberately lossy-safe: a field that cannot be made to
// conform is silently dropped rather than failing the call, because a
// partial record is strictly better for the caller than an aborted one.
// Candidate names absent from the schema are dropped the same way. The two
// invariants the output upholds:
//
//   - every key of the result exists in the schema passed to the call;
//   - no value in the result comes from a failed coercion; such fields are
//     absent, never null-valued.
//
// Option lists on select and multi_select fields are intentionally not
// enforced, so the model may introduce new categorical values.
package coerce
