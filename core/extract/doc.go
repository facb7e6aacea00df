// Package extract recovers a JSON value from the raw text a language model
// returned. Models routinely wrap JSON in markdown code fences or surround
// it with narrative prose, so a strict parse alone is not enough; this
// package applies a layered recovery strategy (fence stripping, strict
// parse, outermost-brace substring retry, automatic JSON repair) before
// giving up with [ErrUnparsable].
//
// Extraction is pure text-to-value parsing: no model is re-invoked and no
// I/O happens here. The returned value is whatever the text parsed to
// (object, array, string, number, boolean, or nil); shaping it into a field
// mapping is the normalize package's job.
package extract
