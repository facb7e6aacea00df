// Package ai declares the contract between the analysis core and the model
// executor: the [Provider] interface, the request/response shapes
// ([ChatRequest], [ChatResponse]), conversation [Message] values, and the
// multimodal [ContentPart] assembly helpers used when an image accompanies
// the current turn.
//
// The core itself performs no network I/O; a Provider implementation (see
// providers/ai/openai for a reference one) is the single suspension point
// of every analysis call, and the only component allowed to fail with a
// transport error.
package ai
