package analyzer

import (
	"github.com/fieldforge/fieldforge/providers/ai"
	"github.com/fieldforge/fieldforge/record"
)

/*
	##### SINGLE-SHOT FLOW #####
*/

// Request describes one single-shot analysis invocation.
type Request struct {
	// Text is the free-form user input to structure.
	Text string

	// Schema is the target record schema.
	Schema record.Schema

	// Examples are recent record documents in API page shape, used as
	// few-shot guidance. May be nil.
	Examples []map[string]any

	// SystemPrompt is the caller's instruction preamble.
	SystemPrompt string

	// Model overrides the selector's model choice when non-empty.
	Model string
}

// Result is the outcome of a single-shot analysis. It is always populated:
// when Err is non-nil the analysis degraded to the title-only fallback and
// Usage and Cost are zero.
type Result struct {
	Properties record.Properties `json:"properties"`
	Usage      ai.Usage          `json:"usage"`
	Cost       float64           `json:"cost"`
	Model      string            `json:"model"`

	// Err describes why the fallback was synthesized; nil on success.
	Err error `json:"-"`
}

// Fallback reports whether the result is the degraded title-only fallback.
func (r *Result) Fallback() bool {
	return r.Err != nil
}

/*
	##### CONVERSATIONAL FLOW #####
*/

// ChatRequest describes one conversational analysis turn.
type ChatRequest struct {
	// Text is the current user turn. When empty a placeholder is sent so
	// the executor still receives a user message.
	Text string

	// Schema is the target record schema.
	Schema record.Schema

	// SystemPrompt is the caller's instruction preamble.
	SystemPrompt string

	// History is the prior conversation, oldest first. It is read-only to
	// this call and forwarded to the executor unmodified.
	History []ai.Message

	// Image optionally attaches image data to the current turn, making the
	// request multimodal.
	Image *ai.MediaData

	// Model overrides the selector's model choice when non-empty.
	Model string
}

// ChatResult is the outcome of one conversational turn. Message is always
// non-empty after a successful executor round trip.
type ChatResult struct {
	Message     string            `json:"message"`
	Stamp       string            `json:"stamp,omitempty"`
	RefinedText string            `json:"refined_text,omitempty"`
	Properties  record.Properties `json:"properties,omitempty"`

	// RawResponse carries the executor's verbatim output when it could not
	// be interpreted as JSON.
	RawResponse string `json:"raw_response,omitempty"`

	Usage ai.Usage `json:"usage"`
	Cost  float64  `json:"cost"`
	Model string   `json:"model"`
}
