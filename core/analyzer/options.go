package analyzer

import (
	"github.com/fieldforge/fieldforge/core/ingest"
	"github.com/fieldforge/fieldforge/providers/observability"
	"github.com/fieldforge/fieldforge/record"
)

// PromptBuilder constructs the texts sent to the executor. prompt.Builder
// is the default implementation.
type PromptBuilder interface {
	AnalysisPrompt(text string, schema record.Schema, examples []map[string]any, systemPrompt string) string
	ChatSystemMessage(schema record.Schema, systemPrompt string) string
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithSelector replaces the default model selector.
func WithSelector(selector ModelSelector) Option {
	return func(a *Analyzer) {
		if selector != nil {
			a.selector = selector
		}
	}
}

// WithPromptBuilder replaces the default prompt builder.
func WithPromptBuilder(builder PromptBuilder) Option {
	return func(a *Analyzer) {
		if builder != nil {
			a.prompts = builder
		}
	}
}

// WithObserver sets the observability provider. The default discards all
// telemetry.
func WithObserver(observer observability.Provider) Option {
	return func(a *Analyzer) {
		if observer != nil {
			a.observer = observer
		}
	}
}

// WithSanitizer sets a transformation applied to the input text before
// prompting, e.g. ingest.HTMLToMarkdown. The default leaves input as-is.
func WithSanitizer(sanitizer ingest.Sanitizer) Option {
	return func(a *Analyzer) {
		a.sanitize = sanitizer
	}
}
