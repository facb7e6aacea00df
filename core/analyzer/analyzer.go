package analyzer

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fieldforge/fieldforge/core/coerce"
	"github.com/fieldforge/fieldforge/core/extract"
	"github.com/fieldforge/fieldforge/core/ingest"
	"github.com/fieldforge/fieldforge/core/prompt"
	"github.com/fieldforge/fieldforge/internal/utils"
	"github.com/fieldforge/fieldforge/providers/ai"
	"github.com/fieldforge/fieldforge/providers/observability"
)

// Analyzer runs analysis flows against a model executor. Construct with
// New; the zero value is not usable.
type Analyzer struct {
	provider ai.Provider
	selector ModelSelector
	prompts  PromptBuilder
	observer observability.Provider
	sanitize ingest.Sanitizer
}

// New creates an Analyzer around provider. Defaults: StaticSelector,
// prompt.Builder, no telemetry, no input sanitation.
func New(provider ai.Provider, opts ...Option) *Analyzer {
	a := &Analyzer{
		provider: provider,
		selector: StaticSelector{},
		prompts:  prompt.Builder{},
		observer: observability.Noop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze structures req.Text into properties of req.Schema with a single
// executor call. It always returns a usable result: on executor failure or
// unusable output the result degrades to the title-only fallback carrying
// the raw input, with the cause in Result.Err.
func (a *Analyzer) Analyze(ctx context.Context, req Request) *Result {
	requestID := uuid.NewString()
	ctx, span := a.observer.StartSpan(ctx, "analyzer.analyze",
		observability.String(observability.AttrRequestID, requestID),
		observability.Int(observability.AttrSchemaFields, req.Schema.Len()),
	)
	defer span.End()

	model := a.selector.Select(false, req.Model)
	span.SetAttributes(observability.String(observability.AttrLLMModel, model))

	text := req.Text
	if a.sanitize != nil {
		text = a.sanitize(text)
	}

	response, err := a.provider.SendMessage(ctx, ai.ChatRequest{
		Model: model,
		Messages: []ai.Message{
			{Role: ai.RoleUser, Content: a.prompts.AnalysisPrompt(text, req.Schema, req.Examples, req.SystemPrompt)},
		},
		ResponseFormat: &ai.ResponseFormat{Type: "json_object"},
	})
	if err != nil {
		return a.fallbackResult(ctx, span, req, model, fmt.Errorf("model execution failed: %w", err))
	}

	value, err := extract.Extract(response.Content)
	if err != nil {
		return a.fallbackResult(ctx, span, req, model, err)
	}
	candidates, ok := value.(map[string]any)
	if !ok {
		return a.fallbackResult(ctx, span, req, model, fmt.Errorf("model output is not a JSON object"))
	}

	properties := coerce.Coerce(candidates, req.Schema)
	a.observer.Debug(ctx, "coerced properties",
		observability.String("analysis.properties", utils.JSONToString(properties)))

	span.SetAttributes(
		observability.Int(observability.AttrPropertiesCoerced, len(properties)),
		observability.Float64(observability.AttrLLMCost, response.Cost),
	)
	span.SetStatus(observability.StatusOK, "")
	a.observer.Counter("analyzer.analyze.total").Add(ctx, 1,
		observability.Bool(observability.AttrFallback, false))
	a.observer.Info(ctx, "analysis completed",
		observability.String(observability.AttrRequestID, requestID),
		observability.Int(observability.AttrPropertiesCoerced, len(properties)),
	)

	return &Result{
		Properties: properties,
		Usage:      response.Usage,
		Cost:       response.Cost,
		Model:      model,
	}
}

// fallbackResult builds the degraded title-only result and records the
// failure on the span.
func (a *Analyzer) fallbackResult(ctx context.Context, span observability.Span, req Request, model string, cause error) *Result {
	span.RecordError(cause)
	span.SetStatus(observability.StatusError, cause.Error())
	span.SetAttributes(observability.Bool(observability.AttrFallback, true))
	a.observer.Counter("analyzer.analyze.total").Add(ctx, 1,
		observability.Bool(observability.AttrFallback, true))
	a.observer.Warn(ctx, "analysis degraded to fallback", observability.Error(cause))

	return &Result{
		Properties: FallbackProperties(req.Schema, req.Text),
		Model:      model,
		Err:        cause,
	}
}
