package analyzer

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fieldforge/fieldforge/core/coerce"
	"github.com/fieldforge/fieldforge/core/extract"
	"github.com/fieldforge/fieldforge/core/normalize"
	"github.com/fieldforge/fieldforge/internal/utils"
	"github.com/fieldforge/fieldforge/providers/ai"
	"github.com/fieldforge/fieldforge/providers/observability"
)

// textPlaceholder stands in for an empty user turn so the executor always
// receives content.
const textPlaceholder = "(No text provided)"

// Synthesized messages for responses that broke the output contract.
const (
	messageUnparsable = "The response could not be interpreted."
	messageExtracted  = "Extracted the properties."
	messageDone       = "(Done)"
)

// Chat runs one conversational analysis turn. Executor errors propagate to
// the caller; every successful round trip yields a non-empty Message, even
// when the model broke the JSON output contract.
func (a *Analyzer) Chat(ctx context.Context, req ChatRequest) (*ChatResult, error) {
	requestID := uuid.NewString()
	hasImage := req.Image != nil
	ctx, span := a.observer.StartSpan(ctx, "analyzer.chat",
		observability.String(observability.AttrRequestID, requestID),
		observability.Int(observability.AttrSchemaFields, req.Schema.Len()),
		observability.Int(observability.AttrHistoryLength, len(req.History)),
		observability.Bool(observability.AttrHasImage, hasImage),
	)
	defer span.End()

	model := a.selector.Select(hasImage, req.Model)
	span.SetAttributes(observability.String(observability.AttrLLMModel, model))

	text := req.Text
	if a.sanitize != nil && text != "" {
		text = a.sanitize(text)
	}
	if text == "" {
		text = textPlaceholder
	}

	messages := make([]ai.Message, 0, len(req.History)+1)
	messages = append(messages, req.History...)
	messages = append(messages, currentTurn(text, req.Image))

	response, err := a.provider.SendMessage(ctx, ai.ChatRequest{
		Model:          model,
		Messages:       messages,
		SystemPrompt:   a.prompts.ChatSystemMessage(req.Schema, req.SystemPrompt),
		ResponseFormat: &ai.ResponseFormat{Type: "json_object"},
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(observability.StatusError, err.Error())
		return nil, fmt.Errorf("model execution failed: %w", err)
	}

	a.observer.Debug(ctx, "model output",
		observability.String("llm.content", utils.TruncateString(response.Content, 0)))

	result := a.interpret(response.Content, req)
	result.Usage = response.Usage
	result.Cost = response.Cost
	result.Model = model

	span.SetAttributes(
		observability.Int(observability.AttrPropertiesCoerced, len(result.Properties)),
		observability.Float64(observability.AttrLLMCost, response.Cost),
	)
	span.SetStatus(observability.StatusOK, "")
	a.observer.Counter("analyzer.chat.total").Add(ctx, 1)
	a.observer.Info(ctx, "chat turn completed",
		observability.String(observability.AttrRequestID, requestID),
		observability.Int(observability.AttrPropertiesCoerced, len(result.Properties)),
	)

	return result, nil
}

// currentTurn assembles the user message for this turn, multimodal when
// image data is present.
func currentTurn(text string, image *ai.MediaData) ai.Message {
	if image == nil {
		return ai.Message{Role: ai.RoleUser, Content: text}
	}
	return ai.Message{
		Role: ai.RoleUser,
		ContentParts: []ai.ContentPart{
			ai.NewTextPart(text),
			{Type: ai.ContentTypeImage, Image: image},
		},
	}
}

// interpret turns the executor's raw output into a ChatResult, upholding
// the message guarantee and correcting top-level property leaks.
func (a *Analyzer) interpret(content string, req ChatRequest) *ChatResult {
	value, err := extract.Extract(content)
	if err != nil {
		return &ChatResult{Message: messageUnparsable, RawResponse: content}
	}

	data := normalize.Normalize(value)
	ensureMessage(data)

	// Models sometimes emit schema fields at the top level instead of under
	// "properties". Keys colliding with schema field names are moved down.
	// This is a heuristic: an intentional non-property key sharing a schema
	// field's name gets moved too.
	if _, ok := data["properties"]; !ok {
		moved := map[string]any{}
		for _, name := range req.Schema.Names() {
			if v, ok := data[name]; ok {
				moved[name] = v
				delete(data, name)
			}
		}
		if len(moved) > 0 {
			data["properties"] = moved
		}
	}

	result := &ChatResult{Message: coerce.Stringify(data["message"])}
	if stamp, ok := data["stamp"].(string); ok {
		result.Stamp = stamp
	}
	if refined := data["refined_text"]; coerce.Truthy(refined) {
		result.RefinedText = coerce.Stringify(refined)
	}
	if candidates, ok := data["properties"].(map[string]any); ok && len(candidates) > 0 {
		result.Properties = coerce.Coerce(candidates, req.Schema)
	}
	return result
}

// ensureMessage guarantees a truthy "message" member, synthesizing one from
// whatever the response does carry.
func ensureMessage(data map[string]any) {
	if coerce.Truthy(data["message"]) {
		return
	}

	if refined := data["refined_text"]; coerce.Truthy(refined) {
		data["message"] = fmt.Sprintf("Suggested %q as the refined text.", coerce.Stringify(refined))
		return
	}

	_, hasTitle := data["Title"]
	_, hasContent := data["Content"]
	_, hasProperties := data["properties"]
	switch {
	case hasTitle || hasContent:
		if title := coerce.Stringify(data["Title"]); title != "" {
			data["message"] = fmt.Sprintf("Organized the input: %s", title)
		} else {
			data["message"] = messageExtracted
		}
	case hasProperties:
		data["message"] = messageExtracted
	default:
		data["message"] = messageDone
	}
}
