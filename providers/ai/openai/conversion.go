package openai

import (
	"fmt"
	"strings"

	"github.com/fieldforge/fieldforge/providers/ai"
)

// toChatCompletionRequest converts a generic ai.ChatRequest into the chat
// completions wire shape. The system prompt becomes the leading system
// message; multimodal ContentParts take precedence over plain Content.
func toChatCompletionRequest(request ai.ChatRequest) chatCompletionRequest {
	req := chatCompletionRequest{
		Model: request.Model,
	}

	if request.SystemPrompt != "" {
		req.Messages = append(req.Messages, chatMessage{Role: "system", Content: request.SystemPrompt})
	}

	for _, msg := range request.Messages {
		if len(msg.ContentParts) > 0 {
			parts := make([]contentPart, 0, len(msg.ContentParts))
			for _, part := range msg.ContentParts {
				switch part.Type {
				case ai.ContentTypeText:
					parts = append(parts, contentPart{Type: "text", Text: part.Text})
				case ai.ContentTypeImage:
					if part.Image == nil {
						continue
					}
					imageURL := part.Image.URI
					if imageURL == "" {
						imageURL = buildDataURL(part.Image.MimeType, part.Image.Data)
					}
					if imageURL == "" {
						continue
					}
					parts = append(parts, contentPart{Type: "image_url", ImageURL: &contentPartImage{URL: imageURL}})
				}
			}
			req.Messages = append(req.Messages, chatMessage{Role: string(msg.Role), Content: parts})
			continue
		}
		req.Messages = append(req.Messages, chatMessage{Role: string(msg.Role), Content: msg.Content})
	}

	if request.GenerationConfig != nil {
		req.MaxTokens = request.GenerationConfig.MaxTokens
		req.Temperature = request.GenerationConfig.Temperature
	}

	if request.ResponseFormat != nil && request.ResponseFormat.Type != "" {
		req.ResponseFormat = &chatResponseFormat{Type: request.ResponseFormat.Type}
	}

	return req
}

// fromChatCompletionResponse converts the wire response into an
// ai.ChatResponse, including the cost estimate for the model that answered.
func fromChatCompletionResponse(response *chatCompletionResponse) (*ai.ChatResponse, error) {
	if response == nil || len(response.Choices) == 0 {
		return nil, fmt.Errorf("openai: response contains no choices")
	}
	choice := response.Choices[0]

	out := &ai.ChatResponse{
		Model:        response.Model,
		Content:      strings.TrimSpace(choice.Message.Content),
		FinishReason: choice.FinishReason,
	}

	if response.Usage != nil {
		out.Usage = ai.Usage{
			PromptTokens:     response.Usage.PromptTokens,
			CompletionTokens: response.Usage.CompletionTokens,
			TotalTokens:      response.Usage.TotalTokens,
		}
		if response.Usage.PromptTokensDetails != nil {
			out.Usage.CachedTokens = response.Usage.PromptTokensDetails.CachedTokens
		}
	}

	out.Cost = CalculateCost(response.Model, out.Usage)

	return out, nil
}
