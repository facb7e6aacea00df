package openai

import "fmt"

// Wire structures for the chat completions endpoint.

type chatCompletionRequest struct {
	Model          string              `json:"model"`
	Messages       []chatMessage       `json:"messages"`
	MaxTokens      int                 `json:"max_tokens,omitempty"`
	Temperature    float32             `json:"temperature,omitempty"`
	ResponseFormat *chatResponseFormat `json:"response_format,omitempty"`
}

// chatMessage carries one conversation turn; Content is a string for plain
// text or a []contentPart for multimodal turns.
type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content,omitempty"`
}

// contentPart represents a chat completions multimodal content part.
type contentPart struct {
	Type     string            `json:"type"` // "text" or "image_url"
	Text     string            `json:"text,omitempty"`
	ImageURL *contentPartImage `json:"image_url,omitempty"`
}

// contentPartImage describes image content for chat completions.
type contentPartImage struct {
	URL string `json:"url"`
}

type chatResponseFormat struct {
	Type string `json:"type"` // "text" or "json_object"
}

// buildDataURL formats base64 data into a data URL for image inputs.
func buildDataURL(mimeType, base64Data string) string {
	if mimeType == "" || base64Data == "" {
		return ""
	}
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64Data)
}

type chatCompletionResponse struct {
	ID      string       `json:"id"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
	Usage   *chatUsage   `json:"usage,omitempty"`
}

type chatChoice struct {
	Index        int                `json:"index"`
	Message      chatChoiceMessage  `json:"message"`
	FinishReason string             `json:"finish_reason"` // "stop", "length", "content_filter"
}

type chatChoiceMessage struct {
	Role    string `json:"role"`
	Content string `json:"content,omitempty"`
}

type chatUsage struct {
	PromptTokens        int                  `json:"prompt_tokens"`
	CompletionTokens    int                  `json:"completion_tokens"`
	TotalTokens         int                  `json:"total_tokens"`
	PromptTokensDetails *promptTokensDetails `json:"prompt_tokens_details,omitempty"`
}

type promptTokensDetails struct {
	CachedTokens int `json:"cached_tokens"`
}
