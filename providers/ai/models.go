package ai

/*
	##### PROVIDER INPUT #####
*/

// ChatRequest represents one request to the model executor.
type ChatRequest struct {
	Model            string            `json:"model,omitempty"`             // Model name or identifier
	Messages         []Message         `json:"messages"`                    // All messages in the conversation except the system prompt
	SystemPrompt     string            `json:"system_prompt,omitempty"`     // Optional system prompt
	ResponseFormat   *ResponseFormat   `json:"response_format,omitempty"`   // Optional response format hint
	GenerationConfig *GenerationConfig `json:"generation_config,omitempty"` // Optional generation configuration
}

// Message represents a single turn in a conversation. History supplied by
// callers is read-only to this library; it is never mutated, only copied
// into outgoing requests.
type Message struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content,omitempty"`

	// ContentParts carries multimodal content for the turn. When non-empty
	// it takes precedence over Content.
	ContentParts []ContentPart `json:"content_parts,omitempty"`
}

type GenerationConfig struct {
	MaxTokens   int     `json:"max_tokens,omitempty"`  // Optional max tokens for the response
	Temperature float32 `json:"temperature,omitempty"` // Sampling temperature [0..2]. Higher => more random.
}

type ResponseFormat struct {
	// Type hints the response format: "text" or "json_object". The analysis
	// flows set json_object; providers that cannot honor it may ignore it.
	Type string `json:"type,omitempty"`
}

/*
	##### MULTIMODAL CONTENT #####
*/

// ContentType identifies the kind of a content part.
type ContentType string

const (
	ContentTypeText  ContentType = "text"
	ContentTypeImage ContentType = "image"
)

// ContentPart is one piece of a multimodal message.
type ContentPart struct {
	Type  ContentType `json:"type"`
	Text  string      `json:"text,omitempty"`
	Image *MediaData  `json:"image,omitempty"`
}

// MediaData carries media content either inline (base64 Data) or by URI.
type MediaData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data,omitempty"` // base64-encoded payload
	URI      string `json:"uri,omitempty"`
}

// NewTextPart creates a text content part.
func NewTextPart(text string) ContentPart {
	return ContentPart{Type: ContentTypeText, Text: text}
}

// NewImagePart creates an image content part from base64-encoded data.
func NewImagePart(mimeType, base64Data string) ContentPart {
	return ContentPart{Type: ContentTypeImage, Image: &MediaData{MimeType: mimeType, Data: base64Data}}
}

// NewImagePartFromURI creates an image content part referencing a URI.
func NewImagePartFromURI(mimeType, uri string) ContentPart {
	return ContentPart{Type: ContentTypeImage, Image: &MediaData{MimeType: mimeType, URI: uri}}
}

/*
	##### PROVIDER OUTPUT #####
*/

type Usage struct {
	PromptTokens     int `json:"prompt_tokens,omitempty"`
	CompletionTokens int `json:"completion_tokens,omitempty"`
	TotalTokens      int `json:"total_tokens,omitempty"`

	// CachedTokens counts prompt tokens served from the provider cache.
	CachedTokens int `json:"cached_tokens,omitempty"`
}

// ChatResponse represents the executor's completed response. Content is the
// raw text the model produced; the recovery pipeline owns turning it into
// something structured. Cost is the executor's estimate in USD for this
// call (zero when the executor cannot price the model).
type ChatResponse struct {
	Model        string `json:"model"`
	Content      string `json:"content"`
	FinishReason string `json:"finish_reason,omitempty"`
	Usage        Usage  `json:"usage"`
	Cost         float64 `json:"cost"`
}

/*
	##### ENUMS #####
*/

// MessageRole represents the role of a message; compatible with string.
type MessageRole string

const (
	RoleSystem    MessageRole = "system"    // System instructions/configuration
	RoleUser      MessageRole = "user"      // End-user message
	RoleAssistant MessageRole = "assistant" // Model response
)
