package openai

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/fieldforge/fieldforge/internal/utils"
	"github.com/fieldforge/fieldforge/providers/ai"
)

const (
	defaultBaseURL          = "https://api.openai.com/v1"
	chatCompletionsEndpoint = "/chat/completions"
)

// Provider implements the ai.Provider executor contract for the OpenAI
// chat completions API and compatible endpoints.
type Provider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// New creates a provider configured from the environment: OPENAI_API_KEY
// for authentication and OPENAI_API_BASE_URL to target a compatible
// gateway instead of api.openai.com.
func New() *Provider {
	baseURL := os.Getenv("OPENAI_API_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Provider{
		apiKey:  os.Getenv("OPENAI_API_KEY"),
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

var _ ai.Provider = (*Provider)(nil)

// WithAPIKey sets the API key for the provider.
func (p *Provider) WithAPIKey(apiKey string) ai.Provider {
	p.apiKey = apiKey
	return p
}

// WithBaseURL sets the base URL for API requests.
func (p *Provider) WithBaseURL(baseURL string) ai.Provider {
	p.baseURL = baseURL
	return p
}

// WithHttpClient sets a custom HTTP client.
func (p *Provider) WithHttpClient(httpClient *http.Client) ai.Provider {
	p.client = httpClient
	return p
}

// SendMessage sends the chat request and returns the completed response
// with usage and a cost estimate attached.
func (p *Provider) SendMessage(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("openai: missing API key (set OPENAI_API_KEY or use WithAPIKey)")
	}
	if request.Model == "" {
		return nil, fmt.Errorf("openai: request model must not be empty")
	}

	wireRequest := toChatCompletionRequest(request)

	url := p.baseURL + chatCompletionsEndpoint
	_, wireResponse, err := utils.DoPostSync[chatCompletionResponse](ctx, p.client, url, p.apiKey, wireRequest)
	if err != nil {
		return nil, fmt.Errorf("openai: chat completions request failed: %w", err)
	}

	return fromChatCompletionResponse(wireResponse)
}
