package llm

import (
	"cmp"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

const (
	defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"
	defaultOpenRouterModel   = "deepseek/deepseek-chat"

	openRouterReferer = "https://github.com/abhisek/mindload"
	openRouterTitle   = "mindload"
)

// OpenRouterProvider routes requests through OpenRouter. Model IDs use the
// vendor/model form and are sent unchanged.
type OpenRouterProvider struct {
	*OpenAIProvider
}

// NewOpenRouterProvider creates a provider targeting the OpenRouter API.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}

	config := openai.DefaultConfig(cfg.APIKey)
	config.BaseURL = cmp.Or(cfg.BaseURL, defaultOpenRouterBaseURL)
	config.HTTPClient = &http.Client{Transport: attributionTransport{base: http.DefaultTransport}}

	inner := &OpenAIProvider{
		client: openai.NewClientWithConfig(config),
		model:  cmp.Or(cfg.Model, defaultOpenRouterModel),
		// Routed models differ in json_schema support; json_object works on all.
		jsonObjectOnly: true,
	}
	return &OpenRouterProvider{OpenAIProvider: inner}, nil
}

// attributionTransport adds the headers OpenRouter uses to attribute
// traffic to an app.
type attributionTransport struct {
	base http.RoundTripper
}

func (t attributionTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	r = r.Clone(r.Context())
	r.Header.Set("HTTP-Referer", openRouterReferer)
	r.Header.Set("X-Title", openRouterTitle)
	return t.base.RoundTrip(r)
}
