package llm

import "fmt"

const (
	defaultDeepSeekBaseURL = "https://api.deepseek.com/v1"
	defaultDeepSeekModel   = "deepseek-chat"
)

// DeepSeekProvider wraps OpenAIProvider with DeepSeek defaults. DeepSeek
// only offers plain JSON mode, so structured requests are validated locally.
type DeepSeekProvider struct {
	*OpenAIProvider
}

// NewDeepSeekProvider creates a provider targeting the DeepSeek API.
func NewDeepSeekProvider(cfg DeepSeekConfig) (*DeepSeekProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("deepseek API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultDeepSeekBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = defaultDeepSeekModel
	}

	inner := newOpenAICompatible(cfg.APIKey, baseURL, model)
	inner.jsonObjectOnly = true
	inner.legacyMaxTokens = true

	return &DeepSeekProvider{OpenAIProvider: inner}, nil
}
