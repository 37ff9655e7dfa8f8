package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/abhisek/mindload/internal/store"
)

type constructor func(ctx context.Context, cfg Config) (Provider, error)

var constructors = map[string]constructor{
	ProviderDeepSeek: func(_ context.Context, cfg Config) (Provider, error) {
		return NewDeepSeekProvider(cfg.DeepSeek)
	},
	ProviderAnthropic: func(_ context.Context, cfg Config) (Provider, error) {
		return NewAnthropicProvider(cfg.Anthropic)
	},
	ProviderOpenAI: func(_ context.Context, cfg Config) (Provider, error) {
		return NewOpenAIProvider(cfg.OpenAI)
	},
	ProviderGemini: func(ctx context.Context, cfg Config) (Provider, error) {
		return NewGeminiProvider(ctx, cfg.Gemini)
	},
	ProviderOpenRouter: func(_ context.Context, cfg Config) (Provider, error) {
		return NewOpenRouterProvider(cfg.OpenRouter)
	},
}

// NewProvider builds the configured provider. Real providers are wrapped so
// that each attempt is recorded in events and transient failures are
// retried; the mock provider is returned bare.
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo) (Provider, error) {
	if cfg.Provider == ProviderMock {
		return NewMockProvider(), nil
	}
	build, ok := constructors[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	base, err := build(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}
	slog.Debug("llm provider ready", "provider", cfg.Provider, "model", base.ModelID())

	// retry wraps logging so every attempt gets its own event row.
	return WithRetry(WithLogging(base, events), cfg.Retry), nil
}
