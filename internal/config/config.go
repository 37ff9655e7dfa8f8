// Package config loads mindload settings from an optional file and the
// environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/abhisek/mindload/internal/llm"
	"github.com/abhisek/mindload/internal/prompt"
	"github.com/abhisek/mindload/internal/scoring"
)

// Config holds all configuration options for mindload.
type Config struct {
	// Model is the scoring model used when a command does not name one.
	Model string `koanf:"model"`

	// DB overrides the database path. Empty means store.DefaultDBPath.
	DB string `koanf:"db"`

	LLM    llm.Config   `koanf:"llm"`
	Report ReportConfig `koanf:"report"`
}

// ReportConfig tunes report generation.
type ReportConfig struct {
	Temperature      float64 `koanf:"temperature"`
	MaxTokens        int     `koanf:"max_tokens"`
	BriefTemperature float64 `koanf:"brief_temperature"`
	BriefMaxTokens   int     `koanf:"brief_max_tokens"`

	// HighScoreThreshold selects the answers quoted in the prompt summary.
	HighScoreThreshold float64 `koanf:"high_score_threshold"`

	// CacheSize bounds the in-process report cache. 0 disables it.
	CacheSize int `koanf:"cache_size"`

	// Stream prints the deep report while it is generated.
	Stream bool `koanf:"stream"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Model: string(scoring.ModelDrain),
		LLM:   llm.DefaultConfig(),
		Report: ReportConfig{
			Temperature:        0.8,
			MaxTokens:          8000,
			BriefTemperature:   0.7,
			BriefMaxTokens:     2000,
			HighScoreThreshold: prompt.DefaultHighScoreThreshold,
			CacheSize:          64,
			Stream:             true,
		},
	}
}

// Load builds the effective configuration: defaults, then the file at path
// (skipped when path is empty), then MINDLOAD_* environment overrides, then
// provider discovery from well-known API key variables when no provider
// was chosen explicitly.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
		if err := k.Unmarshal("", cfg); err != nil {
			return nil, fmt.Errorf("decode config %s: %w", path, err)
		}
	}

	llm.ApplyEnv(&cfg.LLM)
	if v := os.Getenv("MINDLOAD_MODEL"); v != "" {
		cfg.Model = v
	}

	explicit := k.Exists("llm.provider") || os.Getenv("MINDLOAD_LLM_PROVIDER") != ""
	if !explicit && cfg.LLM.Validate() != nil {
		if found, ok := llm.DiscoverConfig(); ok {
			adoptProvider(&cfg.LLM, found)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Find returns the first config file present in the working directory or
// $XDG_CONFIG_HOME/mindload, or "" when there is none.
func Find() string {
	names := []string{
		"mindload.yaml",
		"mindload.yml",
		"mindload.toml",
		"mindload.json",
	}

	dirs := []string{"."}
	if cfgHome, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(cfgHome, "mindload"))
	}

	for _, dir := range dirs {
		for _, name := range names {
			p := filepath.Join(dir, name)
			if _, err := os.Stat(p); err == nil {
				return p
			}
		}
	}
	return ""
}

// Validate checks settings that do not depend on the LLM provider. Missing
// API keys are reported only when a report is requested.
func (c *Config) Validate() error {
	if _, err := scoring.ModelFor(scoring.ModelID(c.Model)); err != nil {
		return fmt.Errorf("config model: %w", err)
	}
	if c.Report.Temperature < 0 || c.Report.Temperature > 2 {
		return fmt.Errorf("report.temperature must be within [0, 2], got %v", c.Report.Temperature)
	}
	if c.Report.BriefTemperature < 0 || c.Report.BriefTemperature > 2 {
		return fmt.Errorf("report.brief_temperature must be within [0, 2], got %v", c.Report.BriefTemperature)
	}
	if c.Report.MaxTokens <= 0 || c.Report.BriefMaxTokens <= 0 {
		return fmt.Errorf("report max tokens must be positive")
	}
	if c.Report.CacheSize < 0 {
		return fmt.Errorf("report.cache_size must not be negative")
	}
	return nil
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	case ".json":
		return json.Parser()
	default:
		return toml.Parser()
	}
}

// adoptProvider switches cfg to the discovered provider and its key while
// keeping the configured models, retry policy and timeout.
func adoptProvider(cfg *llm.Config, found llm.Config) {
	cfg.Provider = found.Provider
	switch found.Provider {
	case llm.ProviderDeepSeek:
		cfg.DeepSeek.APIKey = found.DeepSeek.APIKey
	case llm.ProviderAnthropic:
		cfg.Anthropic.APIKey = found.Anthropic.APIKey
	case llm.ProviderOpenAI:
		cfg.OpenAI.APIKey = found.OpenAI.APIKey
	case llm.ProviderGemini:
		cfg.Gemini.APIKey = found.Gemini.APIKey
	case llm.ProviderOpenRouter:
		cfg.OpenRouter.APIKey = found.OpenRouter.APIKey
	}
}
