package chatgpt

import (
	"strings"
	"time"
)

// Defaults applied by DefaultConfig and re-applied by Normalize.
const (
	DefaultAPIURL  = "https://api.openai.com/v1/chat/completions"
	DefaultModel   = "gpt-3.5-turbo"
	DefaultTimeout = 300 * time.Second
)

// Config holds all runtime configuration for the client and session.
type Config struct {
	APIKey       string
	APIURL       string
	Model        string
	SystemPrompt string

	// Timeout bounds each completion request. Zero disables the bound
	// and a hung endpoint hangs the call.
	Timeout time.Duration

	Verbose bool
	Logger  Logger
}

// DefaultConfig returns a baseline configuration without side effects.
func DefaultConfig() Config {
	return Config{
		APIURL:       DefaultAPIURL,
		Model:        DefaultModel,
		SystemPrompt: DefaultSystemPrompt,
		Timeout:      DefaultTimeout,
	}
}

// Normalize sanitizes configuration values and applies defaults.
func Normalize(cfg Config) Config {
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	cfg.APIURL = strings.TrimSpace(cfg.APIURL)
	cfg.Model = strings.TrimSpace(cfg.Model)
	cfg.SystemPrompt = strings.TrimSpace(cfg.SystemPrompt)

	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.SystemPrompt == "" {
		cfg.SystemPrompt = DefaultSystemPrompt
	}
	if cfg.Timeout < 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = NopLogger{}
	}
	return cfg
}
