package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/minhyannv/chatgpt-cli/pkg/chatgpt"
)

// resolveConfig loads .env and environment into runtime config.
// Precedence for the model: --model flag > OPENAI_MODEL > default.
// A missing API key is fatal; no request can be formed without it.
func resolveConfig(cmd *cobra.Command, model string, timeout time.Duration, verbose bool) (chatgpt.Config, error) {
	_ = godotenv.Load()

	cfg := chatgpt.DefaultConfig()

	cfg.APIKey = strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if cfg.APIKey == "" {
		return cfg, fmt.Errorf("OPENAI_API_KEY is not set")
	}

	if base := strings.TrimSpace(os.Getenv("OPENAI_BASE_URL")); base != "" {
		cfg.APIURL = strings.TrimRight(base, "/") + "/chat/completions"
	}
	if env := strings.TrimSpace(os.Getenv("OPENAI_MODEL")); env != "" {
		cfg.Model = env
	}
	if model = strings.TrimSpace(model); model != "" {
		cfg.Model = model
	}

	cfg.Timeout = timeout
	cfg.Verbose = verbose
	cfg.Logger = chatgpt.NewWriterLogger(cmd.ErrOrStderr())

	return chatgpt.Normalize(cfg), nil
}
