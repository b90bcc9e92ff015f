package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mindhaven/core/internal/config"
)

// ErrMissingAPIKey is returned at first use when no provider key is
// configured. Key absence is not a startup error.
var ErrMissingAPIKey = errors.New("generative API key is not configured")

// Client sends one prompt to the generative-text provider and returns the
// generated text. There is no retry, streaming or request deduplication;
// racing callers each issue their own call.
type Client interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// NewClient builds the provider selected by config.
func NewClient(cfg config.AIProvider) (Client, error) {
	switch normalizeProviderType(cfg.Type) {
	case "", "gemini":
		return newGeminiDriver(cfg), nil
	case "openai-compatible", "openaicompatible":
		return newOpenAIDriver(cfg), nil
	default:
		return nil, fmt.Errorf("unknown AI provider type %q", cfg.Type)
	}
}

func normalizeProviderType(raw string) string {
	t := strings.ToLower(strings.TrimSpace(raw))
	t = strings.ReplaceAll(t, "_", "-")
	t = strings.ReplaceAll(t, " ", "")
	return t
}
