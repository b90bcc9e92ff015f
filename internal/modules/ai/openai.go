package ai

import (
	"context"
	"errors"
	neturl "net/url"
	"strings"

	"github.com/mindhaven/core/internal/config"
	openaiclient "github.com/openai/openai-go/v2"
	openaioption "github.com/openai/openai-go/v2/option"
)

// openaiDriver talks to any OpenAI-compatible chat-completions endpoint.
type openaiDriver struct {
	cfg config.AIProvider
}

func newOpenAIDriver(cfg config.AIProvider) *openaiDriver {
	return &openaiDriver{cfg: cfg}
}

func (d *openaiDriver) GenerateText(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(d.cfg.APIKey) == "" {
		return "", ErrMissingAPIKey
	}

	opts := []openaioption.RequestOption{
		openaioption.WithAPIKey(d.cfg.APIKey),
		openaioption.WithMaxRetries(0),
	}
	if normalized := normalizeOpenAIBaseURL(d.cfg.Endpoint); normalized != "" {
		opts = append(opts, openaioption.WithBaseURL(normalized))
	}
	client := openaiclient.NewClient(opts...)

	model := strings.TrimSpace(d.cfg.Model)
	if model == "" {
		model = "gpt-4o-mini"
	}

	resp, err := client.Chat.Completions.New(ctx, openaiclient.ChatCompletionNewParams{
		Model: openaiclient.ChatModel(model),
		Messages: []openaiclient.ChatCompletionMessageParamUnion{
			openaiclient.UserMessage(prompt),
		},
		MaxTokens:   openaiclient.Int(int64(d.cfg.MaxOutputTokens)),
		Temperature: openaiclient.Float(float64(d.cfg.Temperature)),
		TopP:        openaiclient.Float(float64(d.cfg.TopP)),
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty response from AI")
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", errors.New("empty response from AI")
	}
	return text, nil
}

func normalizeOpenAIBaseURL(raw string) string {
	base := strings.TrimSpace(raw)
	if base == "" {
		return ""
	}
	parsed, err := neturl.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return strings.TrimRight(base, "/")
	}

	path := strings.TrimRight(parsed.Path, "/")
	if !strings.HasSuffix(path, "/v1") {
		if path == "" {
			path = "/v1"
		} else {
			path += "/v1"
		}
	}
	parsed.Path = path
	return strings.TrimRight(parsed.String(), "/")
}
