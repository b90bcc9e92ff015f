package ai

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"github.com/mindhaven/core/internal/config"
	"google.golang.org/api/option"
)

// geminiDriver talks to the Gemini API. The SDK client is created lazily on
// first use so that a missing key surfaces as a request error, not at boot.
type geminiDriver struct {
	cfg config.AIProvider

	once    sync.Once
	client  *genai.Client
	initErr error
}

func newGeminiDriver(cfg config.AIProvider) *geminiDriver {
	return &geminiDriver{cfg: cfg}
}

func (d *geminiDriver) GenerateText(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(d.cfg.APIKey) == "" {
		return "", ErrMissingAPIKey
	}
	d.once.Do(func() {
		d.client, d.initErr = genai.NewClient(context.Background(), option.WithAPIKey(d.cfg.APIKey))
	})
	if d.initErr != nil {
		return "", d.initErr
	}

	model := d.client.GenerativeModel(d.cfg.Model)
	model.SetTemperature(d.cfg.Temperature)
	model.SetTopP(d.cfg.TopP)
	model.SetTopK(d.cfg.TopK)
	model.SetMaxOutputTokens(d.cfg.MaxOutputTokens)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("empty response from AI")
	}

	var full strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			full.WriteString(string(txt))
		}
	}
	text := strings.TrimSpace(full.String())
	if text == "" {
		return "", errors.New("empty response from AI")
	}
	return text, nil
}
