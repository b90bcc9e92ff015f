package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	reply string
	err   error
}

func (s *stubClient) GenerateText(_ context.Context, _ string) (string, error) {
	return s.reply, s.err
}

func TestParseSentimentValid(t *testing.T) {
	s, err := ParseSentiment(`{"mood":"Happy","score":0.9}`)
	require.NoError(t, err)
	assert.Equal(t, "happy", s.Mood)
	assert.Equal(t, 0.9, s.Score)
}

func TestParseSentimentFencedJSON(t *testing.T) {
	s, err := ParseSentiment("```json\n{\"mood\":\"calm\",\"score\":0.6}\n```")
	require.NoError(t, err)
	assert.Equal(t, "calm", s.Mood)
	assert.Equal(t, 0.6, s.Score)
}

func TestParseSentimentEmbeddedJSON(t *testing.T) {
	s, err := ParseSentiment(`Sure! Here you go: {"mood":"anxious","score":0.2} Hope that helps.`)
	require.NoError(t, err)
	assert.Equal(t, "anxious", s.Mood)
}

func TestParseSentimentFailsClosed(t *testing.T) {
	cases := map[string]string{
		"not json":          "the user seems quite happy today",
		"missing mood":      `{"score":0.5}`,
		"score too high":    `{"mood":"happy","score":1.5}`,
		"score negative":    `{"mood":"sad","score":-0.1}`,
		"empty mood string": `{"mood":"  ","score":0.5}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseSentiment(raw)
			assert.Error(t, err)
		})
	}
}

func TestAnalyzeSentimentPropagatesProviderError(t *testing.T) {
	_, err := AnalyzeSentiment(context.Background(), &stubClient{err: errors.New("quota exceeded")}, "hello")
	assert.ErrorContains(t, err, "quota exceeded")
}

func TestAnalyzeSentimentParsesReply(t *testing.T) {
	s, err := AnalyzeSentiment(context.Background(), &stubClient{reply: `{"mood":"hopeful","score":0.7}`}, "hello")
	require.NoError(t, err)
	assert.Equal(t, "hopeful", s.Mood)
	assert.Equal(t, 0.7, s.Score)
}

func TestNewClientUnknownProvider(t *testing.T) {
	_, err := NewClient(cfgWithType("llama-custom"))
	assert.Error(t, err)
}

func TestNewClientDefaultsToGemini(t *testing.T) {
	c, err := NewClient(cfgWithType(""))
	require.NoError(t, err)
	assert.IsType(t, &geminiDriver{}, c)
}

func TestGenerateTextWithoutKey(t *testing.T) {
	c, err := NewClient(cfgWithType("gemini"))
	require.NoError(t, err)
	_, err = c.GenerateText(context.Background(), "hi")
	assert.ErrorIs(t, err, ErrMissingAPIKey)

	c, err = NewClient(cfgWithType("openai-compatible"))
	require.NoError(t, err)
	_, err = c.GenerateText(context.Background(), "hi")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}
