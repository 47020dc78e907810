package sentiment

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const DefaultGeminiModel = "gemini-1.5-flash"

// Gemini classifies with a Gemini model asked for a JSON response.
type Gemini struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: missing api key")
	}
	if model == "" {
		model = DefaultGeminiModel
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	m := client.GenerativeModel(model)
	m.SetTemperature(0)
	m.ResponseMIMEType = "application/json"
	return &Gemini{client: client, model: m}, nil
}

func (g *Gemini) Classify(ctx context.Context, text string) (Classification, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(BuildPrompt(text)))
	if err != nil {
		return Classification{}, fmt.Errorf("gemini generate: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return Classification{}, fmt.Errorf("gemini: empty response")
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return parseClassification(b.String())
}

func (g *Gemini) Close() error {
	return g.client.Close()
}
