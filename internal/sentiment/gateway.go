package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"
)

// Gateway classifies through an OpenAI-compatible chat-completion endpoint.
type Gateway struct {
	URL    string
	Model  string
	APIKey string

	HTTPTimeout  time.Duration
	MaxRetryTime time.Duration

	Client *http.Client
	Log    *logrus.Entry
}

func NewGateway(url, model, apiKey string, log *logrus.Entry) *Gateway {
	return &Gateway{
		URL:          url,
		Model:        model,
		APIKey:       apiKey,
		HTTPTimeout:  10 * time.Second,
		MaxRetryTime: 8 * time.Second,
		Client:       &http.Client{},
		Log:          log,
	}
}

// BuildPrompt asks for a strict JSON verdict on one utterance.
func BuildPrompt(text string) string {
	return fmt.Sprintf(`You are a sentiment classifier for role-play training transcripts.
Classify the sentiment of the utterance below.

Return ONLY a JSON object, no commentary, no backticks:
{"label": "POSITIVE" | "NEGATIVE" | "NEUTRAL", "score": <confidence between 0 and 1>}

UTTERANCE:
"""%s"""
`, text)
}

// Classify posts the prompt and retries with exponential backoff until the
// context ends. 4xx responses are not retried.
func (g *Gateway) Classify(ctx context.Context, text string) (Classification, error) {
	if g.URL == "" || g.APIKey == "" {
		return Classification{}, fmt.Errorf("sentiment gateway not configured")
	}
	log := g.logger()

	reqBody := map[string]any{
		"model": g.Model,
		"messages": []map[string]string{
			{"role": "user", "content": BuildPrompt(text)},
		},
		"temperature": 0.0,
	}
	data, err := json.Marshal(reqBody)
	if err != nil {
		return Classification{}, fmt.Errorf("marshal gateway request: %w", err)
	}

	var out Classification
	var lastErr error
	op := func() error {
		rctx, cancel := context.WithTimeout(ctx, g.HTTPTimeout)
		defer cancel()

		req, err := http.NewRequestWithContext(rctx, http.MethodPost, g.URL, bytes.NewReader(data))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Authorization", "Bearer "+g.APIKey)
		req.Header.Set("Content-Type", "application/json")

		resp, err := g.client().Do(req)
		if err != nil {
			lastErr = err
			log.WithField("error", err.Error()).Warn("sentiment request failed")
			return err
		}
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		log.WithField("http_status", resp.StatusCode).Debug("sentiment raw:\n" + string(body))

		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			lastErr = fmt.Errorf("sentiment gateway status %d", resp.StatusCode)
			return backoff.Permanent(lastErr)
		}
		if resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("sentiment gateway status %d", resp.StatusCode)
			return lastErr
		}

		// choices[0].message.content first, then any JSON in the body
		if inner := extractContentFromChoices(body); inner != "" {
			if c, err := parseClassification(inner); err == nil {
				out, lastErr = c, nil
				return nil
			}
		}
		if c, err := parseClassification(string(body)); err == nil {
			out, lastErr = c, nil
			return nil
		}
		lastErr = fmt.Errorf("no classification found in gateway output")
		return backoff.Permanent(lastErr)
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = g.MaxRetryTime
	if err := backoff.Retry(op, backoff.WithContext(b, ctx)); err != nil {
		if lastErr == nil {
			lastErr = err
		}
		return Classification{}, fmt.Errorf("sentiment classify failed: %w", lastErr)
	}
	return out, nil
}

func (g *Gateway) client() *http.Client {
	if g.Client != nil {
		return g.Client
	}
	return http.DefaultClient
}

func (g *Gateway) logger() *logrus.Entry {
	if g.Log != nil {
		return g.Log
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

// parseClassification reads the first JSON object in s as a verdict.
func parseClassification(s string) (Classification, error) {
	raw := extractJSON(s)
	if raw == "" {
		return Classification{}, fmt.Errorf("no JSON object")
	}
	var c Classification
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return Classification{}, fmt.Errorf("decode classification: %w", err)
	}
	c.Label = normalizeLabel(c.Label)
	if err := c.Validate(); err != nil {
		return Classification{}, err
	}
	return c, nil
}

// extractContentFromChoices reads openai-style choices[0].message.content.
func extractContentFromChoices(body []byte) string {
	var obj map[string]any
	if err := json.Unmarshal(body, &obj); err != nil {
		return ""
	}
	choices, ok := obj["choices"].([]any)
	if !ok || len(choices) == 0 {
		return ""
	}
	c0, _ := choices[0].(map[string]any)
	if c0 == nil {
		return ""
	}
	msg, _ := c0["message"].(map[string]any)
	if msg == nil {
		return ""
	}
	content, _ := msg["content"].(string)
	return extractJSON(content)
}

// extractJSON finds the first balanced JSON object in a string, after
// stripping markdown fences.
func extractJSON(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	for _, r := range []string{"```json", "```JSON", "```", "`"} {
		s = strings.ReplaceAll(s, r, "")
	}

	start := strings.Index(s, "{")
	if start == -1 {
		return ""
	}
	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return strings.TrimSpace(s[start : i+1])
			}
		}
	}
	return ""
}
