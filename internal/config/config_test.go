package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"synapse-go/internal/aggregator"
)

// isolate points config discovery at empty dirs and clears overrides.
func isolate(t *testing.T) string {
	t.Helper()
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("HOME", t.TempDir())
	for _, k := range []string{"SYNAPSE_CONFIG", "PORT", "SYNAPSE_DB_PATH", "SYNAPSE_SCENARIOS", "SYNAPSE_LOCALE", "SYNAPSE_SENTIMENT_PROVIDER", "REDIS_URL", "TRANSCRIBE_URL"} {
		t.Setenv(k, "")
	}
	return xdg
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q", cfg.Server.Addr)
	}
	if cfg.Scoring.Locale != "pt-BR" {
		t.Errorf("Scoring.Locale = %q", cfg.Scoring.Locale)
	}
	if cfg.SentimentTimeout() != 3*time.Second {
		t.Errorf("SentimentTimeout = %v", cfg.SentimentTimeout())
	}
	if cfg.Scoring.Weights != aggregator.DefaultWeights {
		t.Errorf("Weights = %+v", cfg.Scoring.Weights)
	}
	if cfg.Sentiment.Provider != ProviderLexical {
		t.Errorf("Sentiment.Provider = %q", cfg.Sentiment.Provider)
	}
	if !cfg.Store.Compress {
		t.Error("Store.Compress should default to true")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoad_NoConfig(t *testing.T) {
	isolate(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Store.Path != "synapse.db" {
		t.Errorf("Store.Path = %q", cfg.Store.Path)
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	xdg := isolate(t)
	dir := filepath.Join(xdg, "synapse")
	os.MkdirAll(dir, 0o755)
	content := `[server]
addr = ":9090"

[scoring]
locale = "en"
sentiment_timeout_ms = 1500

[scoring.weights]
speech = 0.1
conversation = 0.2
content = 0.4
outcome = 0.2
climate = 0.1

[sentiment]
provider = "gemini"
model = "gemini-1.5-flash"

[store]
path = "~/data/synapse.db"
compress = false

[claim]
redis_url = "redis://cache:6379/0"
ttl_seconds = 30
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":9090" || cfg.Scoring.Locale != "en" {
		t.Errorf("server/scoring = %+v %+v", cfg.Server, cfg.Scoring)
	}
	if cfg.SentimentTimeout() != 1500*time.Millisecond {
		t.Errorf("SentimentTimeout = %v", cfg.SentimentTimeout())
	}
	if cfg.Scoring.Weights.Content != 0.4 {
		t.Errorf("Weights = %+v", cfg.Scoring.Weights)
	}
	if cfg.Sentiment.Provider != ProviderGemini || cfg.Sentiment.Model != "gemini-1.5-flash" {
		t.Errorf("Sentiment = %+v", cfg.Sentiment)
	}
	// unset keys keep their defaults
	if cfg.Sentiment.APIKeyEnv != "SENTIMENT_API_KEY" {
		t.Errorf("APIKeyEnv = %q", cfg.Sentiment.APIKeyEnv)
	}
	if strings.HasPrefix(cfg.Store.Path, "~/") || !strings.HasSuffix(cfg.Store.Path, "data/synapse.db") {
		t.Errorf("Store.Path = %q", cfg.Store.Path)
	}
	if cfg.Store.Compress {
		t.Error("Store.Compress should be false")
	}
	if cfg.ClaimTTL() != 30*time.Second || cfg.Claim.RedisURL != "redis://cache:6379/0" {
		t.Errorf("Claim = %+v", cfg.Claim)
	}
}

func TestLoad_ExplicitPathAndEnv(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "synapse.toml")
	os.WriteFile(path, []byte("[export]\nproduct = \"Academia\"\n"), 0o644)
	t.Setenv("SYNAPSE_CONFIG", path)
	t.Setenv("PORT", "7000")
	t.Setenv("SYNAPSE_DB_PATH", "/var/lib/synapse.db")
	t.Setenv("SYNAPSE_SCENARIOS", "/etc/synapse/scenarios.yaml")
	t.Setenv("SYNAPSE_LOCALE", "en")
	t.Setenv("SYNAPSE_SENTIMENT_PROVIDER", "Gateway")
	t.Setenv("REDIS_URL", "localhost:6379")
	t.Setenv("TRANSCRIBE_URL", "http://stt.local")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Export.Product != "Academia" {
		t.Errorf("Export.Product = %q", cfg.Export.Product)
	}
	if cfg.Server.Addr != ":7000" {
		t.Errorf("Server.Addr = %q", cfg.Server.Addr)
	}
	if cfg.Store.Path != "/var/lib/synapse.db" || cfg.Scenarios.Path != "/etc/synapse/scenarios.yaml" {
		t.Errorf("paths = %q %q", cfg.Store.Path, cfg.Scenarios.Path)
	}
	if cfg.Scoring.Locale != "en" || cfg.Sentiment.Provider != ProviderGateway {
		t.Errorf("locale/provider = %q %q", cfg.Scoring.Locale, cfg.Sentiment.Provider)
	}
	if cfg.Claim.RedisURL != "localhost:6379" || cfg.Transcribe.URL != "http://stt.local" {
		t.Errorf("redis/transcribe = %q %q", cfg.Claim.RedisURL, cfg.Transcribe.URL)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "bad.toml")
	os.WriteFile(path, []byte("[server\naddr = "), 0o644)
	t.Setenv("SYNAPSE_CONFIG", path)
	if _, err := Load(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := map[string]func(*Config){
		"unknown provider": func(c *Config) { c.Sentiment.Provider = "watson" },
		"zero timeout":     func(c *Config) { c.Scoring.SentimentTimeoutMs = 0 },
		"unknown locale":   func(c *Config) { c.Scoring.Locale = "fr" },
		"negative weight":  func(c *Config) { c.Scoring.Weights.Climate = -0.1 },
		"empty store path": func(c *Config) { c.Store.Path = "" },
	}
	for name, mutate := range tests {
		cfg := DefaultConfig()
		mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}

	cfg := DefaultConfig()
	cfg.Scoring.Locale = "pt-BR-retail"
	cfg.Scoring.LexiconPath = "/etc/synapse/retail.toml"
	if err := cfg.Validate(); err != nil {
		t.Errorf("custom locale with override file: %v", err)
	}
}

func TestAPIKey(t *testing.T) {
	t.Setenv("MY_KEY", "secret")
	cfg := DefaultConfig()
	cfg.Sentiment.APIKeyEnv = "MY_KEY"
	if cfg.APIKey() != "secret" {
		t.Errorf("APIKey = %q", cfg.APIKey())
	}
}
