// Package config loads service settings from an optional TOML file with
// environment overrides on top.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"synapse-go/internal/aggregator"
	"synapse-go/internal/lexicon"
)

type Config struct {
	Server     ServerConfig     `toml:"server"`
	Scoring    ScoringConfig    `toml:"scoring"`
	Sentiment  SentimentConfig  `toml:"sentiment"`
	Store      StoreConfig      `toml:"store"`
	Claim      ClaimConfig      `toml:"claim"`
	Scenarios  ScenariosConfig  `toml:"scenarios"`
	Transcribe TranscribeConfig `toml:"transcribe"`
	Export     ExportConfig     `toml:"export"`
}

type ServerConfig struct {
	Addr                string `toml:"addr"`
	ReadTimeoutSeconds  int    `toml:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `toml:"write_timeout_seconds"`
	IdleTimeoutSeconds  int    `toml:"idle_timeout_seconds"`
}

type ScoringConfig struct {
	Locale             string             `toml:"locale"`
	LexiconPath        string             `toml:"lexicon_path"`
	WatchLexicon       bool               `toml:"watch_lexicon"`
	SentimentTimeoutMs int                `toml:"sentiment_timeout_ms"`
	Weights            aggregator.Weights `toml:"weights"`
}

type SentimentConfig struct {
	Provider        string `toml:"provider"`
	BaseURL         string `toml:"base_url"`
	Model           string `toml:"model"`
	APIKeyEnv       string `toml:"api_key_env"`
	MaxRetrySeconds int    `toml:"max_retry_seconds"`
}

type StoreConfig struct {
	Path     string `toml:"path"`
	Compress bool   `toml:"compress"`
}

type ClaimConfig struct {
	RedisURL   string `toml:"redis_url"`
	TTLSeconds int    `toml:"ttl_seconds"`
}

type ScenariosConfig struct {
	Path string `toml:"path"`
}

type TranscribeConfig struct {
	URL string `toml:"url"`
}

type ExportConfig struct {
	Product string `toml:"product"`
}

const (
	ProviderLexical = "lexical"
	ProviderGateway = "gateway"
	ProviderGemini  = "gemini"
)

// DefaultConfig returns config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr:                ":8080",
			ReadTimeoutSeconds:  15,
			WriteTimeoutSeconds: 60,
			IdleTimeoutSeconds:  120,
		},
		Scoring: ScoringConfig{
			Locale:             lexicon.DefaultLocale,
			SentimentTimeoutMs: 3000,
			Weights:            aggregator.DefaultWeights,
		},
		Sentiment: SentimentConfig{
			Provider:        ProviderLexical,
			BaseURL:         "https://api.openai.com/v1/chat/completions",
			Model:           "gpt-4o-mini",
			APIKeyEnv:       "SENTIMENT_API_KEY",
			MaxRetrySeconds: 8,
		},
		Store: StoreConfig{
			Path:     "synapse.db",
			Compress: true,
		},
		Claim: ClaimConfig{
			TTLSeconds: 120,
		},
		Export: ExportConfig{
			Product: "synapse",
		},
	}
}

// Load reads the first config file found, applies environment overrides
// and validates the result. A missing file is not an error.
func Load() (Config, error) {
	cfg := DefaultConfig()

	for _, p := range configPaths() {
		if _, err := os.Stat(p); err == nil {
			if _, err := toml.DecodeFile(p, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", p, err)
			}
			break
		}
	}

	applyEnv(&cfg)

	cfg.Store.Path = expandHome(cfg.Store.Path)
	cfg.Scenarios.Path = expandHome(cfg.Scenarios.Path)
	cfg.Scoring.LexiconPath = expandHome(cfg.Scoring.LexiconPath)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func configPaths() []string {
	if p := os.Getenv("SYNAPSE_CONFIG"); p != "" {
		return []string{p}
	}

	var paths []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "synapse", "config.toml"))
	}
	home, _ := os.UserHomeDir()
	if home != "" {
		paths = append(paths, filepath.Join(home, ".config", "synapse", "config.toml"))
	}
	return paths
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Addr = ":" + strings.TrimPrefix(v, ":")
	}
	if v := os.Getenv("SYNAPSE_DB_PATH"); v != "" {
		cfg.Store.Path = v
	}
	if v := os.Getenv("SYNAPSE_SCENARIOS"); v != "" {
		cfg.Scenarios.Path = v
	}
	if v := os.Getenv("SYNAPSE_LOCALE"); v != "" {
		cfg.Scoring.Locale = v
	}
	if v := os.Getenv("SYNAPSE_SENTIMENT_PROVIDER"); v != "" {
		cfg.Sentiment.Provider = strings.ToLower(v)
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		cfg.Claim.RedisURL = v
	}
	if v := os.Getenv("TRANSCRIBE_URL"); v != "" {
		cfg.Transcribe.URL = v
	}
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// Validate rejects settings the service cannot start with. A locale that
// is not built in is accepted only alongside a lexicon override file.
func (c Config) Validate() error {
	switch c.Sentiment.Provider {
	case ProviderLexical, ProviderGateway, ProviderGemini:
	default:
		return fmt.Errorf("config: unknown sentiment provider %q", c.Sentiment.Provider)
	}
	if c.Scoring.SentimentTimeoutMs <= 0 {
		return fmt.Errorf("config: sentiment_timeout_ms must be positive")
	}
	if _, ok := lexicon.Lookup(c.Scoring.Locale); !ok && c.Scoring.LexiconPath == "" {
		return fmt.Errorf("config: unknown locale %q (known: %s)", c.Scoring.Locale, strings.Join(lexicon.Codes(), ", "))
	}
	w := c.Scoring.Weights
	for _, v := range []float64{w.Speech, w.Conversation, w.Content, w.Outcome, w.Climate} {
		if v < 0 {
			return fmt.Errorf("config: category weights must not be negative")
		}
	}
	if c.Store.Path == "" {
		return fmt.Errorf("config: store path is empty")
	}
	return nil
}

func (c Config) SentimentTimeout() time.Duration {
	return time.Duration(c.Scoring.SentimentTimeoutMs) * time.Millisecond
}

func (c Config) ClaimTTL() time.Duration {
	return time.Duration(c.Claim.TTLSeconds) * time.Second
}

// APIKey reads the sentiment provider key from the configured variable.
func (c Config) APIKey() string {
	return os.Getenv(c.Sentiment.APIKeyEnv)
}
