package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"synapse-go/internal/claim"
	"synapse-go/internal/config"
	"synapse-go/internal/lexicon"
	"synapse-go/internal/logger"
	"synapse-go/internal/sentiment"
)

func TestClassifierSelection(t *testing.T) {
	ctx := context.Background()
	log := logger.Discard().Entry

	cfg := config.DefaultConfig()
	c, closer, err := Classifier(ctx, cfg, lexicon.Default(), log)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := c.(sentiment.LexicalClassifier); !ok {
		t.Errorf("lexical provider built %T", c)
	}
	closer.Close()

	cfg.Sentiment.Provider = config.ProviderGateway
	cfg.Sentiment.MaxRetrySeconds = 2
	c, _, err = Classifier(ctx, cfg, lexicon.Default(), log)
	if err != nil {
		t.Fatal(err)
	}
	if g, ok := c.(*sentiment.Gateway); !ok || g.MaxRetryTime.Seconds() != 2 {
		t.Errorf("gateway provider built %T", c)
	}

	cfg.Sentiment.Provider = config.ProviderGemini
	cfg.Sentiment.APIKeyEnv = "SYNAPSE_TEST_MISSING_KEY"
	t.Setenv("SYNAPSE_TEST_MISSING_KEY", "")
	if _, _, err := Classifier(ctx, cfg, lexicon.Default(), log); err == nil {
		t.Error("expected gemini without key to fail")
	}

	cfg.Sentiment.Provider = "watson"
	if _, _, err := Classifier(ctx, cfg, lexicon.Default(), log); err == nil {
		t.Error("expected unknown provider error")
	}
}

func TestLexicons(t *testing.T) {
	cfg := config.DefaultConfig()
	if _, err := Lexicons(cfg); err != nil {
		t.Fatalf("default: %v", err)
	}

	path := filepath.Join(t.TempDir(), "retail.toml")
	os.WriteFile(path, []byte("base = \"pt-BR\"\ncode = \"pt-BR-retail\"\nfillers = [\"tipo\"]\n"), 0o644)
	cfg.Scoring.LexiconPath = path
	cfg.Scoring.Locale = "pt-BR-retail"
	reg, err := Lexicons(cfg)
	if err != nil {
		t.Fatalf("override: %v", err)
	}
	if loc, ok := reg.Get("pt-BR-retail"); !ok || len(loc.Fillers) != 1 {
		t.Errorf("override not registered")
	}

	cfg.Scoring.Locale = "fr"
	if _, err := Lexicons(cfg); err == nil {
		t.Error("expected missing locale error")
	}
}

func TestScenariosDefaultsToBuiltin(t *testing.T) {
	c, err := Scenarios(config.DefaultConfig())
	if err != nil || c.Len() == 0 {
		t.Fatalf("catalog = %v, %v", c, err)
	}
	cfg := config.DefaultConfig()
	cfg.Scenarios.Path = "/nonexistent/catalog.yaml"
	if _, err := Scenarios(cfg); err == nil {
		t.Error("expected load error")
	}
}

func TestClaimerLocalWithoutRedis(t *testing.T) {
	c, closer, err := Claimer(context.Background(), config.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	defer closer.Close()
	if _, ok := c.(*claim.Local); !ok {
		t.Errorf("claimer = %T", c)
	}
}
