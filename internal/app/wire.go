// Package app assembles the scoring stack from a Config for the entry points.
package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"synapse-go/internal/claim"
	"synapse-go/internal/config"
	"synapse-go/internal/lexicon"
	"synapse-go/internal/pipeline"
	"synapse-go/internal/scenario"
	"synapse-go/internal/sentiment"
)

// Classifier builds the configured sentiment classifier. The returned
// closer is never nil.
func Classifier(ctx context.Context, cfg config.Config, loc *lexicon.Locale, log *logrus.Entry) (sentiment.Classifier, io.Closer, error) {
	switch cfg.Sentiment.Provider {
	case config.ProviderGateway:
		g := sentiment.NewGateway(cfg.Sentiment.BaseURL, cfg.Sentiment.Model, cfg.APIKey(), log.WithField("component", "sentiment"))
		if cfg.Sentiment.MaxRetrySeconds > 0 {
			g.MaxRetryTime = time.Duration(cfg.Sentiment.MaxRetrySeconds) * time.Second
		}
		return g, nopCloser{}, nil
	case config.ProviderGemini:
		g, err := sentiment.NewGemini(ctx, cfg.APIKey(), cfg.Sentiment.Model)
		if err != nil {
			return nil, nil, err
		}
		return g, g, nil
	case config.ProviderLexical:
		return sentiment.LexicalClassifier{Locale: loc}, nopCloser{}, nil
	default:
		return nil, nil, fmt.Errorf("unknown sentiment provider %q", cfg.Sentiment.Provider)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Lexicons builds the locale registry, loading the override file when one
// is configured, and checks that the scoring locale exists.
func Lexicons(cfg config.Config) (*lexicon.Registry, error) {
	reg := lexicon.NewRegistry()
	if cfg.Scoring.LexiconPath != "" {
		if _, err := reg.LoadFile(cfg.Scoring.LexiconPath); err != nil {
			return nil, err
		}
	}
	if _, ok := reg.Get(cfg.Scoring.Locale); !ok {
		return nil, fmt.Errorf("locale %q not found in built-ins or %s", cfg.Scoring.Locale, cfg.Scoring.LexiconPath)
	}
	return reg, nil
}

// Scenarios loads the configured catalog, or the built-in one.
func Scenarios(cfg config.Config) (*scenario.Catalog, error) {
	if cfg.Scenarios.Path == "" {
		return scenario.Builtin(), nil
	}
	return scenario.Load(cfg.Scenarios.Path)
}

// Pipeline builds a pipeline reading its locale from reg on every call.
func Pipeline(cfg config.Config, reg *lexicon.Registry, c sentiment.Classifier, log *logrus.Entry) *pipeline.Pipeline {
	return pipeline.New(c,
		pipeline.WithRegistry(reg, cfg.Scoring.Locale),
		pipeline.WithWeights(cfg.Scoring.Weights),
		pipeline.WithSentimentTimeout(cfg.SentimentTimeout()),
		pipeline.WithLogger(log.WithField("component", "pipeline")),
	)
}

// Claimer uses Redis when a URL is configured and an in-process claimer
// otherwise.
func Claimer(ctx context.Context, cfg config.Config) (claim.Claimer, io.Closer, error) {
	if cfg.Claim.RedisURL == "" {
		return claim.NewLocal(), nopCloser{}, nil
	}
	client, err := claim.NewRedisClient(cfg.Claim.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("ping redis: %w", err)
	}
	return claim.NewRedis(client, cfg.ClaimTTL()), client, nil
}
