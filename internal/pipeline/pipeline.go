// Package pipeline scores one finished conversation: feature extraction,
// criterion scoring, aggregation and report synthesis.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"synapse-go/internal/aggregator"
	"synapse-go/internal/extractor"
	"synapse-go/internal/lexicon"
	"synapse-go/internal/logger"
	"synapse-go/internal/report"
	"synapse-go/internal/sentiment"
	"synapse-go/internal/types"
)

// ErrAborted is returned when the caller cancels. It wraps ctx.Err().
var ErrAborted = errors.New("scoring aborted")

const DefaultSentimentTimeout = 3 * time.Second

type Result struct {
	Metrics types.MetricsResult    `json:"metrics"`
	Report  types.SimulationReport `json:"report"`
}

type Pipeline struct {
	classifier sentiment.Classifier
	locale     func() *lexicon.Locale
	constants  lexicon.Constants
	weights    aggregator.Weights
	timeout    time.Duration
	log        *logrus.Entry
}

type Option func(*Pipeline)

func WithLocale(loc *lexicon.Locale) Option {
	return func(p *Pipeline) {
		if loc != nil {
			p.locale = func() *lexicon.Locale { return loc }
		}
	}
}

// WithRegistry reads the locale from reg on every call, so reloaded
// lexicons apply to the next session. Unknown codes fall back to the default.
func WithRegistry(reg *lexicon.Registry, code string) Option {
	return func(p *Pipeline) {
		p.locale = func() *lexicon.Locale {
			if loc, ok := reg.Get(code); ok {
				return loc
			}
			return lexicon.Default()
		}
	}
}

func WithConstants(k lexicon.Constants) Option {
	return func(p *Pipeline) { p.constants = k }
}

func WithWeights(w aggregator.Weights) Option {
	return func(p *Pipeline) { p.weights = w }
}

func WithSentimentTimeout(d time.Duration) Option {
	return func(p *Pipeline) {
		if d > 0 {
			p.timeout = d
		}
	}
}

func WithLogger(log *logrus.Entry) Option {
	return func(p *Pipeline) {
		if log != nil {
			p.log = log
		}
	}
}

// New builds a pipeline around classifier. A nil classifier always uses the
// lexical fallback.
func New(classifier sentiment.Classifier, opts ...Option) *Pipeline {
	p := &Pipeline{
		classifier: classifier,
		locale:     lexicon.Default,
		constants:  lexicon.DefaultConstants(),
		weights:    aggregator.DefaultWeights,
		timeout:    DefaultSentimentTimeout,
		log:        logger.New().WithComponent("pipeline"),
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Score runs the full pipeline. The only error is ErrAborted; classifier
// failures fall back to the lexical score and are logged.
func (p *Pipeline) Score(ctx context.Context, conv types.Conversation, sc types.Scenario, userRole string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAborted, err)
	}
	start := time.Now()
	conv = conv.Snapshot()
	loc := p.locale()

	sent, err := p.sentiment(ctx, conv, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAborted, err)
	}

	m := aggregator.New(loc, p.constants, p.weights).Aggregate(conv, sc, sent)
	r := report.NewSynthesizer(loc, p.constants).Synthesize(m, sc, userRole)

	p.log.WithFields(logrus.Fields{
		"scenario":    sc.ID,
		"area":        sc.Area,
		"turns":       len(conv.Turns),
		"overall":     m.OverallScore,
		"score_level": r.ScoreLevel,
		"fallback":    sent.Fallback,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("session scored")
	return &Result{Metrics: m, Report: r}, nil
}

// sentiment classifies the first and last user turns; one call when they
// are the same turn, none without user turns.
func (p *Pipeline) sentiment(ctx context.Context, conv types.Conversation, loc *lexicon.Locale) (aggregator.Sentiment, error) {
	first, last, single, ok := extractor.SentimentEndpoints(conv)
	if !ok {
		return aggregator.Sentiment{}, nil
	}

	a, err := p.classify(ctx, first, loc)
	if err != nil {
		return aggregator.Sentiment{}, err
	}
	if single {
		return aggregator.Sentiment{Fallback: a.Fallback}, nil
	}
	b, err := p.classify(ctx, last, loc)
	if err != nil {
		return aggregator.Sentiment{}, err
	}
	return aggregator.Sentiment{
		Delta:    sentiment.Polarity(b.Classification) - sentiment.Polarity(a.Classification),
		Fallback: a.Fallback || b.Fallback,
	}, nil
}

func (p *Pipeline) classify(ctx context.Context, text string, loc *lexicon.Locale) (sentiment.Outcome, error) {
	out, err := sentiment.Resolve(ctx, p.classifier, p.timeout, text, loc)
	if err != nil {
		return out, err
	}
	if out.Fallback && out.Err != nil {
		p.log.WithError(out.Err).Warn("sentiment classifier failed, using lexical fallback")
	}
	return out, nil
}
