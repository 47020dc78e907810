package sentiment

import (
	"context"
	"fmt"
	"time"

	"synapse-go/internal/lexicon"
)

// Outcome is what Resolve settled on. Err keeps the classifier failure that
// triggered the fallback, for logging.
type Outcome struct {
	Classification
	Fallback bool
	Err      error
}

// Resolve classifies text with c under timeout. A nil classifier, an error,
// an invalid verdict, a panic or the timeout all yield the Lexical fallback.
// Only cancellation of ctx itself is returned as an error.
func Resolve(ctx context.Context, c Classifier, timeout time.Duration, text string, loc *lexicon.Locale) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}
	if c == nil {
		return Outcome{Classification: Lexical(text, loc), Fallback: true}, nil
	}

	cctx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		cctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	res, err := classify(cctx, c, text)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return Outcome{}, ctxErr
	}
	if err == nil {
		res.Label = normalizeLabel(res.Label)
		err = res.Validate()
	}
	if err != nil {
		return Outcome{Classification: Lexical(text, loc), Fallback: true, Err: err}, nil
	}
	return Outcome{Classification: res}, nil
}

// classify runs c in its own goroutine so a classifier that ignores ctx
// still cannot hold the caller past the deadline.
func classify(ctx context.Context, c Classifier, text string) (Classification, error) {
	type result struct {
		c   Classification
		err error
	}
	ch := make(chan result, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- result{err: fmt.Errorf("classifier panic: %v", r)}
			}
		}()
		res, err := c.Classify(ctx, text)
		ch <- result{res, err}
	}()

	select {
	case <-ctx.Done():
		return Classification{}, ctx.Err()
	case r := <-ch:
		return r.c, r.err
	}
}
