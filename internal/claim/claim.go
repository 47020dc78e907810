// Package claim makes sure at most one scoring run per session is in flight.
package claim

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var ErrInFlight = errors.New("session already being scored")

// Claimer hands out exclusive claims on a key. The returned release func
// is safe to call more than once.
type Claimer interface {
	Claim(ctx context.Context, key string) (release func(), err error)
}

// Local claims keys within one process.
type Local struct {
	mu   sync.Mutex
	held map[string]struct{}
}

func NewLocal() *Local {
	return &Local{held: make(map[string]struct{})}
}

func (l *Local) Claim(ctx context.Context, key string) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.held[key]; ok {
		return nil, fmt.Errorf("%w: %s", ErrInFlight, key)
	}
	l.held[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.held, key)
			l.mu.Unlock()
		})
	}, nil
}
