package lexicon

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// Registry is the set of locales a running service scores with. Readers get
// an immutable *Locale; a reload swaps the pointer.
type Registry struct {
	mu      sync.RWMutex
	locales map[string]*Locale
}

func NewRegistry() *Registry {
	r := &Registry{locales: make(map[string]*Locale, len(builtin))}
	for code, l := range builtin {
		r.locales[code] = l
	}
	return r
}

func (r *Registry) Get(code string) (*Locale, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.locales[code]
	return l, ok
}

func (r *Registry) Put(l *Locale) {
	r.mu.Lock()
	r.locales[l.Code] = l
	r.mu.Unlock()
}

// LoadFile loads a TOML override and registers it under its code.
func (r *Registry) LoadFile(path string) (*Locale, error) {
	l, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	r.Put(l)
	return l, nil
}

// Watch reloads the override at path whenever it is written or replaced,
// until ctx is done. A broken file is logged and the previous tables stay.
func (r *Registry) Watch(ctx context.Context, path string, log *logrus.Entry) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("lexicon watcher: %w", err)
	}
	path = filepath.Clean(path)
	// watch the directory: editors replace files instead of writing in place
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return fmt.Errorf("lexicon watch %s: %w", path, err)
	}

	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != path || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
					continue
				}
				l, err := r.LoadFile(path)
				if err != nil {
					log.WithField("path", path).WithField("error", err.Error()).Warn("lexicon reload failed")
					continue
				}
				log.WithField("path", path).WithField("locale", l.Code).Info("lexicon reloaded")
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.WithField("error", err.Error()).Warn("lexicon watcher error")
			}
		}
	}()
	return nil
}
