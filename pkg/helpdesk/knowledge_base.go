package helpdesk

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

type faqFile struct {
	FAQs []FAQ `yaml:"faqs"`
}

// KnowledgeBase serves the current FAQ list and its Matcher. The list comes
// from a YAML file when one exists, otherwise from the built-in defaults.
type KnowledgeBase struct {
	path     string
	defaults []FAQ

	mu      sync.RWMutex
	faqs    []FAQ
	matcher *Matcher
}

// NewKnowledgeBase loads path (may be empty) and falls back to defaults
// when the file does not exist.
func NewKnowledgeBase(path string, defaults []FAQ) (*KnowledgeBase, error) {
	kb := &KnowledgeBase{path: path, defaults: defaults}
	if err := kb.Reload(); err != nil {
		return nil, err
	}
	return kb, nil
}

// ParseFAQs decodes the `faqs:` YAML document. Entries without a question
// are skipped.
func ParseFAQs(data []byte) ([]FAQ, error) {
	var f faqFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse faq file: %w", err)
	}
	out := make([]FAQ, 0, len(f.FAQs))
	for _, item := range f.FAQs {
		if item.Question == "" {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

// Reload re-reads the backing file. A parse error leaves the current list
// in place.
func (kb *KnowledgeBase) Reload() error {
	faqs := kb.defaults
	if kb.path != "" {
		data, err := os.ReadFile(kb.path)
		switch {
		case err == nil:
			parsed, perr := ParseFAQs(data)
			if perr != nil {
				return perr
			}
			faqs = parsed
		case errors.Is(err, os.ErrNotExist):
		default:
			return fmt.Errorf("failed to read faq file: %w", err)
		}
	}

	m := NewMatcher(faqs)
	kb.mu.Lock()
	kb.faqs = faqs
	kb.matcher = m
	kb.mu.Unlock()
	return nil
}

// FAQs returns a copy of the current list.
func (kb *KnowledgeBase) FAQs() []FAQ {
	kb.mu.RLock()
	defer kb.mu.RUnlock()
	out := make([]FAQ, len(kb.faqs))
	copy(out, kb.faqs)
	return out
}

func (kb *KnowledgeBase) Matcher() *Matcher {
	kb.mu.RLock()
	defer kb.mu.RUnlock()
	return kb.matcher
}

// Respond answers with whichever Matcher is current at call time.
func (kb *KnowledgeBase) Respond(query string) Reply {
	return kb.Matcher().Respond(query)
}

// Watch reloads the FAQ file whenever it is written or created, until ctx
// is done. The parent directory is watched because editors usually replace
// the file rather than write it. onReload, when set, is called after every
// attempt.
func (kb *KnowledgeBase) Watch(ctx context.Context, onReload func(error)) error {
	if kb.path == "" {
		return nil
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(kb.path)); err != nil {
		w.Close()
		return err
	}

	target := filepath.Clean(kb.path)
	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				// Rename and Remove mean the file moved away; keep the
				// current list until it is written or created again.
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				err := kb.Reload()
				if onReload != nil {
					onReload(err)
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				if onReload != nil {
					onReload(err)
				}
			}
		}
	}()
	return nil
}
