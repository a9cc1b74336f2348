package engine

import (
	"fmt"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en"

// Collator compares strings by the collation rules of a locale, so accented
// names sort next to their base letters instead of after "z".
// collate.Collator keeps scratch buffers, hence the mutex.
type Collator struct {
	mu  sync.Mutex
	c   *collate.Collator
	tag language.Tag
}

func NewCollator(locale string) (*Collator, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	return &Collator{c: collate.New(tag), tag: tag}, nil
}

// MustCollator is NewCollator for locales known to be valid.
func MustCollator(locale string) *Collator {
	c, err := NewCollator(locale)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Collator) Locale() string { return c.tag.String() }

func (c *Collator) Compare(a, b string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.c.CompareString(a, b)
}
