// Package languages serves the programming-languages reference data.
package languages

import (
	"context"
	"coursework/internal/apperr"
	"coursework/internal/engine"
	"coursework/internal/models"
	"coursework/internal/storage"
	"fmt"
	"slices"
	"strings"

	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasttemplate"
)

const readError = "Server error reading languages data."

var summary = fasttemplate.New(
	"{{name}} ({{released}})\nParadigms: {{paradigms}}\nCommon uses: {{uses}}",
	"{{", "}}")

// Service reads the languages document on every call; the file is the only
// source of truth.
type Service struct {
	doc      *storage.Document[map[string]models.Language]
	collator *engine.Collator
}

func NewService(path string, collator *engine.Collator) *Service {
	return &Service{
		doc:      storage.NewDocument[map[string]models.Language](path),
		collator: collator,
	}
}

func (s *Service) load(ctx context.Context) (map[string]models.Language, error) {
	data, err := s.doc.Load(ctx)
	if err != nil {
		return nil, apperr.Storage(readError, err)
	}
	if data == nil {
		data = map[string]models.Language{}
	}
	return data, nil
}

// List returns the languages having every one of paradigms, compared
// case-insensitively. No paradigms returns everything.
func (s *Service) List(ctx context.Context, paradigms ...string) (map[string]models.Language, error) {
	data, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	paradigms = slices.DeleteFunc(slices.Clone(paradigms), func(p string) bool {
		return strings.TrimSpace(p) == ""
	})
	if len(paradigms) == 0 {
		return data, nil
	}
	out := make(map[string]models.Language)
	for id, lang := range data {
		if HasParadigms(lang, paradigms...) {
			out[id] = lang
		}
	}
	return out, nil
}

// HasParadigms reports whether lang lists all of want.
func HasParadigms(lang models.Language, want ...string) bool {
	for _, w := range want {
		found := false
		for _, p := range lang.Paradigm {
			if strings.EqualFold(p, w) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Lookup finds a language by id, case-insensitively.
func (s *Service) Lookup(ctx context.Context, name string) (models.Language, error) {
	data, err := s.load(ctx)
	if err != nil {
		return models.Language{}, err
	}
	lang, ok := data[strings.ToLower(name)]
	if !ok {
		return models.Language{}, apperr.NotFound(fmt.Sprintf("Language '%s' not found.", name))
	}
	return lang, nil
}

// Paradigms lists every distinct paradigm in collation order. Spellings that
// differ only in case count once; the first one seen wins.
func (s *Service) Paradigms(ctx context.Context) ([]string, error) {
	data, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(data))
	for id := range data {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	seen := make(map[string]bool)
	out := []string{}
	for _, id := range ids {
		for _, p := range data[id].Paradigm {
			key := strings.ToLower(p)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, p)
		}
	}
	return engine.SortByText(out, func(p string) string { return p }, s.collator), nil
}

// FormatText renders the plain-text summary served by /languages/:name.
func FormatText(lang models.Language) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	summary.Execute(buf, map[string]interface{}{
		"name":      lang.FormattedName,
		"released":  lang.ReleaseDate,
		"paradigms": strings.Join(lang.Paradigm, ", "),
		"uses":      strings.Join(lang.CommonUses, ", "),
	})
	return buf.String()
}
