package translate

import (
	"strings"

	inflect "github.com/english-study-helper/inflect"
)

// Resolver translates surface words by falling back to their base forms:
// when the store has no entry for an inflected word, the inflection engine's
// ranked candidates are tried in order.
type Resolver struct {
	store     Store
	inflector *inflect.Inflector
}

// NewResolver builds a Resolver over a store and an inflection engine.
func NewResolver(store Store, inflector *inflect.Inflector) *Resolver {
	return &Resolver{store: store, inflector: inflector}
}

// Translate implements Store. The surface word is tried first; then each
// search candidate, best first.
func (r *Resolver) Translate(word string) (string, bool) {
	lower := strings.ToLower(word)
	if t, ok := r.store.Translate(lower); ok {
		return t, true
	}
	for _, cand := range r.inflector.Search(lower) {
		if cand.Phrase == lower {
			continue
		}
		if t, ok := r.store.Translate(cand.Phrase); ok {
			return t, true
		}
	}
	return "", false
}

// BaseForm returns the best base-form guess for a surface word: the top
// search candidate, or the word itself when the engine knows nothing.
func (r *Resolver) BaseForm(word string) string {
	lower := strings.ToLower(word)
	if cands := r.inflector.Search(lower); len(cands) > 0 {
		return cands[0].Phrase
	}
	return lower
}
