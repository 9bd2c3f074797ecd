// Package inflect resolves English surface word-forms to base (dictionary)
// forms and generates inflected forms (plurals, verb conjugations,
// comparative/superlative forms) from a base form, backed by a flat
// tab-separated data file of known inflections.
package inflect

// Inflector holds the loaded inflection dictionary and provides the public API.
// The store is built once by New and never mutated afterwards, so a single
// Inflector may be shared freely between concurrent readers.
type Inflector struct {
	// words maps base-form phrase → record.
	words map[string]*record

	// index maps inflected surface string → base forms producing it.
	index map[string][]string
}

// New loads the inflection data file at dataPath and returns a ready-to-use
// Inflector. The load is the only fallible operation; every lookup and
// generation method on the returned value is total over its inputs.
func New(dataPath string) (*Inflector, error) {
	inf := &Inflector{
		words: make(map[string]*record),
		index: make(map[string][]string),
	}
	if err := inf.load(dataPath); err != nil {
		return nil, err
	}
	return inf, nil
}

// LookupPhraseInfo returns the stored attributes for an exact base-form key,
// or nil if the phrase is unknown. The returned value is a copy; mutating it
// does not affect the store.
func (inf *Inflector) LookupPhraseInfo(phrase string) *PhraseInfo {
	rec := inf.words[phrase]
	if rec == nil {
		return nil
	}
	info := &PhraseInfo{
		Labels: append([]Label(nil), rec.labels...),
		Forms:  make(map[Label][]string, len(rec.forms)),
	}
	for label, values := range rec.forms {
		info.Forms[label] = append([]string(nil), values...)
	}
	info.OccurrenceCost = rec.cost
	return info
}
