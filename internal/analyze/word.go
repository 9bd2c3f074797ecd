// Package analyze turns raw English text into a counted, tagged vocabulary
// list, resolving each surface word to its base form through the inflection
// engine. Part-of-speech tagging proper is outside this repository; callers
// may plug any tagger through the Tagger interface.
package analyze

// Word is one vocabulary entry collected from a text.
type Word struct {
	// Text is the lower-cased surface form.
	Text string
	// Tag is the part-of-speech tag assigned by the tagger.
	Tag string
	// Base is the resolved base form; equal to Text when unresolved.
	Base string
	// Count is the number of occurrences.
	Count int
	// Examples holds sentences the word appeared in, first seen first.
	Examples []string
}

// Key identifies a word/tag combination.
func (w *Word) Key() string {
	return w.Text + "_" + w.Tag
}

// addExample records a sentence unless it is already present.
func (w *Word) addExample(sentence string) {
	for _, e := range w.Examples {
		if e == sentence {
			return
		}
	}
	w.Examples = append(w.Examples, sentence)
}

// Tagger assigns a part-of-speech tag to a single word token.
type Tagger interface {
	Tag(token string) string
}
