package inflect

import (
	"sort"
	"strings"
)

// Search resolves a possibly-inflected phrase to candidate base forms,
// ranked ascending by cost with a lexical tie-break on the phrase.
//
// An exact base-form hit is reported with the LabelOriginal marker. Other
// candidates come from the inverted index; their cost is the base's
// occurrence cost plus the minimum matched category cost. When nothing
// matches and the phrase has several tokens, single-token substitution is
// tried with an extra cross-token penalty. Unknown single words yield an
// empty list; Search never fails.
func (inf *Inflector) Search(phrase string) []Candidate {
	tokens := Tokenize(phrase)
	orig := strings.Join(tokens, " ")

	var matches []Candidate
	seen := map[string]bool{orig: true}

	if rec := inf.words[orig]; rec != nil {
		matches = append(matches, Candidate{
			Phrase: orig,
			Cost:   rec.occurrenceCost(),
			Labels: []Label{LabelOriginal},
		})
	}

	for _, base := range inf.index[orig] {
		if seen[base] {
			continue
		}
		rec := inf.words[base]
		if rec == nil {
			continue
		}
		labelCost, labels := rec.labelMatch(orig)
		matches = append(matches, Candidate{
			Phrase: base,
			Cost:   rec.occurrenceCost() + labelCost,
			Labels: labels,
		})
		seen[base] = true
	}

	if len(matches) == 0 && len(tokens) > 1 {
		for i, token := range tokens {
			bases := append([]string{token}, inf.index[token]...)
			for _, base := range bases {
				candidate := substitute(tokens, i, base)
				if seen[candidate] {
					continue
				}
				rec := inf.words[base]
				if rec == nil {
					continue
				}
				labelCost, labels := rec.labelMatch(token)
				matches = append(matches, Candidate{
					Phrase: candidate,
					Cost:   rec.occurrenceCost() + crossTokenPenalty + labelCost,
					Labels: labels,
				})
				seen[candidate] = true
			}
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Cost != matches[j].Cost {
			return matches[i].Cost < matches[j].Cost
		}
		return matches[i].Phrase < matches[j].Phrase
	})
	return matches
}
