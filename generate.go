package inflect

import "strings"

// inflectOp describes one inflection category for a target part of speech:
// which token of the phrase it acts on, the category label, and the fallback
// generator used when the store has no entry for the focus token.
type inflectOp struct {
	// position is a token index into the phrase; negative counts from the
	// end (-1 = last token).
	position int
	label    Label
	generate func(string) string
}

var (
	nounOps = []inflectOp{
		{-1, LabelNounPlural, NounPlural},
	}
	verbOps = []inflectOp{
		{0, LabelVerbSingular, VerbSingular},
		{0, LabelVerbPresentParticiple, VerbPresentParticiple},
		{0, LabelVerbPast, VerbPast},
		{0, LabelVerbPastParticiple, VerbPastParticiple},
	}
	adjectiveOps = []inflectOp{
		{0, LabelAdjectiveComparative, AdjectiveComparative},
		{0, LabelAdjectiveSuperlative, AdjectiveSuperlative},
	}
	adverbOps = []inflectOp{
		{-1, LabelAdverbComparative, AdverbComparative},
		{-1, LabelAdverbSuperlative, AdverbSuperlative},
	}
	allOps = []inflectOp{
		{-1, LabelNounPlural, NounPlural},
		{0, LabelVerbSingular, VerbSingular},
		{0, LabelVerbPresentParticiple, VerbPresentParticiple},
		{0, LabelVerbPast, VerbPast},
		{0, LabelVerbPastParticiple, VerbPastParticiple},
		{0, LabelAdjectiveComparative, AdjectiveComparative},
		{0, LabelAdjectiveSuperlative, AdjectiveSuperlative},
		{-1, LabelAdverbComparative, AdverbComparative},
		{-1, LabelAdverbSuperlative, AdverbSuperlative},
	}
)

// InflectNoun generates the noun inflections of phrase. When fallback is
// true, categories with no store entry are generated heuristically.
func (inf *Inflector) InflectNoun(phrase string, fallback bool) *Result {
	return inf.inflect(phrase, nounOps, fallback)
}

// InflectVerb generates the verb inflections of phrase.
func (inf *Inflector) InflectVerb(phrase string, fallback bool) *Result {
	return inf.inflect(phrase, verbOps, fallback)
}

// InflectAdjective generates the adjective inflections of phrase.
func (inf *Inflector) InflectAdjective(phrase string, fallback bool) *Result {
	return inf.inflect(phrase, adjectiveOps, fallback)
}

// InflectAdverb generates the adverb inflections of phrase.
func (inf *Inflector) InflectAdverb(phrase string, fallback bool) *Result {
	return inf.inflect(phrase, adverbOps, fallback)
}

// Inflect generates the inflections of phrase for every category.
func (inf *Inflector) Inflect(phrase string, fallback bool) *Result {
	return inf.inflect(phrase, allOps, fallback)
}

// inflect resolves the given categories for a phrase. Whole-phrase store
// entries are preferred; remaining categories are resolved against the focus
// token's store entry and, when fallback is enabled, the category's
// heuristic generator. Every input yields a Result, degraded to just the
// original phrase when nothing could be resolved.
func (inf *Inflector) inflect(phrase string, ops []inflectOp, fallback bool) *Result {
	tokens := Tokenize(phrase)
	orig := strings.Join(tokens, " ")
	res := &Result{Original: orig, Forms: make(map[Label][]string)}

	satisfied := make(map[Label]bool, len(ops))
	if rec := inf.words[orig]; rec != nil {
		for _, op := range ops {
			values, ok := rec.forms[op.label]
			if !ok {
				continue
			}
			res.Forms[op.label] = append([]string(nil), values...)
			res.PhraseLabels = append(res.PhraseLabels, op.label)
			satisfied[op.label] = true
		}
		res.OccurrenceCost = rec.cost
	}
	if len(res.PhraseLabels) == len(ops) {
		return res
	}

	for _, op := range ops {
		if satisfied[op.label] {
			continue
		}
		i := op.position
		if i < 0 {
			i += len(tokens)
		}
		if i < 0 || i >= len(tokens) {
			// Out-of-range focus position: the category is skipped.
			continue
		}
		focus := tokens[i]

		var known []string
		if rec := inf.words[focus]; rec != nil {
			known = rec.forms[op.label]
		}
		var out []string
		switch {
		case len(known) > 0:
			for _, value := range known {
				out = append(out, substitute(tokens, i, value))
			}
			res.TokenLabels = append(res.TokenLabels, op.label)
		case !fallback:
			continue
		default:
			out = []string{substitute(tokens, i, op.generate(focus))}
		}
		res.Forms[op.label] = out
	}
	return res
}
