package analyze

import (
	"strings"

	inflect "github.com/english-study-helper/inflect"
)

// labelTags maps the engine's inflection categories to the tag a surface
// form carrying that category would receive.
var labelTags = map[inflect.Label]string{
	inflect.LabelNounPlural:            "NNS",
	inflect.LabelVerbSingular:          "VBZ",
	inflect.LabelVerbPresentParticiple: "VBG",
	inflect.LabelVerbPast:              "VBD",
	inflect.LabelVerbPastParticiple:    "VBN",
	inflect.LabelAdjectiveComparative:  "JJR",
	inflect.LabelAdjectiveSuperlative:  "JJS",
	inflect.LabelAdverbComparative:     "RBR",
	inflect.LabelAdverbSuperlative:     "RBS",
}

// baseTags maps the categories a base-form record carries to the tag of the
// base form itself.
var baseTags = []struct {
	label inflect.Label
	tag   string
}{
	{inflect.LabelVerbPast, "VB"},
	{inflect.LabelNounPlural, "NN"},
	{inflect.LabelAdjectiveComparative, "JJ"},
	{inflect.LabelAdverbComparative, "RB"},
}

// HeuristicTagger guesses tags from the inflection dictionary alone. It is a
// stand-in for a real tagger: good enough to drive report filtering, wrong
// whenever context matters.
type HeuristicTagger struct {
	inflector *inflect.Inflector
}

// NewHeuristicTagger builds a tagger over the given engine.
func NewHeuristicTagger(inflector *inflect.Inflector) *HeuristicTagger {
	return &HeuristicTagger{inflector: inflector}
}

// Tag implements Tagger. Known base forms are tagged by the categories their
// record carries; inflected forms by the best-ranked matching category;
// everything else defaults to NN.
func (t *HeuristicTagger) Tag(token string) string {
	lower := strings.ToLower(token)
	if info := t.inflector.LookupPhraseInfo(lower); info != nil {
		for _, bt := range baseTags {
			if _, ok := info.Forms[bt.label]; ok {
				return bt.tag
			}
		}
	}
	for _, cand := range t.inflector.Search(lower) {
		for _, label := range cand.Labels {
			if tag, ok := labelTags[label]; ok {
				return tag
			}
		}
	}
	return "NN"
}
