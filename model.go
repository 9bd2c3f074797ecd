package inflect

// Label identifies an inflection category in the data file and in results.
type Label string

const (
	// LabelNounPlural is the noun plural category ("cats").
	LabelNounPlural Label = "np"
	// LabelVerbSingular is the verb 3rd-person singular present category ("runs").
	LabelVerbSingular Label = "vs"
	// LabelVerbPresentParticiple is the present participle/gerund category ("running").
	LabelVerbPresentParticiple Label = "vc"
	// LabelVerbPast is the verb past category ("ran").
	LabelVerbPast Label = "vp"
	// LabelVerbPastParticiple is the verb past participle category ("run").
	LabelVerbPastParticiple Label = "vx"
	// LabelAdjectiveComparative is the adjective comparative category ("taller").
	LabelAdjectiveComparative Label = "ajc"
	// LabelAdjectiveSuperlative is the adjective superlative category ("tallest").
	LabelAdjectiveSuperlative Label = "ajs"
	// LabelAdverbComparative is the adverb comparative category ("faster").
	LabelAdverbComparative Label = "avc"
	// LabelAdverbSuperlative is the adverb superlative category ("fastest").
	LabelAdverbSuperlative Label = "avs"
	// LabelReserved is present in the cost table but wired to no generator
	// or consumer; it is kept as a reserved no-op entry.
	LabelReserved Label = "a"

	// LabelOriginal marks a search candidate that matched the phrase as a
	// stored base form rather than through an inflection category.
	LabelOriginal Label = "original"
)

// categoryCosts is the fixed disambiguation cost per inflection category.
// A smaller cost means a stronger signal that a surface form belongs to
// that category.
var categoryCosts = map[Label]float64{
	LabelNounPlural:            1.0,
	LabelVerbSingular:          1.0,
	LabelVerbPresentParticiple: 1.0,
	LabelVerbPast:              1.0,
	LabelVerbPastParticiple:    1.0,
	LabelAdjectiveComparative:  2.0,
	LabelAdjectiveSuperlative:  2.0,
	LabelAdverbComparative:     2.0,
	LabelAdverbSuperlative:     2.0,
	LabelReserved:              4.0,
}

// CategoryCost returns the fixed base cost for an inflection category and
// whether the label is recognized.
func CategoryCost(label Label) (float64, bool) {
	cost, ok := categoryCosts[label]
	return cost, ok
}

const (
	// defaultOccurrenceCost is assumed for records that carry no occurrence
	// cost. An explicit cost of zero is treated the same as an absent one.
	defaultOccurrenceCost = 20.0

	// unmatchedLabelCost is the starting minimum label cost before any
	// category produces an exact match.
	unmatchedLabelCost = 10.0

	// scanPenalty is added for every non-matching entry inspected before a
	// match while walking a category's value list in stored order.
	scanPenalty = 3.0

	// crossTokenPenalty is added to candidates produced by single-token
	// substitution in a multi-word phrase.
	crossTokenPenalty = 20.0
)

// record is a loaded dictionary entry for one base-form phrase.
type record struct {
	// labels keeps the recognized category labels in file insertion order.
	// Search walks labels and value lists in exactly this order; the scan
	// penalty makes rankings depend on it.
	labels []Label
	// forms maps category label → known inflected strings in stored order.
	forms map[Label][]string
	// cost is the occurrence cost from the "i:" field; zero means unset.
	cost float64
}

// occurrenceCost returns the record's rarity score, falling back to the
// default when none was loaded.
func (r *record) occurrenceCost() float64 {
	if r.cost != 0 {
		return r.cost
	}
	return defaultOccurrenceCost
}

// labelMatch scans the record's categories in stored order for exact matches
// of form. It returns the minimum matched label cost (including accumulated
// scan penalties) and every label that produced an exact match.
func (r *record) labelMatch(form string) (float64, []Label) {
	minCost := float64(unmatchedLabelCost)
	var matched []Label
	for _, label := range r.labels {
		cost := categoryCosts[label]
		for _, infl := range r.forms[label] {
			if infl == form {
				if cost < minCost {
					minCost = cost
				}
				matched = append(matched, label)
				break
			}
			cost += scanPenalty
		}
	}
	return minCost, matched
}

// PhraseInfo is a defensive copy of a stored record, as returned by
// Inflector.LookupPhraseInfo.
type PhraseInfo struct {
	// Labels lists the record's categories in file insertion order.
	Labels []Label
	// Forms maps category label → known inflected strings in stored order.
	Forms map[Label][]string
	// OccurrenceCost is the record's rarity score; zero when unset.
	OccurrenceCost float64
}

// Result holds the inflections generated for one phrase.
type Result struct {
	// Original is the whitespace-normalized input phrase.
	Original string
	// Forms maps category label → generated or looked-up phrases.
	Forms map[Label][]string
	// PhraseLabels lists the categories satisfied by a whole-phrase record.
	PhraseLabels []Label
	// TokenLabels lists the categories satisfied by a focus-token record.
	TokenLabels []Label
	// OccurrenceCost is the whole phrase's rarity score; zero when unknown.
	OccurrenceCost float64
}

// Candidate is one entry of a ranked search result.
type Candidate struct {
	// Phrase is the candidate base-form phrase.
	Phrase string
	// Cost is the candidate's total disambiguation cost; smaller is better.
	Cost float64
	// Labels lists the categories that explain the match, or LabelOriginal
	// for an exact base-form hit.
	Labels []Label
}
