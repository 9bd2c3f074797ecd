package inflect

import (
	"reflect"
	"testing"
)

func TestSearchSingleInflection(t *testing.T) {
	inf := newTestInflector(t)
	got := inf.Search("running")
	want := []Candidate{{Phrase: "run", Cost: 4.0, Labels: []Label{LabelVerbPresentParticiple}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Search(running) = %v, want %v", got, want)
	}
}

func TestSearchExactBaseForm(t *testing.T) {
	inf := newTestInflector(t)
	got := inf.Search("run")
	want := []Candidate{{Phrase: "run", Cost: 3.0, Labels: []Label{LabelOriginal}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Search(run) = %v, want %v", got, want)
	}
}

func TestSearchAmbiguousSurfaceForm(t *testing.T) {
	inf := newTestInflector(t)

	// "saw" is both a stored base form (cost 9.0) and the past of "see"
	// (4.0 idf + 1.0 category cost). The inflection reading ranks first.
	got := inf.Search("saw")
	want := []Candidate{
		{Phrase: "see", Cost: 5.0, Labels: []Label{LabelVerbPast}},
		{Phrase: "saw", Cost: 9.0, Labels: []Label{LabelOriginal}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Search(saw) = %v, want %v", got, want)
	}
}

func TestSearchScanOrderPenalty(t *testing.T) {
	inf := newTestInflector(t)

	// "persons" is the second entry of person's np list: 1.0 category cost
	// plus one 3.0 scan penalty, plus 7.0 occurrence cost.
	got := inf.Search("persons")
	want := []Candidate{{Phrase: "person", Cost: 11.0, Labels: []Label{LabelNounPlural}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Search(persons) = %v, want %v", got, want)
	}

	// The first entry pays no scan penalty.
	got = inf.Search("people")
	want = []Candidate{{Phrase: "person", Cost: 8.0, Labels: []Label{LabelNounPlural}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Search(people) = %v, want %v", got, want)
	}
}

func TestSearchMultipleMatchedLabels(t *testing.T) {
	inf := newTestInflector(t)

	// "faster" matches fast under both ajc and avc; the minimum label cost
	// counts once and both labels are reported in stored order.
	got := inf.Search("faster")
	want := []Candidate{{
		Phrase: "fast",
		Cost:   8.0, // 6.0 idf + 2.0 category cost
		Labels: []Label{LabelAdjectiveComparative, LabelAdverbComparative},
	}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Search(faster) = %v, want %v", got, want)
	}
}

func TestSearchMultiTokenSubstitution(t *testing.T) {
	inf := newTestInflector(t)

	// No record matches "big dogs" as a whole: the np entry of "dog" is
	// substituted for the second token, with the cross-token penalty.
	got := inf.Search("big dogs")
	want := []Candidate{{
		Phrase: "big dog",
		Cost:   26.0, // 5.0 idf + 20.0 cross-token + 1.0 category cost
		Labels: []Label{LabelNounPlural},
	}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Search(big dogs) = %v, want %v", got, want)
	}
}

func TestSearchWholePhraseBeatsSubstitution(t *testing.T) {
	inf := newTestInflector(t)

	// "looked up" matches the whole-phrase record, so the per-token pass
	// never runs.
	got := inf.Search("looked up")
	want := []Candidate{{
		Phrase: "look up",
		Cost:   13.0, // 12.0 idf + 1.0 category cost
		Labels: []Label{LabelVerbPast, LabelVerbPastParticiple},
	}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Search(looked up) = %v, want %v", got, want)
	}
}

func TestSearchDefaultOccurrenceCost(t *testing.T) {
	inf := newTestInflector(t)

	// "cat" has no i: field and defaults to 20.0.
	got := inf.Search("cats")
	want := []Candidate{{Phrase: "cat", Cost: 21.0, Labels: []Label{LabelNounPlural}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Search(cats) = %v, want %v", got, want)
	}
}

func TestSearchUnknownWord(t *testing.T) {
	inf := newTestInflector(t)
	if got := inf.Search("zzxyq"); len(got) != 0 {
		t.Errorf("Search(zzxyq) = %v, want empty", got)
	}
	// Multi-token phrases with no matching token stay empty too.
	if got := inf.Search("zzxyq qyxzz"); len(got) != 0 {
		t.Errorf("Search(zzxyq qyxzz) = %v, want empty", got)
	}
}

func TestSearchNormalizesInput(t *testing.T) {
	inf := newTestInflector(t)
	got := inf.Search("  Running?  ")
	if len(got) != 0 {
		t.Errorf("Search(Running) = %v, want empty (matching is case-sensitive)", got)
	}
	got = inf.Search("looked-up")
	if len(got) != 1 || got[0].Phrase != "look up" {
		t.Errorf("Search(looked-up) = %v, want the look up candidate", got)
	}
}

func TestSearchOrderingStable(t *testing.T) {
	inf := newTestInflector(t)
	got := inf.Search("went")
	want := []Candidate{{Phrase: "go", Cost: 3.5, Labels: []Label{LabelVerbPast}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Search(went) = %v, want %v", got, want)
	}
}
