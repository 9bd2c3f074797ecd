package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeuristicTagger(t *testing.T) {
	tagger := NewHeuristicTagger(newTestEngine(t))

	tests := []struct {
		token string
		want  string
	}{
		{"run", "VB"},      // base form with verb categories
		{"dog", "NN"},      // base form with a plural category
		{"fast", "JJ"},     // base form with adjective categories
		{"dogs", "NNS"},    // known plural
		{"ran", "VBD"},     // known past form
		{"running", "VBG"}, // known present participle
		{"faster", "JJR"},  // comparative, adjective reading ranked first
		{"zzxyq", "NN"},    // unknown defaults to noun
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tagger.Tag(tt.token), "Tag(%q)", tt.token)
	}
}

func TestHeuristicTaggerLowercases(t *testing.T) {
	tagger := NewHeuristicTagger(newTestEngine(t))
	assert.Equal(t, "NNS", tagger.Tag("Dogs"))
}
