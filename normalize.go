package inflect

import (
	"regexp"
	"strings"
)

// reNonWord matches runs of non-word characters used as token boundaries.
var reNonWord = regexp.MustCompile(`\W+`)

// Tokenize splits a phrase on runs of non-word characters and drops empty
// tokens. Joining the result with single spaces yields the canonical phrase
// used as a store key.
func Tokenize(phrase string) []string {
	var tokens []string
	for _, t := range reNonWord.Split(strings.TrimSpace(phrase), -1) {
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// Canonical returns the whitespace-normalized form of a phrase.
func Canonical(phrase string) string {
	return strings.Join(Tokenize(phrase), " ")
}

// substitute returns the phrase formed by replacing tokens[i] with value.
func substitute(tokens []string, i int, value string) string {
	out := make([]string, len(tokens))
	copy(out, tokens)
	out[i] = value
	return strings.Join(out, " ")
}
