package analyze

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
	"unicode"

	inflect "github.com/english-study-helper/inflect"
	"github.com/english-study-helper/inflect/internal/config"
)

var (
	// reSpace collapses whitespace runs during cleaning.
	reSpace = regexp.MustCompile(`\s+`)
	// reSentenceEnd splits text into sentences.
	reSentenceEnd = regexp.MustCompile(`[.!?]+`)
	// reWordToken matches a purely alphabetic token.
	reWordToken = regexp.MustCompile(`[a-zA-Z]+`)
)

// Analyzer collects vocabulary from texts.
type Analyzer struct {
	inflector *inflect.Inflector
	settings  *config.Settings
	tagger    Tagger
}

// New builds an Analyzer. A nil tagger falls back to the dictionary-driven
// HeuristicTagger.
func New(inflector *inflect.Inflector, settings *config.Settings, tagger Tagger) *Analyzer {
	if tagger == nil {
		tagger = NewHeuristicTagger(inflector)
	}
	return &Analyzer{inflector: inflector, settings: settings, tagger: tagger}
}

// CleanText strips backslashes and collapses whitespace runs.
func CleanText(text string) string {
	text = strings.ReplaceAll(text, `\`, "")
	return strings.TrimSpace(reSpace.ReplaceAllString(text, " "))
}

// SplitSentences splits cleaned text on sentence-ending punctuation,
// dropping empty and punctuation-only fragments.
func SplitSentences(text string) []string {
	var out []string
	for _, s := range reSentenceEnd.Split(text, -1) {
		s = strings.TrimSpace(s)
		if s == "" || !strings.ContainsFunc(s, unicode.IsLetter) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// AnalyzeText collects every alphabetic word from the text, counts it per
// word/tag combination, attaches example sentences, and resolves base forms
// through the engine. The result is filtered by the settings and sorted
// alphabetically.
func (a *Analyzer) AnalyzeText(text string) []*Word {
	sentences := SplitSentences(CleanText(text))

	words := make(map[string]*Word)
	var order []string
	for _, sentence := range sentences {
		for _, token := range reWordToken.FindAllString(sentence, -1) {
			lower := strings.ToLower(token)
			tag := a.tagger.Tag(lower)
			key := lower + "_" + tag
			w, ok := words[key]
			if !ok {
				w = &Word{Text: lower, Tag: tag, Base: a.baseForm(lower)}
				words[key] = w
				order = append(order, key)
			}
			w.Count++
			w.addExample(sentence)
		}
	}

	var out []*Word
	for _, key := range order {
		w := words[key]
		if a.settings.ShouldExcludeWord(w.Text, w.Tag) {
			continue
		}
		out = append(out, w)
	}
	SortByText(out)
	return out
}

// AnalyzeFile reads and analyzes one text file.
func (a *Analyzer) AnalyzeFile(path string) ([]*Word, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return a.AnalyzeText(string(data)), nil
}

// baseForm resolves the best base-form candidate for a word, keeping the
// word itself when the engine knows nothing.
func (a *Analyzer) baseForm(word string) string {
	if cands := a.inflector.Search(word); len(cands) > 0 {
		return cands[0].Phrase
	}
	return word
}

// SortByText orders words alphabetically.
func SortByText(words []*Word) {
	sort.Slice(words, func(i, j int) bool { return words[i].Text < words[j].Text })
}

// SortByCount orders words by descending occurrence count, alphabetical on
// ties.
func SortByCount(words []*Word) {
	sort.Slice(words, func(i, j int) bool {
		if words[i].Count != words[j].Count {
			return words[i].Count > words[j].Count
		}
		return words[i].Text < words[j].Text
	})
}
