package analyze

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inflect "github.com/english-study-helper/inflect"
	"github.com/english-study-helper/inflect/internal/config"
)

func newTestEngine(t *testing.T) *inflect.Inflector {
	t.Helper()
	data := "dog\tnp:dogs\ti:5.0\n" +
		"run\tvs:runs\tvc:running\tvp:ran\tvx:run\ti:3.0\n" +
		"go\tvs:goes\tvc:going\tvp:went\tvx:gone\ti:2.5\n" +
		"fast\tajc:faster\tajs:fastest\tavc:faster\tavs:fastest\ti:6.0\n"
	path := filepath.Join(t.TempDir(), "inflections.tsv")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	inf, err := inflect.New(path)
	require.NoError(t, err)
	return inf
}

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	return New(newTestEngine(t), config.Default(), nil)
}

func TestCleanText(t *testing.T) {
	got := CleanText("  The\\ dogs \n\t ran.  ")
	assert.Equal(t, "The dogs ran.", got)
}

func TestSplitSentences(t *testing.T) {
	got := SplitSentences("The dogs ran. Dogs run fast! Really?? ... 123.")
	assert.Equal(t, []string{"The dogs ran", "Dogs run fast", "Really"}, got)
}

func TestAnalyzeText(t *testing.T) {
	a := newTestAnalyzer(t)
	words := a.AnalyzeText("The dogs ran. Dogs run fast!")

	texts := make([]string, 0, len(words))
	for _, w := range words {
		texts = append(texts, w.Text)
	}
	require.Equal(t, []string{"dogs", "fast", "ran", "run", "the"}, texts)

	dogs := words[0]
	assert.Equal(t, 2, dogs.Count)
	assert.Equal(t, "NNS", dogs.Tag)
	assert.Equal(t, "dog", dogs.Base)
	assert.Equal(t, []string{"The dogs ran", "Dogs run fast"}, dogs.Examples)

	ran := words[2]
	assert.Equal(t, "VBD", ran.Tag)
	assert.Equal(t, "run", ran.Base)

	run := words[3]
	assert.Equal(t, "VB", run.Tag)
	assert.Equal(t, "run", run.Base)
}

func TestAnalyzeTextFiltersBySettings(t *testing.T) {
	a := newTestAnalyzer(t)
	words := a.AnalyzeText("It is fast. We go up.")

	// "it", "we", "go", "up" fall below the length floor; "is" is a be verb.
	texts := make([]string, 0, len(words))
	for _, w := range words {
		texts = append(texts, w.Text)
	}
	assert.Equal(t, []string{"fast"}, texts)
}

func TestAnalyzeTextCountsPerTag(t *testing.T) {
	a := newTestAnalyzer(t)
	words := a.AnalyzeText("Dogs run. The dogs ran fast.")

	for _, w := range words {
		if w.Text == "dogs" {
			assert.Equal(t, 2, w.Count)
			assert.Len(t, w.Examples, 2)
		}
	}
}

func TestAnalyzeFile(t *testing.T) {
	a := newTestAnalyzer(t)
	path := filepath.Join(t.TempDir(), "input.md")
	require.NoError(t, os.WriteFile(path, []byte("The dogs ran."), 0o644))

	words, err := a.AnalyzeFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, words)
}

func TestAnalyzeFileMissing(t *testing.T) {
	a := newTestAnalyzer(t)
	_, err := a.AnalyzeFile(filepath.Join(t.TempDir(), "nope.md"))
	assert.Error(t, err)
}

func TestSortByCount(t *testing.T) {
	words := []*Word{
		{Text: "banana", Count: 2},
		{Text: "apple", Count: 2},
		{Text: "cherry", Count: 5},
	}
	SortByCount(words)
	assert.Equal(t, "cherry", words[0].Text)
	assert.Equal(t, "apple", words[1].Text)
	assert.Equal(t, "banana", words[2].Text)
}
