// Package report renders analyzed vocabulary as a Markdown table.
package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/english-study-helper/inflect/internal/analyze"
	"github.com/english-study-helper/inflect/internal/config"
	"github.com/english-study-helper/inflect/internal/translate"
)

const (
	exampleWidth  = 60
	noTranslation = "(none)"
)

// Options controls report generation.
type Options struct {
	// Title becomes the report heading; empty means no heading.
	Title string
	// OnlyUntranslated keeps only words with no known translation, to
	// surface dictionary gaps.
	OnlyUntranslated bool
}

// Generate renders a Markdown vocabulary table for the given words.
func Generate(words []*analyze.Word, store translate.Store, settings *config.Settings, opts Options) string {
	var b strings.Builder
	if opts.Title != "" {
		fmt.Fprintf(&b, "# %s\n\n", opts.Title)
	}
	b.WriteString("| Word            | Count    | Meaning              | Part of speech  | Example |\n")
	b.WriteString("|-----------------|----------|----------------------|-----------------|---------|\n")

	for _, w := range words {
		translation, ok := store.Translate(w.Text)
		if opts.OnlyUntranslated && ok {
			continue
		}
		meaning := noTranslation
		if ok {
			meaning = translate.Limit(translation, settings.MaxTranslations)
		}
		example := ""
		if len(w.Examples) > 0 {
			example = shorten(w.Examples[0], exampleWidth)
		}
		fmt.Fprintf(&b, "| %-15s | %-8d | %-20s | %-15s | %s |\n",
			w.Text, w.Count, meaning, settings.TagName(w.Tag), example)
	}
	return b.String()
}

// Save writes a report to a file.
func Save(report, path string) error {
	if err := os.WriteFile(path, []byte(report), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// shorten truncates s at a word boundary, appending an ellipsis when
// anything was cut.
func shorten(s string, width int) string {
	if len(s) <= width {
		return s
	}
	cut := s[:width-3]
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return cut + "..."
}
