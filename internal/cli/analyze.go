package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/english-study-helper/inflect/internal/analyze"
	"github.com/english-study-helper/inflect/internal/config"
	"github.com/english-study-helper/inflect/internal/report"
	"github.com/english-study-helper/inflect/internal/translate"
)

var (
	analyzeInput        string
	analyzeOutput       string
	analyzeTranslations string
	analyzeUntranslated bool
	analyzeByCount      bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze texts into Markdown vocabulary reports",
	Long: `Analyze reads one Markdown file or every .md file in a directory,
collects the vocabulary with counts and example sentences, resolves
base forms, and writes a <name>_report.md per input.

Example:
  studyhelper analyze -i chapter1.md -o output
  studyhelper analyze -i ./book --translations data/translations.tsv`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeInput, "input", "i", "", "input .md file or directory (required)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "output", "output directory")
	analyzeCmd.Flags().StringVar(&analyzeTranslations, "translations", "", "translation file (word<TAB>translation)")
	analyzeCmd.Flags().BoolVar(&analyzeUntranslated, "no-translation", false, "report only words missing a translation")
	analyzeCmd.Flags().BoolVar(&analyzeByCount, "by-count", false, "sort by occurrence count instead of alphabetically")
	_ = analyzeCmd.MarkFlagRequired("input")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	inf, err := newInflector()
	if err != nil {
		return err
	}
	settings, err := config.Load(settingsFile)
	if err != nil {
		return err
	}

	var store translate.Store
	if analyzeTranslations != "" {
		fileStore, err := translate.NewFileStore(analyzeTranslations)
		if err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "loaded %d translations\n", fileStore.Len())
		}
		// The resolver runs a ranked search per miss; cache its answers.
		store = translate.NewCached(translate.NewResolver(fileStore, inf), 10*time.Minute)
	} else {
		store = emptyStore{}
	}

	targets, err := collectTargets(analyzeInput)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(analyzeOutput, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	analyzer := analyze.New(inf, settings, nil)
	for _, path := range targets {
		words, err := analyzer.AnalyzeFile(path)
		if err != nil {
			return err
		}
		if analyzeByCount {
			analyze.SortByCount(words)
		}
		title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		md := report.Generate(words, store, settings, report.Options{
			Title:            title,
			OnlyUntranslated: analyzeUntranslated,
		})
		outPath := filepath.Join(analyzeOutput, title+"_report.md")
		if err := report.Save(md, outPath); err != nil {
			return err
		}
		fmt.Printf("wrote %s (%d words)\n", outPath, len(words))
	}
	return nil
}

// collectTargets expands the input path into the list of .md files to
// analyze.
func collectTargets(input string) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	if !info.IsDir() {
		return []string{input}, nil
	}
	entries, err := os.ReadDir(input)
	if err != nil {
		return nil, fmt.Errorf("input directory: %w", err)
	}
	var targets []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".md") {
			continue
		}
		targets = append(targets, filepath.Join(input, e.Name()))
	}
	if len(targets) == 0 {
		return nil, fmt.Errorf("no .md files in %s", input)
	}
	sort.Strings(targets)
	return targets, nil
}

// emptyStore is the Store used when no translation file is configured.
type emptyStore struct{}

func (emptyStore) Translate(string) (string, bool) { return "", false }
