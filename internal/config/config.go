// Package config holds the study-helper settings: which words a vocabulary
// report should skip, how part-of-speech tags are displayed, and how many
// translation senses to show per word.
package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// Settings is the root study-helper configuration.
type Settings struct {
	// ExcludeTags lists part-of-speech tags whose words are dropped from
	// reports (determiners, pronouns, and similar).
	ExcludeTags []string `yaml:"exclude_tags" env:"STUDYHELPER_EXCLUDE_TAGS"`

	// BeVerbs lists forms of "to be" that are always dropped.
	BeVerbs []string `yaml:"be_verbs" env:"STUDYHELPER_BE_VERBS"`

	// TagNames maps a part-of-speech tag to its display name.
	TagNames map[string]string `yaml:"tag_names"`

	// ContractionFragments lists tokenizer fragments of negated
	// contractions ("wasn", "isn") that are never real words.
	ContractionFragments []string `yaml:"contraction_fragments" env:"STUDYHELPER_CONTRACTION_FRAGMENTS"`

	// MinWordLength drops words at or below this length.
	MinWordLength int `yaml:"min_word_length" env:"STUDYHELPER_MIN_WORD_LENGTH" env-default:"2"`

	// MaxTranslations caps the number of translation senses shown per word.
	MaxTranslations int `yaml:"max_translations" env:"STUDYHELPER_MAX_TRANSLATIONS" env-default:"3"`
}

// Default returns the built-in settings used when no config file is given.
func Default() *Settings {
	return &Settings{
		ExcludeTags: []string{"DT", "IN", "CC", "PRP", "PRP$", "WDT", "WP", "WP$", "WRB", "TO", "EX", "MD", "UH"},
		BeVerbs:     []string{"be", "is", "am", "are", "was", "were", "been", "being"},
		TagNames: map[string]string{
			"NN":  "noun",
			"NNS": "noun (plural)",
			"VB":  "verb",
			"VBD": "verb (past)",
			"VBG": "verb (gerund)",
			"VBN": "verb (past participle)",
			"VBZ": "verb (3rd person singular)",
			"JJ":  "adjective",
			"JJR": "adjective (comparative)",
			"JJS": "adjective (superlative)",
			"RB":  "adverb",
			"RBR": "adverb (comparative)",
			"RBS": "adverb (superlative)",
		},
		ContractionFragments: []string{
			"wasn", "isn", "doesn", "didn", "haven", "hadn", "won",
			"wouldn", "couldn", "shouldn", "mightn", "mustn",
		},
		MinWordLength:   2,
		MaxTranslations: 3,
	}
}

// Load reads settings from a YAML file, overlaying environment variables.
// An empty path yields the defaults (still overlaid with the environment).
func Load(path string) (*Settings, error) {
	s := Default()
	if path == "" {
		if err := cleanenv.ReadEnv(s); err != nil {
			return nil, fmt.Errorf("read env: %w", err)
		}
		return s, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("settings file: %w", err)
	}
	if err := cleanenv.ReadConfig(path, s); err != nil {
		return nil, fmt.Errorf("read settings %s: %w", path, err)
	}
	return s, nil
}

// TagName returns the display name for a part-of-speech tag, or the tag
// itself when no name is configured.
func (s *Settings) TagName(tag string) string {
	if name, ok := s.TagNames[tag]; ok {
		return name
	}
	return tag
}

// ShouldExcludeWord reports whether a word should be dropped from reports.
func (s *Settings) ShouldExcludeWord(word, tag string) bool {
	if len(word) <= s.MinWordLength {
		return true
	}
	if slices.Contains(s.ExcludeTags, tag) {
		return true
	}
	lower := strings.ToLower(word)
	if slices.Contains(s.BeVerbs, lower) {
		return true
	}
	return slices.Contains(s.ContractionFragments, lower)
}
