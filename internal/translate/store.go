// Package translate provides the translation lookup used by vocabulary
// reports. The engine core stays independent of it; reports consume it
// through the narrow Store interface.
package translate

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Store looks up the translation of a base-form word or phrase.
type Store interface {
	// Translate returns the raw translation string for a word and whether
	// one is known. Multiple senses are separated by "/".
	Translate(word string) (string, bool)
}

// FileStore is a Store backed by a flat tab-separated file of
// "word<TAB>translation" lines, loaded once and immutable afterwards.
type FileStore struct {
	entries map[string]string
}

// NewFileStore loads the translation file at path. Lines without two
// tab-separated fields are skipped; an unreadable file is fatal.
func NewFileStore(path string) (*FileStore, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open translations: %w", err)
	}
	defer f.Close()

	s := &FileStore{entries: make(map[string]string)}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}
		fields := strings.SplitN(line, "\t", 2)
		if len(fields) != 2 || fields[0] == "" {
			continue
		}
		s.entries[fields[0]] = fields[1]
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read translations: %w", err)
	}
	return s, nil
}

// Translate implements Store.
func (s *FileStore) Translate(word string) (string, bool) {
	t, ok := s.entries[strings.ToLower(word)]
	return t, ok
}

// Len returns the number of loaded entries.
func (s *FileStore) Len() int {
	return len(s.entries)
}

// Limit splits a raw translation on "/" and rejoins at most max senses.
// A non-positive max yields the empty string.
func Limit(translation string, max int) string {
	if max <= 0 {
		return ""
	}
	senses := strings.Split(translation, "/")
	if len(senses) > max {
		senses = senses[:max]
	}
	for i, s := range senses {
		senses[i] = strings.TrimSpace(s)
	}
	return strings.Join(senses, " / ")
}
