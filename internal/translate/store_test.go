package translate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTranslations(t *testing.T, lines string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "translations.tsv")
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o644))
	return path
}

func TestNewFileStore(t *testing.T) {
	path := writeTranslations(t, "dog\tсобака\n"+
		"! comment line\n"+
		"\n"+
		"no-tab-line\n"+
		"run\tбежать/бегать/управлять\n"+
		"look up\tискать\n")

	s, err := NewFileStore(path)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())

	got, ok := s.Translate("dog")
	require.True(t, ok)
	assert.Equal(t, "собака", got)

	got, ok = s.Translate("look up")
	require.True(t, ok)
	assert.Equal(t, "искать", got)

	_, ok = s.Translate("cat")
	assert.False(t, ok)
}

func TestFileStoreTranslateIsCaseInsensitive(t *testing.T) {
	s, err := NewFileStore(writeTranslations(t, "dog\tсобака\n"))
	require.NoError(t, err)

	got, ok := s.Translate("Dog")
	require.True(t, ok)
	assert.Equal(t, "собака", got)
}

func TestNewFileStoreMissing(t *testing.T) {
	_, err := NewFileStore(filepath.Join(t.TempDir(), "nope.tsv"))
	assert.Error(t, err)
}

func TestLimit(t *testing.T) {
	tests := []struct {
		raw  string
		max  int
		want string
	}{
		{"бежать/бегать/управлять", 2, "бежать / бегать"},
		{"бежать/бегать", 3, "бежать / бегать"},
		{"собака", 1, "собака"},
		{"a / b / c / d", 3, "a / b / c"},
		{"собака", 0, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Limit(tt.raw, tt.max), "Limit(%q, %d)", tt.raw, tt.max)
	}
}
