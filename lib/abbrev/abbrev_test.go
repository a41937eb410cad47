package abbrev

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch(t *testing.T) {
	list, err := Read(strings.NewReader("Sr.\n\nex.\r\nS.A.\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, list.Len())

	for _, test := range []struct {
		chunk string
		match bool
	}{
		{"Sr.", true},
		{"(Sr.", true},
		{"\"ex.", true},
		{"ex.", true},
		{"Tex.", false},
		{"fez.", false},
		{"Sr", false},
		{"S.A.", true},
		{"Petrobras-S.A.", true},
		{"", false},
	} {
		assert.Equal(t, test.match, list.Match(test.chunk), test.chunk)
	}
}

func TestNilListNeverMatches(t *testing.T) {
	var list *List
	assert.False(t, list.Match("Sr."))
}

func TestDefault(t *testing.T) {
	list := Default()
	assert.True(t, list.Match("Sr."))
	assert.True(t, list.Match("Dra."))
	assert.False(t, list.Match("fez."))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "abbrev.txt")
	require.NoError(t, os.WriteFile(path, []byte("Av.\n"), 0o644))

	list, err := Load(path)
	require.NoError(t, err)
	assert.True(t, list.Match("Av."))

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
