package lexicon_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib/lexicon"
	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib/testhelpers"
)

func TestLookups(t *testing.T) {
	lex := testhelpers.Lexicon()

	assert.True(t, lex.Exists("casa"))
	assert.False(t, lex.Exists("Casa"), "lookups are case sensitive")
	assert.False(t, lex.Exists("inexistente"))

	assert.Equal(t, []lexicon.Tag{lexicon.NOUN, lexicon.VERB}, lex.Tags("casa"))
	assert.Empty(t, lex.Tags("inexistente"))

	entries := lex.Get("casa")
	require.Len(t, entries, 2)
	assert.Equal(t, "casa", entries[0].Lemma)
	assert.Equal(t, lexicon.NOUN, entries[0].Tag)
	assert.Equal(t, "casar", entries[1].Lemma)
	assert.Equal(t, lexicon.VERB, entries[1].Tag)
	assert.Empty(t, lex.Get("inexistente"))

	assert.Len(t, lex.GetTag("a", lexicon.DET), 1)
	assert.Empty(t, lex.GetTag("a", lexicon.VERB))
	assert.Empty(t, lex.GetTag("inexistente", lexicon.VERB))
	assert.True(t, lex.HasTag("é", lexicon.AUX))
	assert.False(t, lex.HasTag("é", lexicon.NOUN))
}

func TestLookupsReturnCopies(t *testing.T) {
	lex := testhelpers.Lexicon()

	tags := lex.Tags("casa")
	tags[0] = lexicon.ADV
	assert.Equal(t, []lexicon.Tag{lexicon.NOUN, lexicon.VERB}, lex.Tags("casa"))

	entries := lex.GetTag("casa", lexicon.NOUN)
	entries[0].Lemma = "lar"
	assert.Equal(t, "casa", lex.GetTag("casa", lexicon.NOUN)[0].Lemma)
	assert.True(t, lex.HasTag("casa", lexicon.NOUN))
}

func TestFeatures(t *testing.T) {
	feats, err := lexicon.ParseFeatures("Gender=Masc|Number=Plur|PronType=Art,Dem")
	require.NoError(t, err)
	assert.True(t, feats.Has("Number", "Plur"))
	assert.False(t, feats.Has("Number", "Sing"))
	assert.True(t, feats.Has("PronType", "Art"))
	assert.True(t, feats.Has("PronType", "Dem"))
	assert.Equal(t, "Gender=Masc|Number=Plur|PronType=Art,Dem", feats.String())

	empty, err := lexicon.ParseFeatures("_")
	require.NoError(t, err)
	assert.Empty(t, empty)
	assert.Equal(t, "_", empty.String())

	_, err = lexicon.ParseFeatures("Gender")
	assert.Error(t, err)
}

func TestStats(t *testing.T) {
	lex := testhelpers.Lexicon()
	for _, s := range lex.Stats() {
		switch s.Tag {
		case lexicon.NOUN:
			assert.Equal(t, 3, s.Words)
			assert.Equal(t, 1, s.Ambiguous)
			assert.Equal(t, 2, s.NonAmbiguous)
			assert.Equal(t, 3, s.Entries)
		case lexicon.CCONJ:
			assert.Zero(t, s.Words)
		}
	}
	assert.Equal(t, 23, lex.Words())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, testhelpers.WriteLexicon(dir))

	lex, err := lexicon.Load(dir)
	require.NoError(t, err)
	assert.True(t, lex.HasTag("dias", lexicon.NOUN))

	require.NoError(t, os.Remove(filepath.Join(dir, lexicon.NUM.FileName())))
	_, err = lexicon.Load(dir)
	assert.Error(t, err)
}

func tagReaders(override map[lexicon.Tag]string) map[lexicon.Tag]io.Reader {
	readers := map[lexicon.Tag]io.Reader{}
	for tag, content := range testhelpers.TagFiles {
		if o, ok := override[tag]; ok {
			content = o
		}
		readers[tag] = strings.NewReader(content)
	}
	return readers
}

func TestReadErrors(t *testing.T) {
	for _, test := range []struct {
		name     string
		master   string
		override map[lexicon.Tag]string
		file     string
		line     int
	}{
		{
			name:   "master line without tags",
			master: "eu,PRON\ncasa\n",
			file:   lexicon.MasterFileName,
			line:   2,
		},
		{
			name:   "master line with an unknown tag",
			master: "eu,PRON\ncasa,NOUN PUNCT\n",
			file:   lexicon.MasterFileName,
			line:   2,
		},
		{
			name:     "tag line with two columns",
			master:   testhelpers.MasterFile,
			override: map[lexicon.Tag]string{lexicon.ADV: "rapidamente\trapidamente\t_\nmais\tmais\n"},
			file:     lexicon.ADV.FileName(),
			line:     2,
		},
		{
			name:     "tag line with a malformed feature",
			master:   testhelpers.MasterFile,
			override: map[lexicon.Tag]string{lexicon.ADJ: "macio\tmacio\tGender\n"},
			file:     lexicon.ADJ.FileName(),
			line:     1,
		},
	} {
		_, err := lexicon.Read(strings.NewReader(test.master), tagReaders(test.override))
		var perr lexicon.ParseError
		if assert.True(t, errors.As(err, &perr), test.name) {
			assert.Equal(t, test.file, perr.File, test.name)
			assert.Equal(t, test.line, perr.Line, test.name)
		}
	}
}

func TestReadMissingEntries(t *testing.T) {
	_, err := lexicon.Read(strings.NewReader(testhelpers.MasterFile+"gato,NOUN\n"), tagReaders(nil))
	var merr lexicon.MissingEntriesError
	require.True(t, errors.As(err, &merr))
	assert.Equal(t, "gato", merr.Word)
	assert.Equal(t, lexicon.NOUN, merr.Tag)
}
