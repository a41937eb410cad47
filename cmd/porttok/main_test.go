package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib/pipeline"
	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib/testhelpers"
)

func TestReadSentences(t *testing.T) {
	p := pipeline.New(testhelpers.Lexicon(), testhelpers.Abbrev(), pipeline.Options{})

	got, err := readSentences(p, strings.NewReader("Um. Dois.\r\nTrês.\n"), false, pipeline.TextInput)
	require.NoError(t, err)
	assert.Equal(t, []string{"Um. Dois.", "Três."}, got)

	got, err = readSentences(p, strings.NewReader("Um. Dois.\nTrês."), true, pipeline.TextInput)
	require.NoError(t, err)
	assert.Equal(t, []string{"Um.", "Dois.", "Três."}, got)

	got, err = readSentences(p, strings.NewReader("<p>Um.</p><p>Dois</p>"), true, pipeline.HTMLInput)
	require.NoError(t, err)
	assert.Equal(t, []string{"Um.", "Dois."}, got)
}

func TestDocID(t *testing.T) {
	assert.Equal(t, "corpus", docID("corpus", "out/sents.conllu"))
	assert.Equal(t, "sents.conllu", docID("", "out/sents.conllu"))
	assert.Equal(t, "stdout", docID("", "-"))
}

func TestWriteOutput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "sents.conllu")
	p := pipeline.New(testhelpers.Lexicon(), testhelpers.Abbrev(), pipeline.Options{})

	summary, err := writeOutput(context.Background(), p, out, "sents.conllu", []string{"Vou à praia."})
	require.NoError(t, err)
	assert.Equal(t, pipeline.Summary{Sentences: 1, Words: 5, LastID: "S0001"}, summary)

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "# newdoc id = sents.conllu\n"+
		"# newpar\n"+
		"# sent_id = S0001\n"+
		"# text = Vou à praia.\n"+
		"1\tVou\t_\t_\t_\t_\t_\t_\t_\t_\n"+
		"2-3\tà\t_\t_\t_\t_\t_\t_\t_\t_\n"+
		"2\ta\t_\t_\t_\t_\t_\t_\t_\t_\n"+
		"3\ta\t_\t_\t_\t_\t_\t_\t_\t_\n"+
		"4\tpraia\t_\t_\t_\t_\t_\t_\t_\tSpaceAfter=No\n"+
		"5\t.\t_\t_\t_\t_\t_\t_\t_\t_\n"+
		"\n", string(b))
}
