package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib/pipeline"
	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib/testhelpers"
)

func writeFile(t *testing.T, dir, name, content string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadInputs(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "O Sr. Silva fez. ")
	b := writeFile(t, dir, "b.txt", "Isso é ótimo")
	missing := filepath.Join(dir, "missing.txt")

	assert.Equal(t, []string{"O Sr. Silva fez. Isso é ótimo"}, readInputs([]string{a, missing, b}, pipeline.TextInput))
	assert.Nil(t, readInputs([]string{missing}, pipeline.TextInput))

	h := writeFile(t, dir, "a.html", "<p>Um.</p><p>Dois.</p>")
	assert.Equal(t, []string{"Um.", "Dois."}, readInputs([]string{h}, pipeline.HTMLInput))
}

func TestWriteSentences(t *testing.T) {
	out := filepath.Join(t.TempDir(), "sents.txt")
	p := pipeline.New(nil, testhelpers.Abbrev(), pipeline.Options{})

	n, err := writeSentences(context.Background(), out, p, []string{"O Sr. Silva fez. Isso é ótimo", "Um."})
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "O Sr. Silva fez.\nIsso é ótimo.\nUm.\n", string(b))
}

func TestWriteSentencesCancelled(t *testing.T) {
	out := filepath.Join(t.TempDir(), "sents.txt")
	p := pipeline.New(nil, testhelpers.Abbrev(), pipeline.Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n, err := writeSentences(ctx, out, p, []string{"Um."})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, n)
}
