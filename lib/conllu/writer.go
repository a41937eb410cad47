// Package conllu renders tokenized sentences as CoNLL-U blocks. Only ID, FORM
// and MISC are filled in, every other column is "_".
package conllu

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib/tokenizer"
)

const (
	spaceAfterNo = "SpaceAfter=No"
	empty        = "_"
)

// Writer writes CoNLL-U documents to an underlying io.Writer.
type Writer struct {
	w io.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteDocHeader starts a document and its single paragraph.
func (w *Writer) WriteDocHeader(id string) error {
	_, err := fmt.Fprintf(w.w, "# newdoc id = %s\n# newpar\n", id)
	return err
}

// WriteSentence writes one sentence block followed by a blank line and
// returns the number of syntactic words, i.e. the last ID used.
func (w *Writer) WriteSentence(sid, text string, tokens []tokenizer.Token) (int, error) {
	var b strings.Builder
	b.WriteString("# sent_id = " + sid + "\n")
	b.WriteString("# text = " + text + "\n")

	n := 0
	for _, t := range tokens {
		misc := empty
		if !t.SpaceAfter {
			misc = spaceAfterNo
		}
		if !t.IsMultiword() {
			n++
			writeRow(&b, strconv.Itoa(n), t.Form, misc)
			continue
		}
		writeRow(&b, strconv.Itoa(n+1)+"-"+strconv.Itoa(n+len(t.Words)), t.Form, misc)
		for _, word := range t.Words {
			n++
			writeRow(&b, strconv.Itoa(n), word, empty)
		}
	}
	b.WriteString("\n")

	if _, err := io.WriteString(w.w, b.String()); err != nil {
		return 0, err
	}
	return n, nil
}

func writeRow(b *strings.Builder, id, form, misc string) {
	b.WriteString(id)
	b.WriteString("\t")
	b.WriteString(form)
	for i := 0; i < 7; i++ {
		b.WriteString("\t" + empty)
	}
	b.WriteString("\t")
	b.WriteString(misc)
	b.WriteString("\n")
}
