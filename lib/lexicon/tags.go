package lexicon

import "fmt"

// Tag is a universal part-of-speech tag carried by lexicon entries.
type Tag string

const (
	ADJ   Tag = "ADJ"
	ADP   Tag = "ADP"
	ADV   Tag = "ADV"
	AUX   Tag = "AUX"
	CCONJ Tag = "CCONJ"
	DET   Tag = "DET"
	INTJ  Tag = "INTJ"
	NOUN  Tag = "NOUN"
	NUM   Tag = "NUM"
	PRON  Tag = "PRON"
	SCONJ Tag = "SCONJ"
	VERB  Tag = "VERB"
)

// Tags lists every tag in the order the tag files are read.
var Tags = []Tag{ADJ, ADP, ADV, AUX, CCONJ, DET, INTJ, NOUN, NUM, PRON, SCONJ, VERB}

func (t Tag) index() int {
	for i, tag := range Tags {
		if tag == t {
			return i
		}
	}
	return -1
}

// ParseTag returns the Tag named by s.
func ParseTag(s string) (Tag, error) {
	t := Tag(s)
	if t.index() < 0 {
		return "", fmt.Errorf("unknown tag %q", s)
	}
	return t, nil
}

// FileName is the name of the per-tag entry file.
func (t Tag) FileName() string {
	return string(t) + ".tsv"
}
