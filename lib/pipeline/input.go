package pipeline

import (
	"fmt"
	"io"

	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib"
)

type InputFormat string

const (
	TextInput InputFormat = "text"
	HTMLInput InputFormat = "html"
)

func ParseInputFormat(s string) (InputFormat, error) {
	switch f := InputFormat(s); f {
	case "":
		return TextInput, nil
	case TextInput, HTMLInput:
		return f, nil
	default:
		return "", fmt.Errorf("invalid input format %q - must be text or html", s)
	}
}

// ReadTexts returns the texts of r to be segmented one by one: the whole
// content for plain text, one text per block element for html.
func ReadTexts(r io.Reader, format InputFormat) ([]string, error) {
	if format == HTMLInput {
		return lib.HtmlToText(r)
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return []string{string(b)}, nil
}

// SegmentAll segments each text and concatenates the sentences.
func (p *Pipeline) SegmentAll(texts []string) []string {
	var res []string
	for _, txt := range texts {
		res = append(res, p.Segment(txt)...)
	}
	return res
}
