package main

import (
	"bytes"
	"context"
	"io"

	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib/abbrev"
	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib/conllu"
	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib/lexicon"
	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib/pipeline"
)

type contentType int

const (
	contentTypeText contentType = iota
	contentTypeHTML
)

var allowedContentTypeEnumMap = map[string]contentType{
	"text/plain": contentTypeText,
	"text/html":  contentTypeHTML,
}

// requestOptions are the per request settings read from the query string.
type requestOptions struct {
	Match   bool
	Trim    bool
	Segment bool
	SentID  string
	IDMode  conllu.IDMode
	DocID   string
}

type wordResponse struct {
	Word    string          `json:"word"`
	Tags    []lexicon.Tag   `json:"tags"`
	Entries []lexicon.Entry `json:"entries"`
}

type controller struct {
	lexicon  lexicon.Lookup
	abbrev   *abbrev.List
	defaults pipeline.Options
}

func (c controller) newPipeline(opts requestOptions) *pipeline.Pipeline {
	o := c.defaults
	o.Match = opts.Match
	o.Trim = opts.Trim
	o.SentID = opts.SentID
	o.IDMode = opts.IDMode
	return pipeline.New(c.lexicon, c.abbrev, o)
}

// sentences reads the request body. Html is always segmented; plain text is
// read one sentence per line unless segment is set.
func (c controller) sentences(p *pipeline.Pipeline, reader io.Reader, ct contentType, segment bool) ([]string, error) {
	if ct == contentTypeText && !segment {
		return pipeline.ReadLines(reader)
	}
	format := pipeline.TextInput
	if ct == contentTypeHTML {
		format = pipeline.HTMLInput
	}
	texts, err := pipeline.ReadTexts(reader, format)
	if err != nil {
		return nil, err
	}
	return p.SegmentAll(texts), nil
}

func (c controller) Segment(reader io.Reader, ct contentType) ([]string, error) {
	p := c.newPipeline(requestOptions{})
	return c.sentences(p, reader, ct, true)
}

func (c controller) Tokenize(ctx context.Context, reader io.Reader, ct contentType, opts requestOptions) ([]pipeline.Sentence, error) {
	p := c.newPipeline(opts)
	sentences, err := c.sentences(p, reader, ct, opts.Segment)
	if err != nil {
		return nil, err
	}
	return p.Process(ctx, sentences)
}

func (c controller) CoNLLU(ctx context.Context, reader io.Reader, ct contentType, opts requestOptions) ([]byte, pipeline.Summary, error) {
	p := c.newPipeline(opts)
	sentences, err := c.sentences(p, reader, ct, opts.Segment)
	if err != nil {
		return nil, pipeline.Summary{}, err
	}
	var buf bytes.Buffer
	summary, err := p.WriteCoNLLU(ctx, &buf, opts.DocID, sentences)
	if err != nil {
		return nil, summary, err
	}
	return buf.Bytes(), summary, nil
}

func (c controller) Lookup(word string) (wordResponse, bool) {
	tags := c.lexicon.Tags(word)
	if len(tags) == 0 {
		return wordResponse{}, false
	}
	return wordResponse{Word: word, Tags: tags, Entries: c.lexicon.Get(word)}, true
}
