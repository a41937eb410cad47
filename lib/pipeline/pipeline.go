// Package pipeline chains segmentation, headline trimming, punctuation
// normalization, tokenization and CoNLL-U output.
package pipeline

import (
	"bufio"
	"context"
	"io"
	"runtime"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib/abbrev"
	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib/conllu"
	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib/lexicon"
	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib/sentence"
	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib/text"
	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib/tokenizer"
)

const DefaultSentID = "S0000"

type Options struct {
	// Replace and Limit configure segmentation.
	Replace bool
	Limit   int
	// Match normalizes paired and terminal punctuation of every sentence.
	Match bool
	// Trim removes headline fragments glued to the start of a sentence.
	Trim bool
	// SentID is the identifier before the first sentence: the first sentence
	// gets its successor.
	SentID string
	IDMode conllu.IDMode
	// Workers bounds the number of sentences tokenized at once.
	// Zero or less means one per CPU.
	Workers int
}

// Sentence is one input sentence after processing. A dropped sentence has
// an empty Text and no tokens but still owns its ID.
type Sentence struct {
	ID     string            `json:"id"`
	Input  string            `json:"input"`
	Text   string            `json:"text"`
	Tokens []tokenizer.Token `json:"tokens,omitempty"`
}

func (s Sentence) Dropped() bool {
	return s.Text == ""
}

// Summary counts what WriteCoNLLU wrote.
type Summary struct {
	Sentences int    `json:"sentences"`
	Dropped   int    `json:"dropped"`
	Words     int    `json:"words"`
	LastID    string `json:"last_id"`
}

type Pipeline struct {
	opts      Options
	segmenter sentence.Segmenter
	tokenizer tokenizer.Tokenizer
}

func New(lex lexicon.Lookup, abbr *abbrev.List, opts Options) *Pipeline {
	if opts.SentID == "" {
		opts.SentID = DefaultSentID
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	return &Pipeline{
		opts:      opts,
		segmenter: sentence.Segmenter{Abbrev: abbr, Replace: opts.Replace, Limit: opts.Limit},
		tokenizer: tokenizer.Tokenizer{Lexicon: lex, Abbrev: abbr},
	}
}

func (p *Pipeline) Options() Options {
	return p.opts
}

// Segment splits raw text into sentences.
func (p *Pipeline) Segment(txt string) []string {
	return p.segmenter.Segment(txt)
}

// Prepare applies headline trimming and punctuation normalization as
// configured. An empty result means the sentence is dropped.
func (p *Pipeline) Prepare(sent string) string {
	sent = strings.TrimSpace(sent)
	if sent == "" {
		return ""
	}
	if p.opts.Trim {
		sent = text.TrimHeadline(sent)
	}
	if p.opts.Match {
		sent = text.NormalizePunctuation(sent)
	}
	return sent
}

// Tokenize tokenizes one prepared sentence.
func (p *Pipeline) Tokenize(sent string) []tokenizer.Token {
	return p.tokenizer.Tokenize(sent)
}

// Process prepares and tokenizes sentences in parallel. Results keep the input
// order and every input consumes one identifier, dropped or not. It stops
// with the context error when ctx is done before every sentence is handled.
func (p *Pipeline) Process(ctx context.Context, sentences []string) ([]Sentence, error) {
	res := make([]Sentence, len(sentences))
	id := p.opts.SentID
	for i, input := range sentences {
		id = conllu.NextID(id, p.opts.IDMode)
		res[i] = Sentence{ID: id, Input: input}
	}

	log.Debug().Int("sentences", len(sentences)).Int("workers", p.opts.Workers).Msg("processing sentences")
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.Workers)
	for i := range res {
		if ctx.Err() != nil {
			break
		}
		s := &res[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s.Text = p.Prepare(s.Input)
			if !s.Dropped() {
				s.Tokens = p.tokenizer.Tokenize(s.Text)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// WriteCoNLLU processes sentences and writes them as one CoNLL-U document.
// The document header is skipped when docID is empty.
func (p *Pipeline) WriteCoNLLU(ctx context.Context, w io.Writer, docID string, sentences []string) (Summary, error) {
	var summary Summary
	processed, err := p.Process(ctx, sentences)
	if err != nil {
		return summary, err
	}

	cw := conllu.NewWriter(w)
	if docID != "" {
		if err := cw.WriteDocHeader(docID); err != nil {
			return summary, err
		}
	}
	for _, s := range processed {
		summary.LastID = s.ID
		if s.Dropped() {
			summary.Dropped++
			continue
		}
		words, err := cw.WriteSentence(s.ID, s.Text, s.Tokens)
		if err != nil {
			return summary, err
		}
		summary.Sentences++
		summary.Words += words
	}
	return summary, nil
}

// ReadLines returns the lines of r without their line endings.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 64*1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	return lines, scanner.Err()
}
