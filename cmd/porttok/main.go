package main

import (
	"bufio"
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib"
	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib/conllu"
	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib/lexicon/backend"
	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib/pipeline"
)

// config structure
type porttokConfig struct {
	lib.BaseConfig `mapstructure:",squash"`
	Output         string
	Match          bool
	Trim           bool
	Sid            string
	SidMode        string `mapstructure:"sid_mode"`
	DocID          string `mapstructure:"doc_id"`
	Workers        int
	Segment        bool
	Replace        bool
	Limit          int
	InputFormat    string `mapstructure:"input_format"`
	Abbreviations  string
	Lexicon        lib.LexiconConfig
	Redis          lib.RedisConfig
}

var config porttokConfig

func initConfig() {
	pflag.StringP("output", "o", "sents.conllu", "CoNLL-U output file, - for stdout.")
	pflag.BoolP("match", "m", false, "Fix paired punctuation (quotes, brackets) and terminal punctuation.")
	pflag.BoolP("trim", "t", false, "Remove headlines glued to the start of sentences.")
	pflag.StringP("sid", "s", pipeline.DefaultSentID, "Sentence id preceding the first sentence.")
	pflag.String("sid_mode", conllu.ModePreserve.String(), "Sentence id increment: preserve or legacy.")
	pflag.String("doc_id", "", "Document id of the newdoc header, the output file name when empty.")
	pflag.Int("workers", 0, "Sentences tokenized in parallel, one per CPU when 0.")
	pflag.Bool("segment", false, "Segment the input into sentences instead of reading one sentence per line.")
	pflag.BoolP("replace", "r", false, "Replace non standard characters when segmenting.")
	pflag.IntP("limit", "l", 0, "Maximum sentence length when segmenting, 0 for no limit.")
	pflag.String("input_format", string(pipeline.TextInput), "Format of a segmented input: text or html.")
	pflag.String("abbreviations", "", "Abbreviation file, the built-in list when empty.")

	// initialise config with defaults.
	err := lib.InitializeConfig("./config/porttok.yml", map[string]interface{}{
		"log_level":    "info",
		"output":       "sents.conllu",
		"sid":          pipeline.DefaultSentID,
		"sid_mode":     conllu.ModePreserve.String(),
		"input_format": pipeline.TextInput,
		"lexicon": map[string]interface{}{
			"backend": lib.LocalLexiconBackend,
			"dir":     "./lexicon",
		},
		"redis": map[string]interface{}{
			"host": "localhost",
			"port": 6379,
		},
	}, &config)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}

func main() {
	initConfig()
	ctx, cancel := lib.InterruptContext(context.Background())
	defer cancel()

	input := "sents.txt"
	if args := pflag.Args(); len(args) > 0 {
		input = args[0]
	}

	mode, err := conllu.ParseIDMode(config.SidMode)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
	format, err := pipeline.ParseInputFormat(config.InputFormat)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
	abbr, err := backend.Abbreviations(config.Abbreviations)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
	lex, err := backend.Open(ctx, config.Lexicon, config.Redis)
	if err != nil {
		log.Fatal().Err(err).Send()
	}

	p := pipeline.New(lex, abbr, pipeline.Options{
		Replace: config.Replace,
		Limit:   config.Limit,
		Match:   config.Match,
		Trim:    config.Trim,
		SentID:  config.Sid,
		IDMode:  mode,
		Workers: config.Workers,
	})

	f, err := os.Open(input)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
	sentences, err := readSentences(p, f, config.Segment, format)
	_ = f.Close()
	if err != nil {
		log.Fatal().Err(err).Str("input", input).Send()
	}

	summary, err := writeOutput(ctx, p, config.Output, docID(config.DocID, config.Output), sentences)
	if err != nil {
		log.Fatal().Err(err).Str("output", config.Output).Send()
	}
	log.Info().
		Int("sentences", summary.Sentences).
		Int("dropped", summary.Dropped).
		Int("words", summary.Words).
		Str("last_id", summary.LastID).
		Str("output", config.Output).
		Msg("tokenization finished")
}

// readSentences returns one sentence per line of r, or the sentences found
// by the segmenter when segment is set.
func readSentences(p *pipeline.Pipeline, r io.Reader, segment bool, format pipeline.InputFormat) ([]string, error) {
	if !segment {
		return pipeline.ReadLines(r)
	}
	texts, err := pipeline.ReadTexts(r, format)
	if err != nil {
		return nil, err
	}
	return p.SegmentAll(texts), nil
}

func docID(configured, output string) string {
	if configured != "" {
		return configured
	}
	if output == "-" {
		return "stdout"
	}
	return filepath.Base(output)
}

func writeOutput(ctx context.Context, p *pipeline.Pipeline, path, doc string, sentences []string) (pipeline.Summary, error) {
	if path == "-" {
		w := bufio.NewWriter(os.Stdout)
		summary, err := p.WriteCoNLLU(ctx, w, doc, sentences)
		if err != nil {
			return summary, err
		}
		return summary, w.Flush()
	}

	f, err := os.Create(path)
	if err != nil {
		return pipeline.Summary{}, err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	summary, err := p.WriteCoNLLU(ctx, w, doc, sentences)
	if err != nil {
		return summary, err
	}
	if err := w.Flush(); err != nil {
		return summary, err
	}
	return summary, f.Close()
}
