package main

import (
	"bufio"
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib"
	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib/lexicon/backend"
	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib/pipeline"
)

// config structure
type portsentConfig struct {
	lib.BaseConfig `mapstructure:",squash"`
	Output         string
	Replace        bool
	Limit          int
	InputFormat    string `mapstructure:"input_format"`
	Abbreviations  string
}

var config portsentConfig

func initConfig() {
	pflag.StringP("output", "o", "sents.txt", "File the sentences are written to, one per line.")
	pflag.BoolP("replace", "r", false, "Replace non standard characters (quotes, dashes, bullets) before segmenting.")
	pflag.IntP("limit", "l", 0, "Maximum sentence length in characters, 0 for no limit.")
	pflag.String("input_format", string(pipeline.TextInput), "Format of the input files: text or html.")
	pflag.String("abbreviations", "", "Abbreviation file, the built-in list when empty.")

	// initialise config with defaults.
	err := lib.InitializeConfig("./config/portsent.yml", map[string]interface{}{
		"log_level":    "info",
		"output":       "sents.txt",
		"replace":      false,
		"limit":        0,
		"input_format": pipeline.TextInput,
	}, &config)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}

func main() {
	initConfig()
	ctx, cancel := lib.InterruptContext(context.Background())
	defer cancel()

	format, err := pipeline.ParseInputFormat(config.InputFormat)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
	abbr, err := backend.Abbreviations(config.Abbreviations)
	if err != nil {
		log.Fatal().Err(err).Send()
	}

	texts := readInputs(pflag.Args(), format)
	if len(texts) == 0 {
		log.Fatal().Msg("no valid input file")
	}

	p := pipeline.New(nil, abbr, pipeline.Options{Replace: config.Replace, Limit: config.Limit})
	n, err := writeSentences(ctx, config.Output, p, texts)
	if err != nil {
		log.Fatal().Err(err).Str("output", config.Output).Send()
	}
	log.Info().Int("sentences", n).Str("output", config.Output).Msg("segmentation finished")
}

// readInputs reads every file that exists. Plain text files are concatenated
// into a single text; html files contribute one text per block.
func readInputs(files []string, format pipeline.InputFormat) []string {
	var texts []string
	var plain []byte
	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			log.Warn().Err(err).Str("file", path).Msg("input file ignored")
			continue
		}
		fileTexts, err := pipeline.ReadTexts(f, format)
		_ = f.Close()
		if err != nil {
			log.Warn().Err(err).Str("file", path).Msg("input file ignored")
			continue
		}
		if format == pipeline.TextInput {
			for _, txt := range fileTexts {
				plain = append(plain, txt...)
			}
			continue
		}
		texts = append(texts, fileTexts...)
	}
	if len(plain) > 0 {
		texts = append(texts, string(plain))
	}
	return texts
}

func writeSentences(ctx context.Context, path string, p *pipeline.Pipeline, texts []string) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	n := 0
	for _, txt := range texts {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		for _, sent := range p.Segment(txt) {
			if _, err := w.WriteString(sent + "\n"); err != nil {
				return n, err
			}
			n++
		}
	}
	if err := w.Flush(); err != nil {
		return n, err
	}
	return n, f.Close()
}
