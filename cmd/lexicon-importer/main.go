package main

import (
	"context"

	"github.com/rs/zerolog/log"
	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib"
	rcache "gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib/cache/remote"
	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib/lexicon"
	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib/lexicon/backend"
	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib/lexicon/remote"
)

// config structure
type lexiconImporterConfig struct {
	lib.BaseConfig `mapstructure:",squash"`
	Lexicon        lib.LexiconConfig
	PipelineSize   int `mapstructure:"pipeline_size"`
	Redis          lib.RedisConfig
}

var config lexiconImporterConfig

func initConfig() {
	// initialise config with defaults.
	err := lib.InitializeConfig("./config/lexicon-importer.yml", map[string]interface{}{
		"log_level":     "info",
		"pipeline_size": remote.DefaultPipelineSize,
		"lexicon": map[string]interface{}{
			"dir": "./lexicon",
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

	lex, err := lexicon.Load(config.Lexicon.Dir)
	if err != nil {
		log.Fatal().Err(err).Send()
	}

	client := rcache.NewRedisClient(config.Redis)
	if err := backend.WaitReady(ctx, client); err != nil {
		log.Fatal().Err(err).Send()
	}

	keys, err := remote.Upload(lex, client, config.PipelineSize)
	if err != nil {
		log.Fatal().Err(err).Int("keys", keys).Send()
	}
	log.Info().Int("words", lex.Words()).Int("keys", keys).Msg("lexicon imported")
}
