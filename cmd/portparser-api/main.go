package main

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib"
	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib/conllu"
	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib/lexicon/backend"
	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib/pipeline"
)

// config structure
type portparserAPIConfig struct {
	lib.BaseConfig `mapstructure:",squash"`
	Server         struct {
		HttpPort           int      `mapstructure:"http_port"`
		CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
	}
	Replace       bool
	Limit         int
	Workers       int
	SidMode       string `mapstructure:"sid_mode"`
	Abbreviations string
	Lexicon       lib.LexiconConfig
	Redis         lib.RedisConfig
}

var config portparserAPIConfig

func initConfig() {
	// Set default config values
	err := lib.InitializeConfig("./config/portparser-api.yml", map[string]interface{}{
		"log_level": "info",
		"server": map[string]interface{}{
			"http_port":            8080,
			"cors_allowed_origins": []string{"*"},
		},
		"sid_mode": conllu.ModePreserve.String(),
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

	mode, err := conllu.ParseIDMode(config.SidMode)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
	abbr, err := backend.Abbreviations(config.Abbreviations)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
	lex, err := backend.Open(context.Background(), config.Lexicon, config.Redis)
	if err != nil {
		log.Fatal().Err(err).Send()
	}

	if config.LogLevel != "debug" && config.LogLevel != "trace" {
		gin.SetMode(gin.ReleaseMode)
	}
	c := controller{
		lexicon: lex,
		abbrev:  abbr,
		defaults: pipeline.Options{
			Replace: config.Replace,
			Limit:   config.Limit,
			IDMode:  mode,
			Workers: config.Workers,
		},
	}
	r := newRouter(server{controller: c}, config.Server.CorsAllowedOrigins)

	log.Info().Int("port", config.Server.HttpPort).Msg("ready to accept requests")
	if err := r.Run(fmt.Sprintf(":%d", config.Server.HttpPort)); err != nil {
		log.Fatal().Err(err).Send()
	}
}
