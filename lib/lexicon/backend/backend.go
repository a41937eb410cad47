// Package backend opens the lexicon and abbreviation list a binary is
// configured with.
package backend

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib"
	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib/abbrev"
	rcache "gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib/cache/remote"
	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib/lexicon"
	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib/lexicon/remote"
)

var ReadyInterval = 10 * time.Second

// Open returns the lexicon selected by conf.Backend: the files under conf.Dir
// loaded in memory, or the redis db described by redisConf.
func Open(ctx context.Context, conf lib.LexiconConfig, redisConf lib.RedisConfig) (lexicon.Lookup, error) {
	switch conf.Backend {
	case lib.LocalLexiconBackend, "":
		lex, err := lexicon.Load(conf.Dir)
		if err != nil {
			return nil, err
		}
		return lex, nil
	case lib.RedisLexiconBackend:
		client := rcache.NewRedisClient(redisConf)
		if err := WaitReady(ctx, client); err != nil {
			return nil, err
		}
		return remote.New(client), nil
	default:
		return nil, fmt.Errorf("invalid lexicon backend %q", conf.Backend)
	}
}

// WaitReady blocks until client answers or ctx is done.
func WaitReady(ctx context.Context, client rcache.Client) error {
	for !client.Ready() {
		log.Info().Msg("database is not ready, waiting...")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(ReadyInterval):
		}
	}
	return nil
}

// Abbreviations loads the list at path, or the built-in list when path is empty.
func Abbreviations(path string) (*abbrev.List, error) {
	if path == "" {
		return abbrev.Default(), nil
	}
	return abbrev.Load(path)
}
