// Package remote serves the lexicon from redis, for deployments where every
// worker should not load the full lexicon files into memory.
package remote

import (
	"encoding/json"
	"strings"

	"github.com/rs/zerolog/log"
	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib/cache"
	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib/cache/local"
	rcache "gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib/cache/remote"
	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib/lexicon"
)

const DefaultPipelineSize = 10000

// TagsKey holds the space separated tags of word.
func TagsKey(word string) string {
	return cache.Key("tags", word)
}

// EntriesKey holds the JSON encoded entries of word for tag.
func EntriesKey(tag lexicon.Tag, word string) string {
	return cache.Key(string(tag), word)
}

type storedEntry struct {
	Lemma    string `json:"lemma"`
	Features string `json:"features"`
}

// Lexicon implements lexicon.Lookup over a remote store filled by Upload.
// Every value read, and every miss, is kept in a local cache for the life of
// the Lexicon. Backend errors are logged and answered as absence.
type Lexicon struct {
	client rcache.Client
	local  local.Client
}

func New(client rcache.Client) *Lexicon {
	return &Lexicon{
		client: client,
		local:  local.New(),
	}
}

// fetch returns the value of each key, nil when absent. Keys missing from the
// local cache are read in a single pipeline.
func (l *Lexicon) fetch(keys ...string) map[string][]byte {
	res := make(map[string][]byte, len(keys))
	var pipe rcache.GetPipeline
	for _, key := range keys {
		if data, ok := l.local.Get(key); ok {
			res[key] = data
			continue
		}
		if pipe == nil {
			pipe = l.client.NewGetPipeline(len(keys))
		}
		pipe.Get(key)
	}
	if pipe == nil {
		return res
	}

	err := pipe.ExecGet(func(key string, data []byte) error {
		l.local.Set(key, data)
		res[key] = data
		return nil
	})
	if err != nil {
		log.Error().Err(err).Strs("keys", keys).Msg("lexicon lookup failed")
	}
	return res
}

func (l *Lexicon) Exists(word string) bool {
	return len(l.Tags(word)) > 0
}

func (l *Lexicon) Tags(word string) []lexicon.Tag {
	key := TagsKey(word)
	data := l.fetch(key)[key]
	if data == nil {
		return nil
	}
	var tags []lexicon.Tag
	for _, field := range strings.Fields(string(data)) {
		tag, err := lexicon.ParseTag(field)
		if err != nil {
			log.Warn().Err(err).Str("word", word).Msg("skipping stored tag")
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}

func (l *Lexicon) HasTag(word string, tag lexicon.Tag) bool {
	for _, t := range l.Tags(word) {
		if t == tag {
			return true
		}
	}
	return false
}

func (l *Lexicon) GetTag(word string, tag lexicon.Tag) []lexicon.Entry {
	key := EntriesKey(tag, word)
	return decode(word, tag, l.fetch(key)[key])
}

func (l *Lexicon) Get(word string) []lexicon.Entry {
	tags := l.Tags(word)
	if len(tags) == 0 {
		return nil
	}
	keys := make([]string, len(tags))
	for i, tag := range tags {
		keys[i] = EntriesKey(tag, word)
	}
	values := l.fetch(keys...)

	var res []lexicon.Entry
	for i, tag := range tags {
		res = append(res, decode(word, tag, values[keys[i]])...)
	}
	return res
}

func decode(word string, tag lexicon.Tag, data []byte) []lexicon.Entry {
	if data == nil {
		return nil
	}
	var stored []storedEntry
	if err := json.Unmarshal(data, &stored); err != nil {
		log.Error().Err(err).Str("word", word).Str("tag", string(tag)).Msg("corrupt lexicon entry")
		return nil
	}
	res := make([]lexicon.Entry, 0, len(stored))
	for _, s := range stored {
		feats, err := lexicon.ParseFeatures(s.Features)
		if err != nil {
			log.Error().Err(err).Str("word", word).Str("tag", string(tag)).Msg("corrupt lexicon entry")
			continue
		}
		res = append(res, lexicon.Entry{Lemma: s.Lemma, Tag: tag, Features: feats})
	}
	return res
}
