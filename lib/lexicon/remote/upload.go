package remote

import (
	"encoding/json"
	"strings"

	rcache "gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib/cache/remote"
	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib/lexicon"
)

// Upload writes every word of lex to client: one tags key per word and one
// entries key per (word, tag). Pipelines are executed every pipelineSize keys.
// It returns the number of keys written.
func Upload(lex *lexicon.Lexicon, client rcache.Client, pipelineSize int) (int, error) {
	if pipelineSize <= 0 {
		pipelineSize = DefaultPipelineSize
	}
	written := 0
	pipe := client.NewSetPipeline(pipelineSize)
	set := func(key string, data []byte) error {
		pipe.Set(key, data)
		if pipe.Size() < pipelineSize {
			return nil
		}
		if err := pipe.ExecSet(); err != nil {
			return err
		}
		written += pipe.Size()
		pipe = client.NewSetPipeline(pipelineSize)
		return nil
	}

	err := lex.Each(func(word string, tags []lexicon.Tag, entries []lexicon.Entry) error {
		names := make([]string, len(tags))
		for i, tag := range tags {
			names[i] = string(tag)
		}
		if err := set(TagsKey(word), []byte(strings.Join(names, " "))); err != nil {
			return err
		}

		byTag := make(map[lexicon.Tag][]storedEntry, len(tags))
		for _, e := range entries {
			byTag[e.Tag] = append(byTag[e.Tag], storedEntry{Lemma: e.Lemma, Features: e.Features.String()})
		}
		for _, tag := range tags {
			b, err := json.Marshal(byTag[tag])
			if err != nil {
				return err
			}
			if err := set(EntriesKey(tag, word), b); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return written, err
	}

	if pipe.Size() > 0 {
		if err := pipe.ExecSet(); err != nil {
			return written, err
		}
		written += pipe.Size()
	}
	return written, nil
}
