// Package lexicon serves read-only word lookups over the PortiLexicon-UD
// files: a master file mapping each word to its tags and one entry file per tag.
package lexicon

// Entry is one (lemma, tag, features) reading of a word.
type Entry struct {
	Lemma    string   `json:"lemma"`
	Tag      Tag      `json:"tag"`
	Features Features `json:"features"`
}

// Lookup is the read-only view of a lexicon shared by the tokenizer.
// Lookups are exact string matches; callers fold case before asking.
// Absence is never an error: it yields false or an empty result.
type Lookup interface {
	Exists(word string) bool
	Tags(word string) []Tag
	Get(word string) []Entry
	GetTag(word string, tag Tag) []Entry
	HasTag(word string, tag Tag) bool
}

// Lexicon is the in-memory lexicon. It is filled once by Read or Load
// and never mutated afterwards, so it may be shared between goroutines.
type Lexicon struct {
	master  map[string][]Tag
	byTag   [12]map[string][]Entry
	entries int
}

func newLexicon() *Lexicon {
	l := &Lexicon{master: map[string][]Tag{}}
	for i := range l.byTag {
		l.byTag[i] = map[string][]Entry{}
	}
	return l
}

func (l *Lexicon) Exists(word string) bool {
	_, ok := l.master[word]
	return ok
}

// Tags returns a copy of the tags of word in master file order.
func (l *Lexicon) Tags(word string) []Tag {
	return append([]Tag(nil), l.master[word]...)
}

// Get returns every entry of word, tag by tag in master file order.
func (l *Lexicon) Get(word string) []Entry {
	var res []Entry
	for _, tag := range l.master[word] {
		res = append(res, l.byTag[tag.index()][word]...)
	}
	return res
}

// GetTag returns a copy of the entries of word for tag.
func (l *Lexicon) GetTag(word string, tag Tag) []Entry {
	return append([]Entry(nil), l.tagEntries(word, tag)...)
}

func (l *Lexicon) HasTag(word string, tag Tag) bool {
	return len(l.tagEntries(word, tag)) > 0
}

func (l *Lexicon) tagEntries(word string, tag Tag) []Entry {
	i := tag.index()
	if i < 0 {
		return nil
	}
	return l.byTag[i][word]
}

// Words is the number of distinct words in the master file.
func (l *Lexicon) Words() int {
	return len(l.master)
}

// Entries is the number of lines read from the tag files.
func (l *Lexicon) Entries() int {
	return l.entries
}

// Each calls fn for every word of the master file with its entries.
// Iteration order is unspecified.
func (l *Lexicon) Each(fn func(word string, tags []Tag, entries []Entry) error) error {
	for word, tags := range l.master {
		if err := fn(word, tags, l.Get(word)); err != nil {
			return err
		}
	}
	return nil
}

// TagStats is one row of the lexicon frequency table.
type TagStats struct {
	Tag          Tag
	Words        int
	Ambiguous    int
	NonAmbiguous int
	Entries      int
}

// Stats computes the per-tag frequency table: words carrying the tag,
// how many of those have other tags too, and entry lines for the tag.
func (l *Lexicon) Stats() []TagStats {
	stats := make([]TagStats, len(Tags))
	for i, tag := range Tags {
		stats[i].Tag = tag
		for _, entries := range l.byTag[i] {
			stats[i].Entries += len(entries)
		}
	}
	for _, tags := range l.master {
		for _, tag := range tags {
			stats[tag.index()].Words++
		}
		if len(tags) == 1 {
			stats[tags[0].index()].NonAmbiguous++
		}
	}
	for i := range stats {
		stats[i].Ambiguous = stats[i].Words - stats[i].NonAmbiguous
	}
	return stats
}
