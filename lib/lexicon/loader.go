package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// MasterFileName is the file mapping each word to its tags.
const MasterFileName = "WORDmaster.txt"

// ParseError reports a malformed line of a lexicon file.
type ParseError struct {
	File string
	Line int
	Msg  string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Msg)
}

// MissingEntriesError reports a master file pair with no entry in its tag file.
type MissingEntriesError struct {
	Word string
	Tag  Tag
}

func (e MissingEntriesError) Error() string {
	return fmt.Sprintf("word %q is tagged %s in %s but has no entry in %s", e.Word, e.Tag, MasterFileName, e.Tag.FileName())
}

// Load reads the master file and the twelve tag files from dir.
func Load(dir string) (*Lexicon, error) {
	master, err := os.Open(filepath.Join(dir, MasterFileName))
	if err != nil {
		return nil, fmt.Errorf("open lexicon master: %w", err)
	}
	defer master.Close()

	tagFiles := make(map[Tag]io.Reader, len(Tags))
	for _, tag := range Tags {
		f, err := os.Open(filepath.Join(dir, tag.FileName()))
		if err != nil {
			return nil, fmt.Errorf("open lexicon tag file: %w", err)
		}
		defer f.Close()
		tagFiles[tag] = f
	}

	lex, err := Read(master, tagFiles)
	if err != nil {
		return nil, err
	}
	logStats(lex)
	return lex, nil
}

// Read builds a Lexicon from the master file and one reader per tag.
// Every tag must be present in tagFiles.
func Read(master io.Reader, tagFiles map[Tag]io.Reader) (*Lexicon, error) {
	l := newLexicon()
	if err := l.readMaster(master); err != nil {
		return nil, err
	}
	for _, tag := range Tags {
		r, ok := tagFiles[tag]
		if !ok {
			return nil, fmt.Errorf("missing lexicon tag file %s", tag.FileName())
		}
		if err := l.readTag(tag, r); err != nil {
			return nil, err
		}
	}
	for word, tags := range l.master {
		for _, tag := range tags {
			if !l.HasTag(word, tag) {
				return nil, MissingEntriesError{Word: word, Tag: tag}
			}
		}
	}
	return l, nil
}

// readMaster parses lines of the form "word,TAG1 TAG2".
func (l *Lexicon) readMaster(r io.Reader) error {
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		word, rest, ok := strings.Cut(line, ",")
		if !ok || word == "" || rest == "" || strings.Contains(rest, ",") {
			return ParseError{File: MasterFileName, Line: n, Msg: "expected word,TAGS"}
		}
		var tags []Tag
		for _, name := range strings.Split(rest, " ") {
			tag, err := ParseTag(name)
			if err != nil {
				return ParseError{File: MasterFileName, Line: n, Msg: err.Error()}
			}
			tags = append(tags, tag)
		}
		l.master[word] = tags
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read %s: %w", MasterFileName, err)
	}
	return nil
}

// readTag parses lines of the form "word<TAB>lemma<TAB>features".
func (l *Lexicon) readTag(tag Tag, r io.Reader) error {
	entries := l.byTag[tag.index()]
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		cols := strings.Split(line, "\t")
		if len(cols) != 3 {
			return ParseError{File: tag.FileName(), Line: n, Msg: fmt.Sprintf("expected 3 columns, got %d", len(cols))}
		}
		feats, err := ParseFeatures(cols[2])
		if err != nil {
			return ParseError{File: tag.FileName(), Line: n, Msg: err.Error()}
		}
		entries[cols[0]] = append(entries[cols[0]], Entry{Lemma: cols[1], Tag: tag, Features: feats})
		l.entries++
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read %s: %w", tag.FileName(), err)
	}
	return nil
}

func logStats(l *Lexicon) {
	for _, s := range l.Stats() {
		log.Debug().
			Str("tag", string(s.Tag)).
			Int("words", s.Words).
			Int("ambiguous", s.Ambiguous).
			Int("non_ambiguous", s.NonAmbiguous).
			Int("entries", s.Entries).
			Msg("lexicon tag")
	}
	log.Info().Int("words", l.Words()).Int("entries", l.Entries()).Msg("lexicon loaded")
}
