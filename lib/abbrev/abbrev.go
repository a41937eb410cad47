// Package abbrev holds the abbreviation list that keeps a trailing period
// from ending a sentence or being split off a token.
package abbrev

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"
)

//go:embed abbrev.txt
var defaultList string

// List is an ordered set of abbreviations such as "Sr." or "etc.".
type List struct {
	items []string
}

// Default returns the built-in Portuguese abbreviation list.
func Default() *List {
	l, err := Read(strings.NewReader(defaultList))
	if err != nil {
		panic(err)
	}
	return l
}

// Load reads an abbreviation file with one literal string per line.
func Load(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open abbreviations: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses one abbreviation per line, skipping blank lines.
func Read(r io.Reader) (*List, error) {
	l := &List{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		l.items = append(l.items, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read abbreviations: %w", err)
	}
	return l, nil
}

// Len is the number of abbreviations in the list.
func (l *List) Len() int {
	return len(l.items)
}

// Match reports whether chunk is a listed abbreviation, or ends with one
// that is preceded by a non-letter (so "(Sr." matches "Sr." but "Mr." does not match "r.").
func (l *List) Match(chunk string) bool {
	if l == nil {
		return false
	}
	for _, a := range l.items {
		if chunk == a {
			return true
		}
		if len(chunk) > len(a) && strings.HasSuffix(chunk, a) {
			r, _ := utf8.DecodeLastRuneInString(chunk[:len(chunk)-len(a)])
			if !unicode.IsLetter(r) {
				return true
			}
		}
	}
	return false
}
