package lib

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// text under these nodes is never collected
var disallowedNodes = map[string]struct{}{
	"audio":    {},
	"noscript": {},
	"script":   {},
	"style":    {},
	"textarea": {},
	"video":    {},
	"title":    {},
}

// inline nodes do not break the surrounding text into blocks
var nonBreakingNodes = map[string]struct{}{
	"span":   {},
	"sub":    {},
	"sup":    {},
	"b":      {},
	"del":    {},
	"i":      {},
	"em":     {},
	"ins":    {},
	"mark":   {},
	"q":      {},
	"s":      {},
	"strike": {},
	"strong": {},
	"u":      {},
	"big":    {},
	"small":  {},
	"a":      {},
	"abbr":   {},
	"cite":   {},
	"code":   {},
}

// void nodes have no end tag and no text
var voidNodes = map[string]struct{}{
	"area":   {},
	"base":   {},
	"col":    {},
	"embed":  {},
	"img":    {},
	"input":  {},
	"link":   {},
	"meta":   {},
	"param":  {},
	"source": {},
	"track":  {},
	"wbr":    {},
}

type htmlText struct {
	blocks     []string
	current    strings.Builder
	disallowed int
}

func (h *htmlText) flush() {
	if block := strings.TrimSpace(h.current.String()); block != "" {
		h.blocks = append(h.blocks, block)
	}
	h.current.Reset()
}

func (h *htmlText) start(name string) {
	if _, ok := disallowedNodes[name]; ok {
		h.disallowed++
		return
	}
	if _, ok := voidNodes[name]; ok {
		return
	}
	if _, ok := nonBreakingNodes[name]; !ok {
		h.flush()
	}
}

func (h *htmlText) end(name string) {
	if _, ok := disallowedNodes[name]; ok {
		if h.disallowed > 0 {
			h.disallowed--
		}
		return
	}
	if _, ok := nonBreakingNodes[name]; !ok {
		h.flush()
	}
}

// HtmlToText returns the text of an html document as blocks, one per block
// level element (paragraph, heading, list item, cell...). Inline elements are
// merged into the surrounding text and scripts, styles and media are skipped.
// Each block is meant to be segmented into sentences on its own.
func HtmlToText(r io.Reader) ([]string, error) {
	z := html.NewTokenizer(r)
	var h htmlText
	for {
		switch z.Next() {
		case html.ErrorToken:
			h.flush()
			if err := z.Err(); err != io.EOF {
				return h.blocks, err
			}
			return h.blocks, nil
		case html.TextToken:
			if h.disallowed == 0 {
				h.current.Write(z.Text())
			}
		case html.StartTagToken:
			name, _ := z.TagName()
			h.start(string(name))
		case html.EndTagToken:
			name, _ := z.TagName()
			h.end(string(name))
		case html.SelfClosingTagToken:
			name, _ := z.TagName()
			if _, ok := nonBreakingNodes[string(name)]; !ok {
				h.flush()
			}
		}
	}
}
