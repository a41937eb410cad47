package tokenizer

// Token is one surface token of a sentence. A multiword token (a contraction,
// enclisis or mesoclisis) lists the syntactic words it splits into; Words is
// empty for an ordinary token.
type Token struct {
	Form       string   `json:"form"`
	SpaceAfter bool     `json:"space_after"`
	Words      []string `json:"words,omitempty"`
}

// IsMultiword reports whether the token splits into several syntactic words.
func (t Token) IsMultiword() bool {
	return len(t.Words) > 0
}

// CountWords returns the number of syntactic words of tokens, that is the
// number of numbered rows they produce.
func CountWords(tokens []Token) int {
	n := 0
	for _, t := range tokens {
		if t.IsMultiword() {
			n += len(t.Words)
		} else {
			n++
		}
	}
	return n
}
