package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUpper(t *testing.T) {
	for _, test := range []struct {
		in    string
		upper bool
	}{
		{"CRONOLOGIA", true},
		{"S.A.", true},
		{"À", true},
		{"Casa", false},
		{"123", false},
		{"", false},
		{"(BELO", true},
	} {
		assert.Equal(t, test.upper, IsUpper(test.in), test.in)
	}
}

func TestStripWord(t *testing.T) {
	assert.Equal(t, "casa", StripWord(`"Casa,`))
	assert.Equal(t, "d", StripWord("d'água"))
	assert.Equal(t, "ação", StripWord("(Ação)"))
	assert.Equal(t, "", StripWord("123"))
	assert.Equal(t, "", StripWord(""))
}

func TestMatchCase(t *testing.T) {
	words := []string{"de", "o"}
	assert.Equal(t, []string{"DE", "O"}, MatchCase("DO", words))
	assert.Equal(t, []string{"De", "o"}, MatchCase("Do", words))
	assert.Equal(t, []string{"de", "o"}, MatchCase("do", words))
	assert.Equal(t, []string{"A", "a"}, MatchCase("À", []string{"a", "a"}))
	assert.Equal(t, []string{"a", "a"}, MatchCase("à", []string{"a", "a"}))
}

func TestNormalizePunctuation(t *testing.T) {
	for _, test := range []struct {
		name string
		in   string
		out  string
	}{
		{"wrapping quotes are dropped", `"Ele chegou."`, "Ele chegou."},
		{"wrapping parentheses are dropped", "(Ele chegou)", "Ele chegou."},
		{"inner balanced quotes stay", `Ele disse "sim" ontem.`, `Ele disse "sim" ontem.`},
		{"odd quotes are deleted", `Ele disse "sim ontem.`, "Ele disse sim ontem."},
		{"unbalanced brackets are deleted", "Ele (chegou ontem.", "Ele chegou ontem."},
		{"missing period is appended", "Isso é ótimo", "Isso é ótimo."},
		{"double period is reduced", "Fim..", "Fim."},
		{"ellipsis is kept", "Fim...", "Fim..."},
		{"colon period is reduced", "Veja:.", "Veja."},
		{"punctuation moves before closing quote", `Ele disse "sim."`, `Ele disse "sim".`},
		{"punctuation moves before closing bracket", "Ele veio (ontem!)", "Ele veio (ontem)!"},
		{"question mark is terminal", "Vem?", "Vem?"},
		{"double spaces are collapsed", "Ele   veio.", "Ele veio."},
		{"no letters drops the sentence", "... !!", ""},
		{"empty input", "", ""},
	} {
		assert.Equal(t, test.out, NormalizePunctuation(test.in), test.name)
	}
}

func TestNormalizePunctuationIsIdempotent(t *testing.T) {
	for _, in := range []string{
		`"Ele chegou."`,
		"a:..",
		"a.:.",
		`x "a.."`,
		"(y x..)",
		"a (b..)",
		"Ele  veio )",
		`"a" b"`,
		"([texto])",
		"d'água é boa",
		"Fim....",
	} {
		once := NormalizePunctuation(in)
		if once == "" {
			continue
		}
		assert.Equal(t, once, NormalizePunctuation(once), in)
	}
}

func TestTrimHeadline(t *testing.T) {
	for _, test := range []struct {
		name string
		in   string
		out  string
	}{
		{"bullet is removed", "* Ele chegou.", "Ele chegou."},
		{"lone bullet", "★", ""},
		{"empty", "   ", ""},
		{"dateline is removed", "(BELO HORIZONTE) O prefeito chegou.", "O prefeito chegou."},
		{"closed parenthesis at the end keeps the dateline", "(Ele chegou)", "(Ele chegou)"},
		{"headline before a capitalized word", "CRONOLOGIA Em 1990 tudo mudou.", "Em 1990 tudo mudou."},
		{"headline before a lower case word is kept", "CRONOLOGIA o evento.", "CRONOLOGIA o evento."},
		{"multi word headline", "BELO HORIZONTE Ontem choveu.", "Ontem choveu."},
		{"single letter article is not a headline", "A casa caiu.", "A casa caiu."},
		{"plain sentence", "Ele chegou cedo.", "Ele chegou cedo."},
		{"extra spaces are dropped", " Ele  chegou. ", "Ele chegou."},
	} {
		assert.Equal(t, test.out, TrimHeadline(test.in), test.name)
	}
}
