package conllu

import "fmt"

// IDMode selects how NextID treats a literal prefix reached by a carry.
type IDMode int

const (
	// ModePreserve keeps the prefix and widens the number: S9999 gives S10000.
	ModePreserve IDMode = iota
	// ModeLegacy replaces the prefix character with the carry: S9999 gives 10000.
	ModeLegacy
)

var idModes = map[string]IDMode{
	"":         ModePreserve,
	"preserve": ModePreserve,
	"legacy":   ModeLegacy,
}

// ParseIDMode parses "preserve" or "legacy". An empty string is ModePreserve.
func ParseIDMode(s string) (IDMode, error) {
	mode, ok := idModes[s]
	if !ok {
		return ModePreserve, fmt.Errorf("unknown sentence id mode %q", s)
	}
	return mode, nil
}

func (m IDMode) String() string {
	if m == ModeLegacy {
		return "legacy"
	}
	return "preserve"
}

// NextID increments a sentence identifier such as S0041 by one, carrying from
// the rightmost digit. When every character is a carried 9 the result is
// "overflow" followed by the zeros: 9999 gives overflow0000.
func NextID(id string, mode IDMode) string {
	r := []rune(id)
	for i := len(r) - 1; i >= 0; i-- {
		switch c := r[i]; {
		case c == '9':
			r[i] = '0'
		case c >= '0' && c <= '8':
			r[i]++
			return string(r)
		case mode == ModeLegacy:
			return string(r[:i]) + "1" + string(r[i+1:])
		default:
			return string(r[:i+1]) + "1" + string(r[i+1:])
		}
	}
	return "overflow" + string(r)
}
