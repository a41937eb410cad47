package lexicon

import (
	"fmt"
	"sort"
	"strings"
)

// Features holds the morphological attributes of an entry, e.g. Number -> Plur.
// Multi-valued attributes keep their raw comma-joined value.
type Features map[string]string

// ParseFeatures parses a UD feature string such as "Gender=Masc|Number=Sing".
// "_" and "" yield empty features.
func ParseFeatures(s string) (Features, error) {
	feats := Features{}
	if s == "" || s == "_" {
		return feats, nil
	}
	for _, item := range strings.Split(s, "|") {
		name, value, ok := strings.Cut(item, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("malformed feature %q", item)
		}
		feats[name] = value
	}
	return feats, nil
}

// Has reports whether attribute name carries value.
func (f Features) Has(name, value string) bool {
	v, ok := f[name]
	if !ok {
		return false
	}
	for _, one := range strings.Split(v, ",") {
		if one == value {
			return true
		}
	}
	return false
}

func (f Features) String() string {
	if len(f) == 0 {
		return "_"
	}
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)
	items := make([]string, len(names))
	for i, name := range names {
		items[i] = name + "=" + f[name]
	}
	return strings.Join(items, "|")
}
