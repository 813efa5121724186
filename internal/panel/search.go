package panel

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/five82/fm/internal/bus"
)

type matcher func(name string) bool

func textMatcher(q bus.TextQuery) (matcher, error) {
	if q.Pattern == "" {
		return nil, errors.New("empty search pattern")
	}
	if q.Fuzzy {
		if q.CaseSensitive {
			return func(name string) bool { return fuzzy.Match(q.Pattern, name) }, nil
		}
		return func(name string) bool { return fuzzy.MatchFold(q.Pattern, name) }, nil
	}

	expr := q.Pattern
	if !q.Regex {
		expr = regexp.QuoteMeta(expr)
	}
	if q.WholeWords {
		expr = `\b(?:` + expr + `)\b`
	}
	if !q.CaseSensitive {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern: %w", err)
	}
	return re.MatchString, nil
}

func hexMatcher(q bus.HexQuery) (matcher, error) {
	if len(q.Bytes) == 0 {
		return nil, errors.New("empty byte sequence")
	}
	return func(name string) bool { return bytes.Contains([]byte(name), q.Bytes) }, nil
}

// find returns the next entry index matching m, starting after from and
// wrapping around. The entry at from is checked last.
func find(entries []Entry, from int, backwards bool, m matcher) (int, bool) {
	n := len(entries)
	step := 1
	if backwards {
		step = -1
	}
	for i := 1; i <= n; i++ {
		idx := ((from+step*i)%n + n) % n
		if entries[idx].Name == parentName {
			continue
		}
		if m(entries[idx].Name) {
			return idx, true
		}
	}
	return 0, false
}
