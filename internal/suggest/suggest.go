// Package suggest implements the autosuggest engine: filtering the title
// catalog by a typed query, locating the highlighted match, and the
// keyboard focus that walks the resulting list.
//
// Nothing here knows about the terminal; the UI maps Suggestion values and
// the focus index onto rendered rows.
package suggest

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// DefaultMinQuery is the shortest trimmed query that produces suggestions
	DefaultMinQuery = 2
	// DefaultMaxResults caps the number of suggestions
	DefaultMaxResults = 8
)

// Suggestion is a catalog title that matched the query.
// MatchStart and MatchEnd are byte offsets of the first match in Text.
type Suggestion struct {
	Text       string
	MatchStart int
	MatchEnd   int
}

// Parts splits the title around the highlighted match
func (s Suggestion) Parts() (prefix, match, suffix string) {
	return s.Text[:s.MatchStart], s.Text[s.MatchStart:s.MatchEnd], s.Text[s.MatchEnd:]
}

// Engine filters a catalog. The zero value uses the defaults.
type Engine struct {
	MinQuery   int
	MaxResults int
}

// Default is the engine with the standard limits
var Default = Engine{MinQuery: DefaultMinQuery, MaxResults: DefaultMaxResults}

// Suggest runs the default engine
func Suggest(query string, catalog []string) []Suggestion {
	return Default.Suggest(query, catalog)
}

// Suggest returns the catalog entries containing the trimmed query,
// case-insensitively, in catalog order and capped at MaxResults.
// The catalog is never modified.
func (e Engine) Suggest(query string, catalog []string) []Suggestion {
	minQuery, maxResults := e.limits()

	q := strings.TrimSpace(query)
	if utf8.RuneCountInString(q) < minQuery {
		return nil
	}

	var out []Suggestion
	for _, title := range catalog {
		start, end, ok := indexFold(title, q)
		if !ok {
			continue
		}
		out = append(out, Suggestion{Text: title, MatchStart: start, MatchEnd: end})
		if len(out) == maxResults {
			break
		}
	}
	return out
}

func (e Engine) limits() (int, int) {
	minQuery, maxResults := e.MinQuery, e.MaxResults
	if minQuery <= 0 {
		minQuery = DefaultMinQuery
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	return minQuery, maxResults
}

// indexFold finds the first occurrence of sub in s ignoring case.
// It compares rune by rune so the returned offsets are valid in s even when
// lower-casing would change byte lengths.
func indexFold(s, sub string) (start, end int, ok bool) {
	if sub == "" {
		return 0, 0, true
	}
	for i := range s {
		if j, matched := hasPrefixFold(s[i:], sub); matched {
			return i, i + j, true
		}
	}
	return 0, 0, false
}

// hasPrefixFold reports whether s starts with prefix ignoring case and how many bytes of s matched
func hasPrefixFold(s, prefix string) (int, bool) {
	n := 0
	for _, pr := range prefix {
		if n >= len(s) {
			return 0, false
		}
		sr, size := utf8.DecodeRuneInString(s[n:])
		if unicode.ToLower(sr) != unicode.ToLower(pr) {
			return 0, false
		}
		n += size
	}
	return n, true
}
