// Package seniority maps free-text job titles to numeric seniority scores.
package seniority

import (
	"strings"
	"unicode"
)

// Score bounds produced by the rule table.
const (
	MaxScore = 10
	MinScore = 3
)

// rule pairs title keywords with the score awarded on first match.
type rule struct {
	keywords []string
	score    float64
}

// Ordered rule table, checked top to bottom; the first matching rule wins.
// The vice-president rule sits above the president rule so "Vice President"
// does not score as a presidency.
var rules = []rule{
	{[]string{"vice president", "vp"}, 8},
	{[]string{"ceo", "chief executive", "president"}, 10},
	{[]string{"cfo", "cto", "coo"}, 9},
	{[]string{"director"}, 7},
	{[]string{"head of", "chief"}, 6},
	{[]string{"manager"}, 5},
	{[]string{"lead", "senior"}, 4},
}

// Score returns the seniority score for a title. Matching is case-insensitive;
// phrases match as substrings and short acronyms as whole words, so "cto" does
// not fire inside "Director" nor "coo" inside "Coordinator". Titles matching
// no rule score the entry-level minimum.
func Score(title string) float64 {
	t := strings.ToLower(title)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if matchKeyword(t, kw) {
				return r.score
			}
		}
	}
	return MinScore
}

func matchKeyword(t, kw string) bool {
	if len(kw) <= 3 {
		return hasWord(t, kw)
	}
	return strings.Contains(t, kw)
}

// hasWord reports whether w appears in t as a standalone word. Titles are
// split on anything that is not a letter or digit, so "CEO & Co-Founder"
// yields the words "ceo", "co", "founder".
func hasWord(t, w string) bool {
	for _, f := range strings.FieldsFunc(t, isWordSep) {
		if f == w {
			return true
		}
	}
	return false
}

func isWordSep(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// Level returns a human-readable seniority label for a title. It mirrors the
// labeling used by roster analysis: executives, senior leadership, mid-level
// management, then individual contributors.
func Level(title string) string {
	switch s := Score(title); {
	case s >= 9:
		return "Executive"
	case s >= 6:
		return "Senior Leadership"
	case s >= 4:
		return "Mid-Level Management"
	default:
		return "Individual Contributor"
	}
}
