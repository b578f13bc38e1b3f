// Package search filters text line by line for a substring.
//
// All entry points are pure: they read nothing but their arguments and never fail.
// Returned lines are substrings of contents with surrounding whitespace trimmed.
package search

import "strings"

// Match is a matching line together with its 1-based position in the contents.
type Match struct {
	Line int    `yaml:"line"`
	Text string `yaml:"text"`
}

// Matcher reports whether a single line matches a query.
type Matcher struct {
	query         string
	caseSensitive bool
}

// NewMatcher builds a matcher for query. A case-insensitive matcher lowercases the
// query once here and each candidate line on Match.
func NewMatcher(query string, caseSensitive bool) Matcher {
	if !caseSensitive {
		query = strings.ToLower(query)
	}
	return Matcher{query: query, caseSensitive: caseSensitive}
}

// Match reports whether line contains the query.
func (m Matcher) Match(line string) bool {
	if m.caseSensitive {
		return strings.Contains(line, m.query)
	}
	return strings.Contains(strings.ToLower(line), m.query)
}

// Search returns the trimmed lines of contents containing query, case-sensitively,
// in file order.
func Search(query, contents string) []string {
	return collect(NewMatcher(query, true), contents)
}

// SearchCaseInsensitive is Search with both query and lines lowercased before the
// containment test. The original line is returned, not its lowercased form.
func SearchCaseInsensitive(query, contents string) []string {
	return collect(NewMatcher(query, false), contents)
}

// Find is the numbered form of Search and SearchCaseInsensitive.
func Find(query, contents string, caseSensitive bool) []Match {
	m := NewMatcher(query, caseSensitive)
	var out []Match
	n := 0
	for line := range strings.Lines(contents) {
		n++
		line = stripEOL(line)
		if m.Match(line) {
			out = append(out, Match{Line: n, Text: strings.TrimSpace(line)})
		}
	}
	return out
}

func collect(m Matcher, contents string) []string {
	var out []string
	for line := range strings.Lines(contents) {
		line = stripEOL(line)
		if m.Match(line) {
			out = append(out, strings.TrimSpace(line))
		}
	}
	return out
}

// stripEOL drops the "\n" or "\r\n" terminator so it never takes part in matching.
func stripEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
