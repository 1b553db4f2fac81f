// Package pattern matches text against patterns in which a wildcard rune
// stands for zero or more characters, like % in SQL LIKE.
package pattern

import (
	"strings"
)

// Pattern is a compiled wildcard pattern. Matching works on bytes, so
// neither the pattern nor the text needs to be valid UTF-8.
type Pattern struct {
	source string
	parts  []string
}

// Compile splits pattern around the wildcard. Every other character is
// matched literally.
func Compile(pattern string, wildcard rune) *Pattern {
	return &Pattern{pattern, strings.Split(pattern, string(wildcard))}
}

// Match reports whether s matches the whole pattern.
func (p *Pattern) Match(s string) bool {
	parts := p.parts
	if len(parts) == 1 {
		return s == parts[0]
	}
	first, last := parts[0], parts[len(parts)-1]
	if len(s) < len(first)+len(last) || !strings.HasPrefix(s, first) || !strings.HasSuffix(s, last) {
		return false
	}
	s = s[len(first) : len(s)-len(last)]
	// leftmost match of each inner part leaves the most room for the rest
	for _, part := range parts[1 : len(parts)-1] {
		i := strings.Index(s, part)
		if i < 0 {
			return false
		}
		s = s[i+len(part):]
	}
	return true
}

func (p *Pattern) String() string {
	return p.source
}

// HasWildcard reports whether s contains the wildcard rune.
func HasWildcard(s string, wildcard rune) bool {
	return strings.ContainsRune(s, wildcard)
}

// Matcher matches against patterns with a fixed wildcard rune, reusing
// the last compiled pattern while the pattern text stays the same.
type Matcher struct {
	wildcard rune
	last     *Pattern
}

func NewMatcher(wildcard rune) *Matcher {
	return &Matcher{wildcard: wildcard}
}

// Match reports whether s equals pattern, treating the wildcard rune in
// pattern as zero or more characters.
func (m *Matcher) Match(pattern, s string) bool {
	if !HasWildcard(pattern, m.wildcard) {
		return pattern == s
	}
	if m.last == nil || m.last.source != pattern {
		m.last = Compile(pattern, m.wildcard)
	}
	return m.last.Match(s)
}

// Wildcard returns the rune standing for any run of characters.
func (m *Matcher) Wildcard() rune {
	return m.wildcard
}
