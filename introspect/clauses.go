// Package introspect converts raw INFO FOR DB / INFO FOR TABLE responses —
// maps from entity name to definition-language statement string — into a
// normalized model.Schema. Per-entity parse failures are logged and the
// entity is skipped; the whole introspection never aborts because one
// definition string is malformed.
package introspect

import (
	"strings"
	"unicode"
)

// clauseScanner splits a definition-language statement body into top-level
// clauses delimited by keywords, honoring (), [], {} nesting and quoted
// strings — so a keyword appearing inside a function call, array literal
// or brace block is never mistaken for a clause boundary. This is the
// "regex-driven field-clause extraction with deterministic keyword-boundary
// rules" the introspection parser is built on (spec §4.1).
type clauseScanner struct {
	src      string
	keywords []string
}

// clauseSpan is one matched keyword and the raw text following it, up to
// (but not including) the next top-level keyword or the end of the string.
type clauseSpan struct {
	keyword string
	body    string
}

func newClauseScanner(src string, keywords []string) *clauseScanner {
	return &clauseScanner{src: src, keywords: keywords}
}

// scan returns every top-level clause found in src, in source order.
func (c *clauseScanner) scan() []clauseSpan {
	positions := c.topLevelKeywordPositions()
	var spans []clauseSpan
	for i, pos := range positions {
		end := len(c.src)
		if i+1 < len(positions) {
			end = positions[i+1].index
		}
		body := strings.TrimSpace(c.src[pos.index+len(pos.keyword) : end])
		spans = append(spans, clauseSpan{keyword: pos.keyword, body: body})
	}
	return spans
}

type keywordPosition struct {
	index   int
	keyword string
}

// topLevelKeywordPositions walks src tracking nesting depth and quote
// state, and records every position where one of c.keywords begins at
// depth 0 on a word boundary. <future> { ... } blocks are treated as
// opaque: once the scanner enters one it skips to the matching close
// brace without looking for keywords inside, since a VALUE clause may
// legitimately embed a future block containing words like "DEFAULT".
func (c *clauseScanner) topLevelKeywordPositions() []keywordPosition {
	var positions []keywordPosition
	depth := 0
	var quote rune
	runes := []rune(c.src)

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if quote != 0 {
			if r == quote && (i == 0 || runes[i-1] != '\\') {
				quote = 0
			}
			continue
		}

		switch r {
		case '\'', '"':
			quote = r
			continue
		case '(', '[', '{':
			depth++
			continue
		case ')', ']', '}':
			if depth > 0 {
				depth--
			}
			continue
		}

		if depth != 0 {
			continue
		}

		if !startsWordBoundary(runes, i) {
			continue
		}

		for _, kw := range c.keywords {
			if matchesKeywordAt(runes, i, kw) {
				positions = append(positions, keywordPosition{index: byteIndexOf(c.src, runes, i), keyword: kw})
				break
			}
		}
	}
	return positions
}

func startsWordBoundary(runes []rune, i int) bool {
	if i == 0 {
		return true
	}
	prev := runes[i-1]
	// A "$" prefix marks a variable such as $value, never a keyword.
	return !unicode.IsLetter(prev) && !unicode.IsDigit(prev) && prev != '_' && prev != '$'
}

// matchesKeywordAt reports whether kw (a possibly multi-word keyword such
// as "IF NOT EXISTS") occurs at rune index i, case-insensitively, followed
// by a word boundary.
func matchesKeywordAt(runes []rune, i int, kw string) bool {
	kwRunes := []rune(kw)
	if i+len(kwRunes) > len(runes) {
		return false
	}
	for j, kr := range kwRunes {
		rr := runes[i+j]
		if unicode.ToUpper(rr) != unicode.ToUpper(kr) && rr != kr {
			// allow internal spaces in multi-word keywords to match any
			// run of whitespace in the source
			if kr == ' ' {
				if !unicode.IsSpace(rr) {
					return false
				}
				continue
			}
			if unicode.ToUpper(rr) != unicode.ToUpper(kr) {
				return false
			}
		}
	}
	end := i + len(kwRunes)
	if end < len(runes) {
		next := runes[end]
		if unicode.IsLetter(next) || unicode.IsDigit(next) || next == '_' {
			return false
		}
	}
	return true
}

// byteIndexOf converts a rune index back to the corresponding byte offset
// in the original string.
func byteIndexOf(s string, runes []rune, runeIdx int) int {
	return len(string(runes[:runeIdx]))
}
