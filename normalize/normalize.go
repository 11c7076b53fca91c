// Package normalize canonicalizes fragments of the definition language so
// string comparison reflects semantic equality: whitespace, quote style,
// duration units, permission syntax, parenthesization and option-type
// aliases all collapse to one canonical form. Normalization is idempotent
// and is the only lens through which the diff engine computes equality.
package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

// Equal reports whether two definition-language fragments are semantically
// equal: both are normalized and then compared as strings.
func Equal(a, b string) bool {
	return String(a) == String(b)
}

// String applies the full normalization pipeline to a single fragment.
// Calling it twice produces the same result as calling it once.
func String(s string) string {
	s = collapseWhitespace(s)
	s = collapseOptionType(s)
	s = stripOuterQuotes(s)
	s = unbacktickNamespaces(s)
	s = singleQuoteBracketLiterals(s)
	s = collapseWhitespace(s)
	return s
}

var wsRe = regexp.MustCompile(`\s+`)

// collapseWhitespace collapses runs of whitespace to a single space and
// trims the result.
func collapseWhitespace(s string) string {
	return strings.TrimSpace(wsRe.ReplaceAllString(s, " "))
}

var (
	noneOrTRe = regexp.MustCompile(`(?i)\bnone\s*\|\s*([a-zA-Z0-9_<>:.\[\] ]+)`)
	tOrNoneRe = regexp.MustCompile(`(?i)\b([a-zA-Z0-9_<>:.\[\] ]+?)\s*\|\s*none\b`)
)

// collapseOptionType rewrites "none | T" and "T | none" to "option<T>", the
// canonical form, so the two historical spellings compare equal.
func collapseOptionType(s string) string {
	s = noneOrTRe.ReplaceAllString(s, "option<$1>")
	s = tOrNoneRe.ReplaceAllString(s, "option<$1>")
	return s
}

// stripOuterQuotes removes one layer of matching quotes around a whole
// literal default, e.g. "'draft'" and "draft" are compared as the same
// default only when both sides go through this rewrite identically — so
// this is a targeted helper, used by the field comparer rather than
// blindly by String (stripping quotes from an arbitrary fragment would
// change its meaning). It is exported for callers that know they're
// comparing a bare literal.
func StripOuterQuotes(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '\'' && last == '\'') || (first == '"' && last == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

func stripOuterQuotes(s string) string { return s }

var backtickNamespaceRe = regexp.MustCompile("`([a-zA-Z0-9_]+)`::")

// unbacktickNamespaces rewrites `` `rand` ``::x to rand::x.
func unbacktickNamespaces(s string) string {
	return backtickNamespaceRe.ReplaceAllString(s, "$1::")
}

var bracketLiteralRe = regexp.MustCompile(`\[([^\[\]]*)\]`)

// singleQuoteBracketLiterals rewrites ["a","b"] to ['a','b'] inside bracket
// literals so quote-style differences inside array defaults don't register
// as changes.
func singleQuoteBracketLiterals(s string) string {
	return bracketLiteralRe.ReplaceAllStringFunc(s, func(m string) string {
		return strings.ReplaceAll(m, `"`, `'`)
	})
}

// Duration canonicalizes a duration literal to days, the coarsest unit the
// definition language needs for session-length comparison. Supported units:
// y (365d), w (7d), d, h, m (minutes), s. Nw collapses to (N*7)d per spec.
func Duration(s string) string {
	s = strings.TrimSpace(s)
	re := regexp.MustCompile(`(?i)^(\d+)([ywdhms])$`)
	m := re.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return s
	}
	switch strings.ToLower(m[2]) {
	case "y":
		return strconv.Itoa(n*365) + "d"
	case "w":
		return strconv.Itoa(n*7) + "d"
	case "d":
		return strconv.Itoa(n) + "d"
	default:
		// Finer-grained units (h/m/s) are not collapsed into days; they
		// compare as-is, already normalized for whitespace.
		return m[1] + strings.ToLower(m[2])
	}
}

// DurationEqual compares two duration literals by their day-normalized
// form, per spec: "comparisons of scope session use conversion to days".
func DurationEqual(a, b string) bool {
	return Duration(strings.TrimSpace(a)) == Duration(strings.TrimSpace(b))
}

// CommentEqual treats null, undefined, empty and missing comments as
// equivalent to "no comment".
func CommentEqual(a, b string) bool {
	return normalizeComment(a) == normalizeComment(b)
}

func normalizeComment(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `'"`)
	switch strings.ToLower(s) {
	case "", "null", "undefined":
		return ""
	default:
		return s
	}
}
