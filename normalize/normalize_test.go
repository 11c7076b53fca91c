package normalize

import "testing"

func TestEqualWhitespace(t *testing.T) {
	if !Equal("TYPE  string   ASSERT $value", "TYPE string ASSERT $value") {
		t.Fatal("whitespace-only difference should compare equal")
	}
}

func TestEqualOptionType(t *testing.T) {
	cases := [][2]string{
		{"none | string", "option<string>"},
		{"string | none", "option<string>"},
	}
	for _, c := range cases {
		if !Equal(c[0], c[1]) {
			t.Errorf("%q and %q should be semantically equal", c[0], c[1])
		}
	}
}

func TestEqualBacktickedNamespace(t *testing.T) {
	if !Equal("`rand`::uuid()", "rand::uuid()") {
		t.Fatal("backticked namespace segment should normalize away")
	}
}

func TestEqualBracketLiteralQuoteStyle(t *testing.T) {
	if !Equal(`["a", "b"]`, `['a', 'b']`) {
		t.Fatal("bracket literal quote style should be irrelevant")
	}
}

func TestStringIdempotent(t *testing.T) {
	inputs := []string{
		`  TYPE  none | string   DEFAULT  "draft"  `,
		"`rand`::uuid()",
		`["x","y"]`,
	}
	for _, in := range inputs {
		once := String(in)
		twice := String(once)
		if once != twice {
			t.Errorf("String not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestStripOuterQuotes(t *testing.T) {
	cases := map[string]string{
		`'draft'`: "draft",
		`"draft"`: "draft",
		"draft":   "draft",
		`'mixed"`: `'mixed"`,
	}
	for in, want := range cases {
		if got := StripOuterQuotes(in); got != want {
			t.Errorf("StripOuterQuotes(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDuration(t *testing.T) {
	cases := map[string]string{
		"2w": "14d",
		"1w": "7d",
		"3d": "3d",
		"1y": "365d",
		"5h": "5h",
	}
	for in, want := range cases {
		if got := Duration(in); got != want {
			t.Errorf("Duration(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDurationEqual(t *testing.T) {
	if !DurationEqual("2w", "14d") {
		t.Fatal("2w and 14d should be duration-equal")
	}
	if DurationEqual("2w", "13d") {
		t.Fatal("2w and 13d should not be duration-equal")
	}
}

func TestCommentEqual(t *testing.T) {
	for _, none := range []string{"", "null", "NULL", "undefined"} {
		if !CommentEqual(none, "") {
			t.Errorf("CommentEqual(%q, %q) should treat both as no comment", none, "")
		}
	}
	if CommentEqual("hello", "") {
		t.Fatal("a real comment should not equal no-comment")
	}
	if !CommentEqual("hello", "hello") {
		t.Fatal("identical comments should be equal")
	}
}
