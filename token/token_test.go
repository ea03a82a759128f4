package token

import (
	"encoding/json"
	"testing"
)

func TestQuoteIsJSON(t *testing.T) {
	for _, s := range []string{
		`"`,
		`'`,
		"\t\n\v\r\b\f",
		"∞∞",
		`"""''`,
		`back\slash`,
		"\x00\x1f",
		"",
	} {
		q := Quote(s)
		var back string
		if err := json.Unmarshal([]byte(q), &back); err != nil {
			t.Errorf("%q: quoted form %s is not json: %v", s, q, err)
			continue
		}
		if back != s {
			t.Errorf("expected %q, got %q", s, back)
		}
	}
}

func TestSingleQuote(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"abc", "'abc'"},
		{"it's", "'it''s'"},
		{"", "''"},
		{"a\nb", `"a\nb"`},
	}
	for _, tt := range tests {
		if got := SingleQuote(tt.in); got != tt.want {
			t.Errorf("expected %s, got %s", tt.want, got)
		}
	}
}

func TestNeedsQuote(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"hello", false},
		{"hello world", false},
		{"snake_case-name", false},
		{"a:b", false},
		{"1.2.3", false},
		{"", true},
		{"null", true},
		{"~", true},
		{"true", true},
		{"No", true},
		{"42", true},
		{"-3.5e10", true},
		{"0x1F", true},
		{".inf", true},
		{".nan", true},
		{"2024-01-02", true},
		{"- item", true},
		{"key: value", true},
		{"a #comment", true},
		{"a,b", true},
		{"[x]", true},
		{"{x}", true},
		{"*ref", true},
		{"&anchor", true},
		{"!tag", true},
		{" lead", true},
		{"trail ", true},
		{"colon:", true},
		{"tab\there", true},
		{"line\nbreak", true},
	}
	for _, tt := range tests {
		if got := NeedsQuote(tt.in); got != tt.want {
			t.Errorf("%q: expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestIsJSONLiteral(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"0", true},
		{"-12", true},
		{"3.25", true},
		{"1e+21", true},
		{"true", true},
		{"null", true},
		{"012", false},
		{"+1", false},
		{".5", false},
		{".nan", false},
		{"NaN", false},
		{"True", false},
		{"abc", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsJSONLiteral(tt.in); got != tt.want {
			t.Errorf("%q: expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestIsPlainSafe(t *testing.T) {
	tests := []struct {
		in         string
		block      bool
		flowResult bool
	}{
		{"hello world", true, true},
		{"true", true, true},
		{"-1", true, true},
		{"-.inf", true, true},
		{"2024-05-06T07:08:09Z", true, true},
		{"a,b", true, false},
		{"x]", true, false},
		{"-[", true, false},
		{"", false, false},
		{"-", false, false},
		{"- a", false, false},
		{"a: b", false, false},
		{"a #b", false, false},
		{"key:", false, false},
		{"*ref", false, false},
		{" lead", false, false},
		{"tab\there", false, false},
		{"line\nbreak", false, false},
	}
	for _, tt := range tests {
		if got := IsPlainSafe(tt.in, false); got != tt.block {
			t.Errorf("%q block: expected %v, got %v", tt.in, tt.block, got)
		}
		if got := IsPlainSafe(tt.in, true); got != tt.flowResult {
			t.Errorf("%q flow: expected %v, got %v", tt.in, tt.flowResult, got)
		}
	}
}
