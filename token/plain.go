package token

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	// YAML 1.1 and 1.2 core schema numbers, including 0x, 0o and sexagesimal
	// forms some readers still accept.
	yamlNumber = regexp.MustCompile(`^[-+]?(\.[0-9]+|[0-9][0-9_]*(\.[0-9_]*)?)([eE][-+]?[0-9]+)?$|^[-+]?0[xob][0-9a-fA-F_]+$|^[-+]?[0-9][0-9_]*(:[0-5]?[0-9])+(\.[0-9_]*)?$|^[-+]?\.(inf|Inf|INF)$|^\.(nan|NaN|NAN)$`)

	yamlTimestamp = regexp.MustCompile(`^[0-9]{4}-[0-9]{1,2}-[0-9]{1,2}`)

	reserved = map[string]bool{
		"~": true, "null": true, "Null": true, "NULL": true,
		"true": true, "True": true, "TRUE": true,
		"false": true, "False": true, "FALSE": true,
		"y": true, "Y": true, "yes": true, "Yes": true, "YES": true,
		"n": true, "N": true, "no": true, "No": true, "NO": true,
		"on": true, "On": true, "ON": true,
		"off": true, "Off": true, "OFF": true,
		"<<": true, "=": true,
	}
)

// NeedsQuote reports whether v would be misread, or would break the
// surrounding syntax, if written as a plain scalar in block or flow
// context.
func NeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	if reserved[v] || yamlNumber.MatchString(v) || yamlTimestamp.MatchString(v) {
		return true
	}
	switch v[0] {
	case '-', '?', ':', ',', '[', ']', '{', '}', '#', '&', '*', '!', '|', '>', '\'', '"', '%', '@', '`', ' ', '\t':
		return true
	}
	switch v[len(v)-1] {
	case ' ', '\t', ':':
		return true
	}
	if strings.Contains(v, ": ") || strings.Contains(v, " #") {
		return true
	}
	for _, r := range v {
		switch r {
		case ',', '[', ']', '{', '}':
			return true
		}
		if unicode.IsControl(r) || r == '\u2028' || r == '\u2029' || r == '\ufeff' {
			return true
		}
	}
	return false
}

// IsMultiline reports whether v spans several lines.
func IsMultiline(v string) bool {
	return strings.ContainsAny(v, "\n\r")
}

// IsPlainSafe reports whether v can be written as a plain scalar without
// breaking the surrounding syntax, in block or, if flow is set, in flow
// context. Unlike NeedsQuote it does not care how a reader would type v.
func IsPlainSafe(v string, flow bool) bool {
	if v == "" {
		return false
	}
	switch v[0] {
	case '-', '?', ':':
		if len(v) == 1 || v[1] == ' ' || v[1] == '\t' {
			return false
		}
		if flow && strings.IndexByte(",[]{}", v[1]) >= 0 {
			return false
		}
	case ',', '[', ']', '{', '}', '#', '&', '*', '!', '|', '>', '\'', '"', '%', '@', '`', ' ', '\t':
		return false
	}
	switch v[len(v)-1] {
	case ' ', '\t', ':':
		return false
	}
	if strings.Contains(v, ": ") || strings.Contains(v, " #") {
		return false
	}
	if flow && strings.ContainsAny(v, ",[]{}") {
		return false
	}
	for _, r := range v {
		if unicode.IsControl(r) || r == '\u2028' || r == '\u2029' || r == '\ufeff' {
			return false
		}
	}
	return true
}
