package naming

import "unicode"

func isSeparator(r rune) bool {
	return r == '-' || r == '_'
}

// toCamelOrPascal removes separators, upper-casing the rune following each
// one, and then applies first to the leading rune.
//
// The rune after a separator is always consumed, so "a--b" becomes "a-b" and
// a trailing separator is dropped.
func toCamelOrPascal(s string, first func(rune) rune) string {
	if s == "" {
		return s
	}
	rs := []rune(s)
	out := make([]rune, 0, len(rs))
	for i := 0; i < len(rs); i++ {
		if !isSeparator(rs[i]) {
			out = append(out, rs[i])
			continue
		}
		if i+1 < len(rs) {
			out = append(out, unicode.ToUpper(rs[i+1]))
			i++
		}
	}
	if len(out) == 0 {
		return ""
	}
	out[0] = first(out[0])
	return string(out)
}

// fromCamel converts camel or pascal case to sep separated lower case.
// Existing separators are normalized to sep.
func fromCamel(s string, sep rune) string {
	if s == "" {
		return s
	}
	rs := []rune(s)
	out := make([]rune, 0, len(rs)+len(rs)/2)
	out = append(out, unicode.ToLower(rs[0]))
	for i := 1; i < len(rs); i++ {
		r := rs[i]
		switch {
		case isSeparator(r):
			out = append(out, sep)
			if i+1 < len(rs) {
				out = append(out, unicode.ToLower(rs[i+1]))
				i++
			}
		case unicode.IsUpper(r):
			out = append(out, sep, unicode.ToLower(r))
		default:
			out = append(out, r)
		}
	}
	return string(out)
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	rs := []rune(s)
	rs[0] = unicode.ToUpper(rs[0])
	return string(rs)
}
