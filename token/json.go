package token

import "regexp"

var jsonNumber = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][-+]?[0-9]+)?$`)

// IsJSONLiteral reports whether v can appear unquoted in JSON: a number,
// true, false or null.
func IsJSONLiteral(v string) bool {
	switch v {
	case "true", "false", "null":
		return true
	}
	return jsonNumber.MatchString(v)
}
