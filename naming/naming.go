package naming

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Convention translates identifiers to and from a rendered case style.
type Convention interface {
	// Apply converts an identifier to the convention.
	Apply(string) string
	// Reverse converts text rendered with the convention back to an
	// identifier.
	Reverse(string) string
}

var (
	// Null leaves identifiers unchanged.
	Null Convention = nullCase{}
	// Camel renders thisIsATest and reverses to this_is_a_test.
	Camel Convention = camelCase{}
	// Pascal renders ThisIsATest.
	Pascal Convention = pascalCase{}
	// Hyphenated renders this-is-a-test and reverses to ThisIsATest.
	Hyphenated Convention = separated{sep: '-'}
	// Underscored renders this_is_a_test and reverses to ThisIsATest.
	Underscored Convention = separated{sep: '_'}
	// LowerCase renders thisisatest. It is lossy: Reverse only restores
	// the first letter.
	LowerCase Convention = lowerCase{}
)

type nullCase struct{}

func (nullCase) Apply(v string) string   { return v }
func (nullCase) Reverse(v string) string { return v }

type camelCase struct{}

func (camelCase) Apply(v string) string {
	return toCamelOrPascal(v, unicode.ToLower)
}

func (camelCase) Reverse(v string) string {
	return fromCamel(v, '_')
}

type pascalCase struct{}

func (pascalCase) Apply(v string) string {
	return toCamelOrPascal(v, unicode.ToUpper)
}

func (pascalCase) Reverse(v string) string {
	return toCamelOrPascal(fromCamel(v, '_'), unicode.ToUpper)
}

type separated struct {
	sep rune
}

func (s separated) Apply(v string) string {
	return fromCamel(v, s.sep)
}

func (s separated) Reverse(v string) string {
	return toCamelOrPascal(v, unicode.ToUpper)
}

type lowerCase struct{}

func (lowerCase) Apply(v string) string {
	// a Caser keeps state between calls and cannot be shared
	return cases.Lower(language.Und).String(toCamelOrPascal(v, unicode.ToLower))
}

// Reverse has no word boundaries to work from, so only the first letter
// is restored.
func (lowerCase) Reverse(v string) string {
	return upperFirst(v)
}
