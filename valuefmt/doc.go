// Package valuefmt renders typed values as scalar text.
//
// ValueFormatter is the service emitters consume; Formatter is the default
// implementation:
//
//	f := valuefmt.New(valuefmt.WithTimeLayout(time.DateOnly))
//	f.FormatNumber(3.25)                     // "3.25"
//	f.FormatEnum(color.DarkRed, naming.Hyphenated) // "dark-red"
//
// # Related Packages
//
//   - github.com/signadot/jsonemit/naming - conventions used for enum text
//   - github.com/signadot/jsonemit/emit - emitters that call the formatter
package valuefmt
