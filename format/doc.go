// Package format names the output syntaxes of the writer.
//
// # Usage
//
//	f, err := format.ParseFormat("json")
//	w := writer.New(os.Stdout, writer.WithFormat(f))
//
// # Related Packages
//
//   - github.com/signadot/jsonemit/writer - Renders events in a format
package format
