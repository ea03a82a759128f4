// Package writer renders an event stream as YAML or JSON text.
//
// A Writer is the terminal link of an emitter chain: it receives events
// in document order, writes them to an io.Writer and returns them
// unchanged. It keeps a stack of open collections, one frame per
// mapping or sequence, and rejects sequences of events that do not form
// exactly one document.
//
// # Usage
//
//	w := writer.New(os.Stdout, writer.WithFormat(format.JSONFormat))
//	chain := emit.NewJSONEmitter(w, nil, nil)
//	// ... emit events through chain ...
//	if err := w.Close(); err != nil {
//	    return err
//	}
//
// # YAML
//
// Block collections are written one entry per line, nested block
// collections indented by WithIndent. A collection nested in a flow
// collection is written in flow style whatever its own style. Empty
// block collections are written as {} and []. Anchors, tags and aliases
// are written as &a, !tag and *a; standard tags are shortened to !!name.
//
// Scalars keep their style where the context allows it. Plain scalars
// that would break the surrounding syntax, block scalars in flow context
// or in keys, and block scalars with leading whitespace are written
// double-quoted.
//
// # JSON
//
// Everything is written in flow style on one line. Anchors and tags are
// dropped and aliases are an error. Keys are always quoted; plain
// scalars are written as is only when they are JSON numbers, true, false
// or null.
//
// # Related Packages
//
//   - github.com/signadot/jsonemit/emit - Emitter chain links
//   - github.com/signadot/jsonemit/format - Output formats
//   - github.com/signadot/jsonemit/serialize - Produces events from Go values
package writer
