// Package serialize produces emitter events from Go values.
//
// A Serializer walks a value with reflection and sends one event per
// node through an emitter chain, in document order. The chain depends on
// the format: emit.JSONEmitter for JSON and emit.TypeAssigner for YAML,
// both ending in a writer.Writer.
//
// # Usage
//
//	data, err := serialize.JSON(v, serialize.WithKeyNaming(naming.Camel))
//
//	s := serialize.New(serialize.WithFormat(format.YAMLFormat))
//	err := s.Serialize(os.Stdout, v)
//
// # Values
//
//   - Booleans, numbers, strings, time.Time and time.Duration are scalars.
//   - Maps are mappings with keys sorted, integers by value and other keys
//     by their text.
//   - Structs are mappings of their exported fields. Embedded structs are
//     flattened.
//   - Slices and arrays are sequences, except byte slices which are
//     scalars.
//   - encoding.TextMarshaler values are strings.
//   - nil pointers, maps, slices and interfaces are null.
//
// # Field Tags
//
//	Name string `emit:"name,omitempty"`
//	Body string `emit:"body,literal"`
//	Tags []string `emit:",flow"`
//	Skip int `emit:"-"`
//
// A field without a tag name is named by the key naming convention.
// Options are omitempty, flow (collections), literal, folded, single and
// double (scalars).
//
// # Anchors
//
// Pointers, maps and slices reached more than once are anchored o1, o2,
// ... in the order they are first reached. Later occurrences are emitted
// as aliases; when the chain asks for expansion, as JSON does, the value
// is emitted in full instead. A cycle that must be expanded is an error.
//
// # Related Packages
//
//   - github.com/signadot/jsonemit/emit - Emitter chain links
//   - github.com/signadot/jsonemit/writer - Terminal link writing text
package serialize
