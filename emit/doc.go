// Package emit implements the chain of emitters that rewrites events before
// they reach a writer.
//
// An Emitter receives one event of each kind per call. Links embed Chained,
// which forwards every kind unchanged to the next link, and override only
// the kinds they transform. Every call returns the event as it left the
// chain, so a producer can observe rewrites such as alias expansion.
//
// # Usage
//
//	w := writer.New(out, writer.WithFormat(format.JSONFormat))
//	chain := emit.NewJSONEmitter(w, valuefmt.New(), naming.Camel)
//	sc, _ := event.NewScalar(event.Describe("hello"))
//	sc, err := chain.EmitScalar(sc)
//	// sc.Style() == event.DoubleQuoted
//
// # Links
//
//   - JSONEmitter: JSON compatible rendering (flow collections, expanded
//     aliases, typed scalar quoting)
//   - TypeAssigner: YAML scalar rendering
//   - Trace: logs each event when JSONEMIT_DEBUG_EVENTS is set
//   - Recorder: terminal link that keeps the events it receives
//
// # Related Packages
//
//   - github.com/signadot/jsonemit/event - event descriptors
//   - github.com/signadot/jsonemit/writer - terminal writer
package emit
