// Package event defines the descriptors threaded through an emitter chain.
//
// Each descriptor describes one pending emission: an alias, a scalar, or the
// start or end of a mapping or sequence. Descriptors are values. Fields are
// read through getters and changed only through With methods, which return
// an updated copy and leave the receiver untouched:
//
//	sc, err := event.NewScalar(event.Describe(3.5))
//	if err != nil {
//	    return err
//	}
//	quoted := sc.WithStyle(event.DoubleQuoted)
//	// sc.Style() is still the source's preferred style
//
// A descriptor is built by the producer for exactly one emission and
// discarded once the terminal link has consumed it.
//
// # Related Packages
//
//   - github.com/signadot/jsonemit/emit - the chain that rewrites descriptors
package event
