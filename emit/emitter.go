package emit

import "github.com/signadot/jsonemit/event"

// Emitter is one link of an emitter chain. Each method receives a
// descriptor by value and returns the descriptor as it was delivered
// downstream.
type Emitter interface {
	EmitAlias(event.Alias) (event.Alias, error)
	EmitScalar(event.Scalar) (event.Scalar, error)
	EmitMappingStart(event.MappingStart) (event.MappingStart, error)
	EmitMappingEnd(event.MappingEnd) (event.MappingEnd, error)
	EmitSequenceStart(event.SequenceStart) (event.SequenceStart, error)
	EmitSequenceEnd(event.SequenceEnd) (event.SequenceEnd, error)
}

// Chained forwards every event unchanged to Next. Links embed it and
// override the kinds they rewrite. With a nil Next, events are returned
// as given.
type Chained struct {
	Next Emitter
}

func (c Chained) EmitAlias(ev event.Alias) (event.Alias, error) {
	if c.Next == nil {
		return ev, nil
	}
	return c.Next.EmitAlias(ev)
}

func (c Chained) EmitScalar(ev event.Scalar) (event.Scalar, error) {
	if c.Next == nil {
		return ev, nil
	}
	return c.Next.EmitScalar(ev)
}

func (c Chained) EmitMappingStart(ev event.MappingStart) (event.MappingStart, error) {
	if c.Next == nil {
		return ev, nil
	}
	return c.Next.EmitMappingStart(ev)
}

func (c Chained) EmitMappingEnd(ev event.MappingEnd) (event.MappingEnd, error) {
	if c.Next == nil {
		return ev, nil
	}
	return c.Next.EmitMappingEnd(ev)
}

func (c Chained) EmitSequenceStart(ev event.SequenceStart) (event.SequenceStart, error) {
	if c.Next == nil {
		return ev, nil
	}
	return c.Next.EmitSequenceStart(ev)
}

func (c Chained) EmitSequenceEnd(ev event.SequenceEnd) (event.SequenceEnd, error) {
	if c.Next == nil {
		return ev, nil
	}
	return c.Next.EmitSequenceEnd(ev)
}
