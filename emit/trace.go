package emit

import (
	"github.com/signadot/jsonemit/debug"
	"github.com/signadot/jsonemit/event"
)

// Trace logs every event it forwards, with the event as returned by the
// rest of the chain.
type Trace struct {
	Chained
	Prefix string
}

func NewTrace(next Emitter, prefix string) *Trace {
	return &Trace{Chained: Chained{Next: next}, Prefix: prefix}
}

func (t *Trace) log(in, out any, err error) {
	if err != nil {
		debug.Logf("%s%s: error: %v\n", t.Prefix, Describe(in), err)
		return
	}
	debug.Logf("%s%s -> %s\n", t.Prefix, Describe(in), Describe(out))
}

func (t *Trace) EmitAlias(ev event.Alias) (event.Alias, error) {
	out, err := t.Chained.EmitAlias(ev)
	t.log(ev, out, err)
	return out, err
}

func (t *Trace) EmitScalar(ev event.Scalar) (event.Scalar, error) {
	out, err := t.Chained.EmitScalar(ev)
	t.log(ev, out, err)
	if debug.Scalars() {
		debug.Dump(ev.Source().Value())
	}
	return out, err
}

func (t *Trace) EmitMappingStart(ev event.MappingStart) (event.MappingStart, error) {
	out, err := t.Chained.EmitMappingStart(ev)
	t.log(ev, out, err)
	return out, err
}

func (t *Trace) EmitMappingEnd(ev event.MappingEnd) (event.MappingEnd, error) {
	out, err := t.Chained.EmitMappingEnd(ev)
	t.log(ev, out, err)
	return out, err
}

func (t *Trace) EmitSequenceStart(ev event.SequenceStart) (event.SequenceStart, error) {
	out, err := t.Chained.EmitSequenceStart(ev)
	t.log(ev, out, err)
	return out, err
}

func (t *Trace) EmitSequenceEnd(ev event.SequenceEnd) (event.SequenceEnd, error) {
	out, err := t.Chained.EmitSequenceEnd(ev)
	t.log(ev, out, err)
	return out, err
}
