package emit

import "github.com/signadot/jsonemit/event"

// Recorder keeps every event it receives and forwards it to Next, if any.
// A Recorder with no Next is a terminal link. It is not safe for
// concurrent use.
type Recorder struct {
	Chained
	Events []any
}

// Strings returns Describe of each recorded event.
func (r *Recorder) Strings() []string {
	res := make([]string, len(r.Events))
	for i, ev := range r.Events {
		res[i] = Describe(ev)
	}
	return res
}

func (r *Recorder) Reset() {
	r.Events = r.Events[:0]
}

func (r *Recorder) EmitAlias(ev event.Alias) (event.Alias, error) {
	r.Events = append(r.Events, ev)
	return r.Chained.EmitAlias(ev)
}

func (r *Recorder) EmitScalar(ev event.Scalar) (event.Scalar, error) {
	r.Events = append(r.Events, ev)
	return r.Chained.EmitScalar(ev)
}

func (r *Recorder) EmitMappingStart(ev event.MappingStart) (event.MappingStart, error) {
	r.Events = append(r.Events, ev)
	return r.Chained.EmitMappingStart(ev)
}

func (r *Recorder) EmitMappingEnd(ev event.MappingEnd) (event.MappingEnd, error) {
	r.Events = append(r.Events, ev)
	return r.Chained.EmitMappingEnd(ev)
}

func (r *Recorder) EmitSequenceStart(ev event.SequenceStart) (event.SequenceStart, error) {
	r.Events = append(r.Events, ev)
	return r.Chained.EmitSequenceStart(ev)
}

func (r *Recorder) EmitSequenceEnd(ev event.SequenceEnd) (event.SequenceEnd, error) {
	r.Events = append(r.Events, ev)
	return r.Chained.EmitSequenceEnd(ev)
}
