package serialize

import (
	"bytes"
	"io"
	"reflect"
	"sync"

	"github.com/signadot/jsonemit/debug"
	"github.com/signadot/jsonemit/emit"
	"github.com/signadot/jsonemit/event"
	"github.com/signadot/jsonemit/format"
	"github.com/signadot/jsonemit/writer"
)

// Serializer turns Go values into events. It is safe for concurrent use.
type Serializer struct {
	opts       options
	fieldCache sync.Map // reflect.Type -> []field
}

func New(opts ...Option) *Serializer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Serializer{opts: o}
}

// Format returns the output format the serializer builds chains for.
func (s *Serializer) Format() format.Format {
	return s.opts.format
}

// Chain returns the emitter chain for the serializer's format, ending in
// next. Events are traced when debug.Events() is on.
func (s *Serializer) Chain(next emit.Emitter) emit.Emitter {
	var e emit.Emitter
	if s.opts.format.IsJSON() {
		e = emit.NewJSONEmitter(next, s.opts.formatter, s.opts.enumNaming)
	} else {
		e = emit.NewTypeAssigner(next, s.opts.formatter, s.opts.enumNaming)
	}
	if debug.Events() {
		e = emit.NewTrace(e, s.opts.format.String()+": ")
	}
	return e
}

// Serialize writes v to w as a single document.
func (s *Serializer) Serialize(w io.Writer, v any) error {
	opts := append([]writer.Option{writer.WithFormat(s.opts.format)}, s.opts.writerOpts...)
	wr := writer.New(w, opts...)
	if err := s.Emit(s.Chain(wr), v); err != nil {
		return err
	}
	return wr.Close()
}

// Emit sends the events of v to e, in document order.
func (s *Serializer) Emit(e emit.Emitter, v any) error {
	w := &walker{
		s:       s,
		opts:    &s.opts,
		e:       e,
		anchors: map[ref]event.AnchorName{},
		written: map[ref]event.AnchorName{},
		active:  map[ref]bool{},
	}
	rv := reflect.ValueOf(v)
	if s.opts.anchors {
		w.assignAnchors(rv)
	}
	return w.value(rv, "", 0, "", hint{})
}

// JSON returns v serialized as JSON.
func JSON(v any, opts ...Option) ([]byte, error) {
	return serialize(v, append(opts, WithFormat(format.JSONFormat)))
}

// YAML returns v serialized as YAML.
func YAML(v any, opts ...Option) ([]byte, error) {
	return serialize(v, append(opts, WithFormat(format.YAMLFormat)))
}

func serialize(v any, opts []Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := New(opts...).Serialize(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
