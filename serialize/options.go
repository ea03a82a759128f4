package serialize

import (
	"github.com/signadot/jsonemit/format"
	"github.com/signadot/jsonemit/naming"
	"github.com/signadot/jsonemit/valuefmt"
	"github.com/signadot/jsonemit/writer"
)

// Option configures a Serializer.
type Option func(*options)

type options struct {
	format     format.Format
	keyNaming  naming.Convention
	enumNaming naming.Convention
	formatter  valuefmt.ValueFormatter
	writerOpts []writer.Option
	maxDepth   int
	anchors    bool
}

func defaultOptions() options {
	return options{
		format:     format.YAMLFormat,
		keyNaming:  naming.Null,
		enumNaming: naming.Null,
		formatter:  valuefmt.New(),
		maxDepth:   1000,
		anchors:    true,
	}
}

// WithFormat selects the output format and with it the emitter chain:
// JSON output is rewritten by emit.JSONEmitter, YAML output by
// emit.TypeAssigner.
func WithFormat(f format.Format) Option {
	return func(o *options) {
		o.format = f
	}
}

// WithKeyNaming sets the convention applied to struct field names that
// have no name in their tag.
func WithKeyNaming(nc naming.Convention) Option {
	return func(o *options) {
		if nc == nil {
			nc = naming.Null
		}
		o.keyNaming = nc
	}
}

// WithEnumNaming sets the convention applied to enum names.
func WithEnumNaming(nc naming.Convention) Option {
	return func(o *options) {
		if nc == nil {
			nc = naming.Null
		}
		o.enumNaming = nc
	}
}

func WithFormatter(f valuefmt.ValueFormatter) Option {
	return func(o *options) {
		if f != nil {
			o.formatter = f
		}
	}
}

// WithWriterOptions passes options to the writer used by Serialize.
func WithWriterOptions(opts ...writer.Option) Option {
	return func(o *options) {
		o.writerOpts = append(o.writerOpts, opts...)
	}
}

// WithMaxDepth bounds the nesting of collections and pointers.
func WithMaxDepth(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxDepth = n
		}
	}
}

// WithAnchors controls anchor assignment for values reached more than
// once. Without anchors shared values are written in full at every
// occurrence.
func WithAnchors(v bool) Option {
	return func(o *options) {
		o.anchors = v
	}
}
