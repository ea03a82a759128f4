package writer

import "github.com/signadot/jsonemit/format"

// Option configures a Writer.
type Option func(*options)

type options struct {
	format  format.Format
	indent  int
	compact bool
	colors  *Colors
}

func defaultOptions() options {
	return options{format: format.YAMLFormat, indent: 2}
}

func WithFormat(f format.Format) Option {
	return func(o *options) {
		o.format = f
	}
}

// WithIndent sets the indentation of nested block collections. Values
// below 1 are ignored.
func WithIndent(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.indent = n
		}
	}
}

// WithCompact drops the space after ',' in flow collections, and after
// ':' in JSON.
func WithCompact(v bool) Option {
	return func(o *options) {
		o.compact = v
	}
}

// WithColors colors the output. A nil palette disables colors.
func WithColors(c *Colors) Option {
	return func(o *options) {
		o.colors = c
	}
}
