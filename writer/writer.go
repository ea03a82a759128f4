package writer

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/jsonemit/event"
)

// Writer is the terminal emitter link. It is not safe for concurrent
// use and writes a single document.
type Writer struct {
	out   io.Writer
	opts  options
	stack []frame
	roots int
	// dirty is set when the current line has content; gap when the next
	// content on the line must be preceded by a space.
	dirty bool
	gap   bool
	err   error
}

func New(w io.Writer, opts ...Option) *Writer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Writer{out: w, opts: o}
}

// Close reports an error if the document is incomplete. It does not
// close the underlying io.Writer.
func (w *Writer) Close() error {
	if w.err != nil {
		return w.err
	}
	if len(w.stack) > 0 {
		return &Error{Msg: fmt.Sprintf("%d collections not ended at %q", len(w.stack), w.Path())}
	}
	return nil
}

func (w *Writer) EmitAlias(ev event.Alias) (event.Alias, error) {
	if w.opts.format.IsJSON() {
		return ev, fmt.Errorf("%w: *%s at %q", ErrAliasInJSON, ev.Name(), w.Path())
	}
	if err := w.beginNode(false); err != nil {
		return ev, err
	}
	if err := w.inline(w.color(AnchorColor, "*"+string(ev.Name()))); err != nil {
		return ev, err
	}
	return ev, w.endNode()
}

func (w *Writer) EmitScalar(ev event.Scalar) (event.Scalar, error) {
	if err := w.beginNode(true); err != nil {
		return ev, err
	}
	key := len(w.stack) > 0 && w.top().mapping && !w.top().value
	if key {
		w.top().key = ev.RenderedValue()
	}
	if err := w.writeScalar(ev, key); err != nil {
		return ev, err
	}
	return ev, w.endNode()
}

func (w *Writer) EmitMappingStart(ev event.MappingStart) (event.MappingStart, error) {
	return ev, w.start(true, ev.Style(), ev.Anchor(), ev.Tag(), ev.IsImplicit())
}

func (w *Writer) EmitMappingEnd(ev event.MappingEnd) (event.MappingEnd, error) {
	return ev, w.end(true)
}

func (w *Writer) EmitSequenceStart(ev event.SequenceStart) (event.SequenceStart, error) {
	return ev, w.start(false, ev.Style(), ev.Anchor(), ev.Tag(), ev.IsImplicit())
}

func (w *Writer) EmitSequenceEnd(ev event.SequenceEnd) (event.SequenceEnd, error) {
	return ev, w.end(false)
}

func (w *Writer) start(mapping bool, style event.CollectionStyle, anchor event.AnchorName, tag event.TagName, implicit bool) error {
	if err := w.beginNode(false); err != nil {
		return err
	}
	f := frame{mapping: mapping, flow: style == event.Flow || w.inFlow()}
	p := w.props(anchor, tag, !implicit)
	if f.flow {
		if p != "" {
			if err := w.inline(p); err != nil {
				return err
			}
			w.gap = true
		}
		open := "["
		if mapping {
			open = "{"
		}
		if err := w.inline(w.color(SepColor, open)); err != nil {
			return err
		}
	} else {
		f.props = p
		f.indent, f.inline = w.childIndent()
	}
	w.stack = append(w.stack, f)
	return nil
}

func (w *Writer) end(mapping bool) error {
	if w.err != nil {
		return w.err
	}
	name := "sequence"
	if mapping {
		name = "mapping"
	}
	if len(w.stack) == 0 || w.top().mapping != mapping {
		return &Error{Msg: fmt.Sprintf("%s end without %s start at %q", name, name, w.Path())}
	}
	f := w.top()
	if f.mapping && f.value {
		return &Error{Msg: fmt.Sprintf("mapping end after key without value at %q", w.Path())}
	}
	closing := "]"
	if mapping {
		closing = "}"
	}
	switch {
	case f.flow:
		if err := w.inline(w.color(SepColor, closing)); err != nil {
			return err
		}
	case !f.opened:
		if f.props != "" {
			if err := w.inline(f.props); err != nil {
				return err
			}
			w.gap = true
		}
		empty := "[]"
		if mapping {
			empty = "{}"
		}
		if err := w.inline(w.color(SepColor, empty)); err != nil {
			return err
		}
	}
	w.stack = w.stack[:len(w.stack)-1]
	return w.endNode()
}

// beginNode writes what precedes a node in the current position: entry
// separators, sequence dashes and block indentation.
func (w *Writer) beginNode(scalar bool) error {
	if w.err != nil {
		return w.err
	}
	if len(w.stack) == 0 {
		if w.roots > 0 {
			return &Error{Msg: "more than one root node"}
		}
		w.roots++
		return nil
	}
	f := w.top()
	switch {
	case f.mapping && f.value:
		return nil
	case f.mapping:
		if !scalar {
			return &Error{Msg: fmt.Sprintf("mapping key at %q is not a scalar", w.Path())}
		}
		if f.flow {
			return w.comma(f)
		}
		return w.entry(f)
	case f.flow:
		return w.comma(f)
	default:
		if err := w.entry(f); err != nil {
			return err
		}
		if err := w.inline(w.color(SepColor, "-")); err != nil {
			return err
		}
		w.gap = true
		return nil
	}
}

// endNode records a complete node in its parent. A complete root ends
// the document.
func (w *Writer) endNode() error {
	if len(w.stack) == 0 {
		w.gap = false
		w.dirty = false
		return w.raw("\n")
	}
	f := w.top()
	if f.mapping && !f.value {
		f.value = true
		if err := w.inline(w.color(SepColor, ":")); err != nil {
			return err
		}
		w.gap = !(f.flow && w.opts.compact && w.opts.format.IsJSON())
		return nil
	}
	f.value = false
	f.n++
	return nil
}

func (w *Writer) comma(f *frame) error {
	if f.n == 0 {
		return nil
	}
	if err := w.inline(w.color(SepColor, ",")); err != nil {
		return err
	}
	w.gap = !w.opts.compact
	return nil
}

// entry starts a block entry on a new line, unless it is the first entry
// of an inline collection.
func (w *Writer) entry(f *frame) error {
	if !f.opened {
		f.opened = true
		if f.props != "" {
			if err := w.inline(f.props); err != nil {
				return err
			}
			f.inline = false
		}
	}
	if f.inline && f.n == 0 {
		return nil
	}
	return w.newline(f.indent)
}

// props renders an anchor and, when withTag is set, a tag. JSON has
// neither.
func (w *Writer) props(anchor event.AnchorName, tag event.TagName, withTag bool) string {
	if w.opts.format.IsJSON() {
		return ""
	}
	var parts []string
	if anchor != "" {
		parts = append(parts, w.color(AnchorColor, "&"+string(anchor)))
	}
	if withTag && tag != "" {
		parts = append(parts, w.color(TagColor, tagText(tag)))
	}
	return strings.Join(parts, " ")
}

const yamlTagPrefix = "tag:yaml.org,2002:"

func tagText(t event.TagName) string {
	s := string(t)
	switch {
	case strings.HasPrefix(s, yamlTagPrefix):
		return "!!" + s[len(yamlTagPrefix):]
	case strings.HasPrefix(s, "!"):
		return s
	default:
		return "!<" + s + ">"
	}
}

func (w *Writer) color(a ColorAttr, s string) string {
	return w.opts.colors.Color(a, s)
}

func (w *Writer) raw(s string) error {
	if w.err != nil {
		return w.err
	}
	if _, err := io.WriteString(w.out, s); err != nil {
		w.err = err
		return err
	}
	return nil
}

// inline writes s on the current line.
func (w *Writer) inline(s string) error {
	if w.gap {
		w.gap = false
		if err := w.raw(" "); err != nil {
			return err
		}
	}
	w.dirty = true
	return w.raw(s)
}

// newline ends the current line, if it has content, and indents the next.
func (w *Writer) newline(indent int) error {
	w.gap = false
	if w.dirty {
		w.dirty = false
		if err := w.raw("\n"); err != nil {
			return err
		}
	}
	return w.raw(strings.Repeat(" ", indent))
}
