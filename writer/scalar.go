package writer

import (
	"strings"

	"github.com/signadot/jsonemit/event"
	"github.com/signadot/jsonemit/token"
)

func (w *Writer) writeScalar(ev event.Scalar, key bool) error {
	v := ev.RenderedValue()
	style := w.scalarStyle(ev, key)
	implicit := ev.IsQuotedImplicit()
	if style == event.Plain {
		implicit = ev.IsPlainImplicit()
	}
	if p := w.props(ev.Anchor(), ev.Tag(), !implicit); p != "" {
		if err := w.inline(p); err != nil {
			return err
		}
		w.gap = true
	}
	switch style {
	case event.Plain:
		a := scalarColor(v)
		if key {
			a = KeyColor
		}
		return w.inline(w.color(a, v))
	case event.SingleQuoted:
		return w.inline(w.color(quotedColor(key), token.SingleQuote(v)))
	case event.Literal, event.Folded:
		return w.writeBlockScalar(v, style)
	default:
		return w.inline(w.color(quotedColor(key), token.Quote(v)))
	}
}

// scalarStyle returns the style v is actually written in.
func (w *Writer) scalarStyle(ev event.Scalar, key bool) event.ScalarStyle {
	v := ev.RenderedValue()
	if w.opts.format.IsJSON() {
		if !key && ev.Style() == event.Plain && token.IsJSONLiteral(v) {
			return event.Plain
		}
		return event.DoubleQuoted
	}
	flow := w.inFlow()
	switch st := ev.Style(); st {
	case event.Plain:
		if token.IsPlainSafe(v, flow) {
			return event.Plain
		}
		return event.DoubleQuoted
	case event.SingleQuoted:
		return st
	case event.Literal, event.Folded:
		if key || flow || !blockSafe(v) {
			return event.DoubleQuoted
		}
		if st == event.Folded && !foldable(v) {
			return event.Literal
		}
		return st
	default:
		return event.DoubleQuoted
	}
}

// blockSafe reports whether v can be written as a block scalar without an
// indentation indicator.
func blockSafe(v string) bool {
	body := strings.TrimRight(v, "\n")
	if body == "" || body[0] == ' ' || body[0] == '\t' || body[0] == '\n' {
		return false
	}
	for _, r := range v {
		if r == '\n' || r == '\t' {
			continue
		}
		if r < ' ' || r == 0x7f || r == '\u2028' || r == '\u2029' || r == '\ufeff' {
			return false
		}
	}
	return true
}

// foldable reports whether every line of v folds: lines starting with
// whitespace are kept as is by readers and need the literal style.
func foldable(v string) bool {
	for _, line := range strings.Split(strings.TrimRight(v, "\n"), "\n") {
		if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
			return false
		}
	}
	return true
}

func (w *Writer) writeBlockScalar(v string, style event.ScalarStyle) error {
	body := strings.TrimRight(v, "\n")
	trailing := len(v) - len(body)
	header := "|"
	if style == event.Folded {
		header = ">"
	}
	switch trailing {
	case 0:
		header += "-"
	case 1:
	default:
		header += "+"
	}
	if err := w.inline(w.color(SepColor, header)); err != nil {
		return err
	}
	indent, _ := w.childIndent()
	if len(w.stack) == 0 {
		indent = w.opts.indent
	}
	pad := strings.Repeat(" ", indent)
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		if err := w.raw("\n"); err != nil {
			return err
		}
		// In folded style a single line break between two lines reads as
		// a space, so each break after a non-empty line is doubled.
		if style == event.Folded && i > 0 && lines[i-1] != "" {
			if err := w.raw("\n"); err != nil {
				return err
			}
		}
		if line == "" {
			continue
		}
		if err := w.raw(pad + w.color(BlockColor, line)); err != nil {
			return err
		}
	}
	for i := 1; i < trailing; i++ {
		if err := w.raw("\n"); err != nil {
			return err
		}
	}
	w.dirty = true
	return nil
}

func quotedColor(key bool) ColorAttr {
	if key {
		return KeyColor
	}
	return StringColor
}

func scalarColor(v string) ColorAttr {
	switch v {
	case "null", "~":
		return NullColor
	case "true", "false":
		return BoolColor
	}
	if token.IsJSONLiteral(v) {
		return NumberColor
	}
	return StringColor
}
