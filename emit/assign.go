package emit

import (
	"encoding/base64"
	"reflect"

	"github.com/signadot/jsonemit/event"
	"github.com/signadot/jsonemit/naming"
	"github.com/signadot/jsonemit/token"
	"github.com/signadot/jsonemit/valuefmt"
)

// BinaryTag is the standard tag for base64 encoded byte strings.
const BinaryTag event.TagName = "tag:yaml.org,2002:binary"

// TypeAssigner renders scalars for YAML output. Strings are written plain
// unless a reader would take them for another type, collections keep
// their style and aliases are forwarded.
type TypeAssigner struct {
	Chained
	formatter  valuefmt.ValueFormatter
	enumNaming naming.Convention
}

func NewTypeAssigner(next Emitter, formatter valuefmt.ValueFormatter, enumNaming naming.Convention) *TypeAssigner {
	if formatter == nil {
		formatter = valuefmt.New()
	}
	if enumNaming == nil {
		enumNaming = naming.Null
	}
	return &TypeAssigner{
		Chained:    Chained{Next: next},
		formatter:  formatter,
		enumNaming: enumNaming,
	}
}

func (a *TypeAssigner) EmitScalar(ev event.Scalar) (event.Scalar, error) {
	ev = ev.WithPlainImplicit(true).WithQuotedImplicit(true)

	src := ev.Source()
	value := src.Value()
	if value == nil {
		return a.Chained.EmitScalar(ev.WithRenderedValue("null").WithStyle(event.Plain))
	}
	typ := src.Type()
	switch Classify(typ) {
	case TypeBoolean:
		ev = ev.WithRenderedValue(a.formatter.FormatBoolean(value)).WithStyle(event.Plain)

	case TypeInteger:
		if valuefmt.IsEnum(typ) {
			ev = a.text(ev, a.formatter.FormatEnum(value, a.enumNaming))
			if a.formatter.ShouldQuoteEnum(value) {
				ev = ev.WithStyle(event.DoubleQuoted)
			}
			break
		}
		ev = ev.WithRenderedValue(a.formatter.FormatNumber(value)).WithStyle(event.Plain)

	case TypeFloat:
		ev = ev.WithRenderedValue(a.formatter.FormatNumber(value)).WithStyle(event.Plain)

	case TypeString:
		ev = a.text(ev, reflect.ValueOf(value).String())

	case TypeDateTime:
		ev = ev.WithRenderedValue(a.formatter.FormatDateTime(value)).WithStyle(event.Plain)

	case TypeTimeInterval:
		ev = ev.WithRenderedValue(a.formatter.FormatTimeInterval(value)).WithStyle(event.Plain)

	case TypeEmpty:
		ev = ev.WithRenderedValue("null").WithStyle(event.Plain)

	default:
		if typ.Kind() == reflect.Slice && typ.Elem().Kind() == reflect.Uint8 {
			b := reflect.ValueOf(value).Bytes()
			ev = ev.WithRenderedValue(base64.StdEncoding.EncodeToString(b)).
				WithStyle(event.Plain).
				WithTag(BinaryTag).
				WithPlainImplicit(false).
				WithQuotedImplicit(false)
			break
		}
		return event.Scalar{}, &UnsupportedScalarTypeError{Type: typ}
	}
	return a.Chained.EmitScalar(ev)
}

// text sets a string value, keeping a non plain style asked for by the
// source and otherwise picking the least quoting that reads back as a
// string.
func (a *TypeAssigner) text(ev event.Scalar, v string) event.Scalar {
	ev = ev.WithRenderedValue(v)
	if ev.Source().ScalarStyle() != event.Plain {
		return ev.WithStyle(ev.Source().ScalarStyle())
	}
	switch {
	case token.IsMultiline(v):
		return ev.WithStyle(event.Literal)
	case token.NeedsQuote(v):
		return ev.WithStyle(event.DoubleQuoted)
	default:
		return ev.WithStyle(event.Plain)
	}
}
