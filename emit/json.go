package emit

import (
	"reflect"
	"regexp"

	"github.com/signadot/jsonemit/event"
	"github.com/signadot/jsonemit/naming"
	"github.com/signadot/jsonemit/valuefmt"
)

// numericLiteral matches floats that read back as floats: digits on both
// sides of a mandatory point, no exponent.
var numericLiteral = regexp.MustCompile(`^-?[0-9]+\.[0-9]+$`)

// JSONEmitter rewrites events so that the output is JSON compatible:
// collections are flow style, aliases are expanded and scalars are quoted
// according to their type.
type JSONEmitter struct {
	Chained
	formatter  valuefmt.ValueFormatter
	enumNaming naming.Convention
}

// NewJSONEmitter returns a JSONEmitter forwarding to next. A nil formatter
// uses valuefmt.New() and a nil convention leaves enum names unchanged.
func NewJSONEmitter(next Emitter, formatter valuefmt.ValueFormatter, enumNaming naming.Convention) *JSONEmitter {
	if formatter == nil {
		formatter = valuefmt.New()
	}
	if enumNaming == nil {
		enumNaming = naming.Null
	}
	return &JSONEmitter{
		Chained:    Chained{Next: next},
		formatter:  formatter,
		enumNaming: enumNaming,
	}
}

// EmitAlias marks the alias for expansion. JSON has no references, so the
// alias is not forwarded: the producer emits the full value instead.
func (j *JSONEmitter) EmitAlias(ev event.Alias) (event.Alias, error) {
	return ev.WithNeedsExpansion(true), nil
}

func (j *JSONEmitter) EmitScalar(ev event.Scalar) (event.Scalar, error) {
	ev = ev.WithPlainImplicit(true).WithStyle(event.Plain)

	src := ev.Source()
	value := src.Value()
	if value == nil {
		return j.Chained.EmitScalar(ev.WithRenderedValue("null"))
	}
	typ := src.Type()
	switch Classify(typ) {
	case TypeBoolean:
		ev = ev.WithRenderedValue(j.formatter.FormatBoolean(value))

	case TypeInteger:
		if valuefmt.IsEnum(typ) {
			ev = ev.WithRenderedValue(j.formatter.FormatEnum(value, j.enumNaming))
			if j.formatter.ShouldQuoteEnum(value) {
				ev = ev.WithStyle(event.DoubleQuoted)
			}
			break
		}
		ev = ev.WithRenderedValue(j.formatter.FormatNumber(value))

	case TypeFloat:
		ev = ev.WithRenderedValue(j.formatter.FormatNumber(value))
		if !numericLiteral.MatchString(ev.RenderedValue()) {
			ev = ev.WithStyle(event.DoubleQuoted)
		}

	case TypeString:
		ev = ev.WithRenderedValue(reflect.ValueOf(value).String()).
			WithStyle(event.DoubleQuoted)

	case TypeDateTime:
		ev = ev.WithRenderedValue(j.formatter.FormatDateTime(value))

	case TypeTimeInterval:
		ev = ev.WithRenderedValue(j.formatter.FormatTimeInterval(value))

	case TypeEmpty:
		ev = ev.WithRenderedValue("null")

	default:
		return event.Scalar{}, &UnsupportedScalarTypeError{Type: typ}
	}
	return j.Chained.EmitScalar(ev)
}

func (j *JSONEmitter) EmitMappingStart(ev event.MappingStart) (event.MappingStart, error) {
	return j.Chained.EmitMappingStart(ev.WithStyle(event.Flow))
}

func (j *JSONEmitter) EmitSequenceStart(ev event.SequenceStart) (event.SequenceStart, error) {
	return j.Chained.EmitSequenceStart(ev.WithStyle(event.Flow))
}
