package event

import "reflect"

// Source describes the value behind an event. It is owned by the producer
// and only read by emitters.
type Source interface {
	// Value returns the value, nil when absent.
	Value() any
	// Type returns the runtime type of the value. It may be non-nil when
	// Value is nil, for typed nil pointers.
	Type() reflect.Type
	// ScalarStyle is the preferred style when the value is a scalar.
	ScalarStyle() ScalarStyle
}

// ObjectDescriptor is the standard Source.
type ObjectDescriptor struct {
	value any
	typ   reflect.Type
	style ScalarStyle
}

// Describe returns a descriptor for v using its dynamic type and the Plain
// style.
func Describe(v any) *ObjectDescriptor {
	return &ObjectDescriptor{value: v, typ: reflect.TypeOf(v), style: Plain}
}

// DescribeAs returns a descriptor for v with an explicit type and style.
func DescribeAs(v any, t reflect.Type, style ScalarStyle) *ObjectDescriptor {
	return &ObjectDescriptor{value: v, typ: t, style: style}
}

func (d *ObjectDescriptor) Value() any               { return d.value }
func (d *ObjectDescriptor) Type() reflect.Type       { return d.typ }
func (d *ObjectDescriptor) ScalarStyle() ScalarStyle { return d.style }
