package emit

import (
	"reflect"
	"time"
)

// TypeCode is the scalar classification used by the scalar rendering links.
type TypeCode int

const (
	TypeEmpty TypeCode = iota
	TypeBoolean
	TypeInteger
	TypeFloat
	TypeString
	TypeDateTime
	TypeTimeInterval
	TypeUnsupported
)

func (c TypeCode) String() string {
	switch c {
	case TypeEmpty:
		return "Empty"
	case TypeBoolean:
		return "Boolean"
	case TypeInteger:
		return "Integer"
	case TypeFloat:
		return "Float"
	case TypeString:
		return "String"
	case TypeDateTime:
		return "DateTime"
	case TypeTimeInterval:
		return "TimeInterval"
	default:
		return "Unsupported"
	}
}

var (
	timeType     = reflect.TypeOf(time.Time{})
	durationType = reflect.TypeOf(time.Duration(0))
)

// Classify returns the type code of t. time.Time and time.Duration are
// recognized by identity before looking at the kind, since a Duration is
// an int64.
func Classify(t reflect.Type) TypeCode {
	if t == nil {
		return TypeEmpty
	}
	switch t {
	case timeType:
		return TypeDateTime
	case durationType:
		return TypeTimeInterval
	}
	switch t.Kind() {
	case reflect.Bool:
		return TypeBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return TypeInteger
	case reflect.Float32, reflect.Float64:
		return TypeFloat
	case reflect.String:
		return TypeString
	default:
		return TypeUnsupported
	}
}
