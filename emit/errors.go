package emit

import (
	"errors"
	"fmt"
	"reflect"
)

var ErrUnsupportedScalarType = errors.New("unsupported scalar type")

// UnsupportedScalarTypeError is returned when a scalar's type has no
// rendering.
type UnsupportedScalarTypeError struct {
	Type reflect.Type
}

func (e *UnsupportedScalarTypeError) Error() string {
	if e.Type == nil {
		return ErrUnsupportedScalarType.Error()
	}
	return fmt.Sprintf("%s: %s (kind %s)", ErrUnsupportedScalarType, e.Type, e.Type.Kind())
}

func (e *UnsupportedScalarTypeError) Is(target error) bool {
	return target == ErrUnsupportedScalarType
}
