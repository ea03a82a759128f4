package emit

import (
	"reflect"
	"testing"
	"time"
)

type celsius float32

func TestClassify(t *testing.T) {
	tests := []struct {
		typ  reflect.Type
		want TypeCode
	}{
		{nil, TypeEmpty},
		{reflect.TypeOf(true), TypeBoolean},
		{reflect.TypeOf(int8(0)), TypeInteger},
		{reflect.TypeOf(uint64(0)), TypeInteger},
		{reflect.TypeOf('r'), TypeInteger},
		{reflect.TypeOf(lowLevel), TypeInteger},
		{reflect.TypeOf(celsius(0)), TypeFloat},
		{reflect.TypeOf(0.0), TypeFloat},
		{reflect.TypeOf(""), TypeString},
		{reflect.TypeOf(label("")), TypeString},
		{reflect.TypeOf(time.Time{}), TypeDateTime},
		{reflect.TypeOf(time.Second), TypeTimeInterval},
		{reflect.TypeOf([]byte(nil)), TypeUnsupported},
		{reflect.TypeOf(complex128(0)), TypeUnsupported},
		{reflect.TypeOf(uintptr(0)), TypeUnsupported},
		{reflect.TypeOf(&time.Time{}), TypeUnsupported},
		{reflect.TypeOf(map[string]int{}), TypeUnsupported},
	}
	for _, tt := range tests {
		if got := Classify(tt.typ); got != tt.want {
			t.Errorf("%v: expected %s, got %s", tt.typ, tt.want, got)
		}
	}
}
