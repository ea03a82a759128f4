package valuefmt

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/signadot/jsonemit/naming"
)

type color int

const (
	red color = iota
	darkRed
)

func (c color) String() string {
	switch c {
	case red:
		return "Red"
	case darkRed:
		return "DarkRed"
	default:
		return "Unknown"
	}
}

type plainInt int

func TestFormatNumber(t *testing.T) {
	f := New()
	tests := []struct {
		in   any
		want string
	}{
		{42, "42"},
		{int8(-3), "-3"},
		{uint64(math.MaxUint64), "18446744073709551615"},
		{3.0, "3"},
		{3.25, "3.25"},
		{-0.5, "-0.5"},
		{float32(0.1), "0.1"},
		{1e21, "1e+21"},
		{math.NaN(), ".nan"},
		{math.Inf(1), ".inf"},
		{math.Inf(-1), "-.inf"},
	}
	for _, tt := range tests {
		if got := f.FormatNumber(tt.in); got != tt.want {
			t.Errorf("%v: expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestFormatBoolean(t *testing.T) {
	f := New()
	if got := f.FormatBoolean(true); got != "true" {
		t.Errorf("expected %q, got %q", "true", got)
	}
	if got := f.FormatBoolean(false); got != "false" {
		t.Errorf("expected %q, got %q", "false", got)
	}
}

func TestFormatEnum(t *testing.T) {
	f := New()
	tests := []struct {
		conv naming.Convention
		want string
	}{
		{naming.Null, "DarkRed"},
		{nil, "DarkRed"},
		{naming.Camel, "darkRed"},
		{naming.Hyphenated, "dark-red"},
		{naming.Underscored, "dark_red"},
		{naming.LowerCase, "darkred"},
	}
	for _, tt := range tests {
		if got := f.FormatEnum(darkRed, tt.conv); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
	if got := f.FormatEnum(plainInt(7), naming.Camel); got != "7" {
		t.Errorf("expected %q, got %q", "7", got)
	}
}

func TestShouldQuoteEnum(t *testing.T) {
	if !New().ShouldQuoteEnum(red) {
		t.Error("expected default to quote")
	}
	f := New(WithEnumQuoting(func(v any) bool { return v != red }))
	if f.ShouldQuoteEnum(red) {
		t.Error("expected red unquoted")
	}
	if !f.ShouldQuoteEnum(darkRed) {
		t.Error("expected darkRed quoted")
	}
}

func TestFormatTimes(t *testing.T) {
	loc := time.FixedZone("X", 3600)
	ts := time.Date(2024, 3, 1, 10, 30, 0, 500, loc)
	if got, want := New().FormatDateTime(ts), "2024-03-01T10:30:00.0000005+01:00"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	f := New(WithUTC(true), WithTimeLayout(time.DateTime))
	if got, want := f.FormatDateTime(ts), "2024-03-01 09:30:00"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if got, want := f.FormatTimeInterval(90*time.Second), "1m30s"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestIsEnum(t *testing.T) {
	tests := []struct {
		t    reflect.Type
		want bool
	}{
		{reflect.TypeOf(red), true},
		{reflect.TypeOf(plainInt(0)), false},
		{reflect.TypeOf(0), false},
		{reflect.TypeOf(time.Second), false},
		{reflect.TypeOf(""), false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := IsEnum(tt.t); got != tt.want {
			t.Errorf("%v: expected %v, got %v", tt.t, tt.want, got)
		}
	}
}
