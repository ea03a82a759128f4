package emit

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/jsonemit/event"
	"github.com/signadot/jsonemit/naming"
	"github.com/signadot/jsonemit/valuefmt"
)

type level int

const (
	lowLevel level = iota
	veryHighLevel
)

func (l level) String() string {
	if l == veryHighLevel {
		return "VeryHigh"
	}
	return "Low"
}

type label string

func scalar(t *testing.T, v any) event.Scalar {
	t.Helper()
	sc, err := event.NewScalar(event.Describe(v))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return sc
}

func newJSON(rec *Recorder, opts ...valuefmt.Option) *JSONEmitter {
	return NewJSONEmitter(rec, valuefmt.New(opts...), naming.Hyphenated)
}

func TestJSONScalar(t *testing.T) {
	ts := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"bool", true, `Scalar(Plain "true")`},
		{"int", 42, `Scalar(Plain "42")`},
		{"uint8", uint8(7), `Scalar(Plain "7")`},
		{"float", 3.25, `Scalar(Plain "3.25")`},
		{"negative float", -0.5, `Scalar(Plain "-0.5")`},
		{"integral float", 3.0, `Scalar(DoubleQuoted "3")`},
		{"exponent float", 1e21, `Scalar(DoubleQuoted "1e+21")`},
		{"nan", math.NaN(), `Scalar(DoubleQuoted ".nan")`},
		{"inf", math.Inf(1), `Scalar(DoubleQuoted ".inf")`},
		{"string", "hello", `Scalar(DoubleQuoted "hello")`},
		{"numeric string", "42", `Scalar(DoubleQuoted "42")`},
		{"named string", label("x"), `Scalar(DoubleQuoted "x")`},
		{"empty string", "", `Scalar(DoubleQuoted "")`},
		{"time", ts, `Scalar(Plain "2024-05-06T07:08:09Z")`},
		{"duration", 90 * time.Second, `Scalar(Plain "1m30s")`},
		{"nil", nil, `Scalar(Plain "null")`},
		{"enum", veryHighLevel, `Scalar(DoubleQuoted "very-high")`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &Recorder{}
			out, err := newJSON(rec).EmitScalar(scalar(t, tt.value))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff([]string{tt.want}, rec.Strings()); diff != "" {
				t.Errorf("forwarded events (-want +got):\n%s", diff)
			}
			if got := Describe(out); got != tt.want {
				t.Errorf("expected returned %s, got %s", tt.want, got)
			}
			if !out.IsPlainImplicit() {
				t.Error("expected plain implicit")
			}
		})
	}
}

func TestJSONScalarTypedNil(t *testing.T) {
	var p *int
	sc, err := event.NewScalar(event.DescribeAs(nil, reflect.TypeOf(p), event.SingleQuoted))
	if err != nil {
		t.Fatal(err)
	}
	out, err := newJSON(&Recorder{}).EmitScalar(sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.RenderedValue() != "null" || out.Style() != event.Plain {
		t.Errorf("expected plain null, got %s", Describe(out))
	}
}

func TestJSONBooleanUsesFormatter(t *testing.T) {
	f := &upperBools{Formatter: valuefmt.New()}
	rec := &Recorder{}
	out, err := NewJSONEmitter(rec, f, nil).EmitScalar(scalar(t, true))
	if err != nil {
		t.Fatal(err)
	}
	if out.RenderedValue() != "TRUE" || out.Style() != event.Plain || !out.IsPlainImplicit() {
		t.Errorf("unexpected %s", Describe(out))
	}
}

type upperBools struct {
	*valuefmt.Formatter
}

func (u *upperBools) FormatBoolean(v any) string {
	if v.(bool) {
		return "TRUE"
	}
	return "FALSE"
}

func TestJSONEnumQuoting(t *testing.T) {
	never := func(any) bool { return false }
	always := func(any) bool { return true }

	out, err := newJSON(&Recorder{}, valuefmt.WithEnumQuoting(never)).EmitScalar(scalar(t, lowLevel))
	if err != nil {
		t.Fatal(err)
	}
	if out.Style() != event.Plain || out.RenderedValue() != "low" {
		t.Errorf("expected plain low, got %s", Describe(out))
	}

	out, err = newJSON(&Recorder{}, valuefmt.WithEnumQuoting(always)).EmitScalar(scalar(t, lowLevel))
	if err != nil {
		t.Fatal(err)
	}
	if out.Style() != event.DoubleQuoted {
		t.Errorf("expected double quoted, got %s", Describe(out))
	}
}

func TestJSONScalarOverridesStyle(t *testing.T) {
	sc, err := event.NewScalar(event.DescribeAs(true, reflect.TypeOf(true), event.Literal))
	if err != nil {
		t.Fatal(err)
	}
	out, err := newJSON(&Recorder{}).EmitScalar(sc)
	if err != nil {
		t.Fatal(err)
	}
	if out.Style() != event.Plain {
		t.Errorf("expected Plain, got %v", out.Style())
	}
	if sc.Style() != event.Literal || sc.RenderedValue() != "" || sc.IsPlainImplicit() {
		t.Errorf("input event changed: %s", Describe(sc))
	}
}

func TestJSONUnsupportedScalar(t *testing.T) {
	for _, v := range []any{[]byte("raw"), complex(1, 2), struct{}{}, make(chan int), uintptr(1)} {
		rec := &Recorder{}
		_, err := newJSON(rec).EmitScalar(scalar(t, v))
		if !errors.Is(err, ErrUnsupportedScalarType) {
			t.Errorf("%T: expected ErrUnsupportedScalarType, got %v", v, err)
			continue
		}
		var ute *UnsupportedScalarTypeError
		if !errors.As(err, &ute) {
			t.Fatalf("%T: expected *UnsupportedScalarTypeError", v)
		}
		if ute.Type != reflect.TypeOf(v) {
			t.Errorf("expected type %v, got %v", reflect.TypeOf(v), ute.Type)
		}
		if len(rec.Events) != 0 {
			t.Errorf("%T: expected nothing forwarded, got %v", v, rec.Strings())
		}
	}
}

func TestJSONAlias(t *testing.T) {
	for _, start := range []bool{false, true} {
		rec := &Recorder{}
		a, err := event.NewAlias(event.Describe(1), "o1")
		if err != nil {
			t.Fatal(err)
		}
		a = a.WithNeedsExpansion(start)
		out, err := newJSON(rec).EmitAlias(a)
		if err != nil {
			t.Fatal(err)
		}
		if !out.NeedsExpansion() {
			t.Error("expected expansion")
		}
		if len(rec.Events) != 0 {
			t.Errorf("expected alias not forwarded, got %v", rec.Strings())
		}
	}
}

func TestJSONCollections(t *testing.T) {
	src := event.Describe(map[string]int{})
	for _, style := range []event.CollectionStyle{event.Block, event.Flow} {
		rec := &Recorder{}
		j := newJSON(rec)

		ms, _ := event.NewMappingStart(src)
		ss, _ := event.NewSequenceStart(src)
		me, _ := event.NewMappingEnd(src)
		se, _ := event.NewSequenceEnd(src)

		outM, err := j.EmitMappingStart(ms.WithStyle(style).WithAnchor("a"))
		if err != nil {
			t.Fatal(err)
		}
		if outM.Style() != event.Flow || outM.Anchor() != "a" {
			t.Errorf("unexpected %s", Describe(outM))
		}
		outS, err := j.EmitSequenceStart(ss.WithStyle(style))
		if err != nil {
			t.Fatal(err)
		}
		if outS.Style() != event.Flow {
			t.Errorf("unexpected %s", Describe(outS))
		}
		if _, err := j.EmitSequenceEnd(se); err != nil {
			t.Fatal(err)
		}
		if _, err := j.EmitMappingEnd(me); err != nil {
			t.Fatal(err)
		}
		want := []string{
			"MappingStart(Flow &a)",
			"SequenceStart(Flow)",
			"SequenceEnd",
			"MappingEnd",
		}
		if diff := cmp.Diff(want, rec.Strings()); diff != "" {
			t.Errorf("events (-want +got):\n%s", diff)
		}
	}
}

func TestJSONWithoutNext(t *testing.T) {
	out, err := NewJSONEmitter(nil, nil, nil).EmitScalar(scalar(t, 1.5))
	if err != nil {
		t.Fatal(err)
	}
	if Describe(out) != `Scalar(Plain "1.5")` {
		t.Errorf("unexpected %s", Describe(out))
	}
}
