package emit

import (
	"bytes"
	"strings"
	"testing"

	"github.com/signadot/jsonemit/debug"
	"github.com/signadot/jsonemit/event"
)

func TestTrace(t *testing.T) {
	buf := &bytes.Buffer{}
	prev := debug.SetOutput(buf)
	defer debug.SetOutput(prev)
	defer debug.Set(true, false, false)()

	chain := NewTrace(NewJSONEmitter(&Recorder{}, nil, nil), "json: ")
	if _, err := chain.EmitScalar(scalar(t, "a")); err != nil {
		t.Fatal(err)
	}
	if _, err := chain.EmitScalar(scalar(t, []byte("a"))); err == nil {
		t.Fatal("expected error")
	}
	al, _ := event.NewAlias(event.Describe(1), "o2")
	if _, err := chain.EmitAlias(al); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := []string{
		`json: Scalar(Plain "") -> Scalar(DoubleQuoted "a")`,
		`json: Scalar(Plain ""): error: unsupported scalar type: []uint8 (kind slice)`,
		`json: Alias(*o2) -> Alias(*o2 expand)`,
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %q", len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("expected %q, got %q", want[i], lines[i])
		}
	}
}

func TestTraceDumpsScalars(t *testing.T) {
	buf := &bytes.Buffer{}
	prev := debug.SetOutput(buf)
	defer debug.SetOutput(prev)
	defer debug.Set(false, true, false)()

	if _, err := NewTrace(nil, "").EmitScalar(scalar(t, 12)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "(int) 12") {
		t.Errorf("expected dump of scalar, got %q", buf.String())
	}
}

func TestChainedNilNext(t *testing.T) {
	var c Chained
	src := event.Describe(nil)
	me, _ := event.NewMappingEnd(src)
	if _, err := c.EmitMappingEnd(me); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	sc := scalar(t, 1).WithRenderedValue("1")
	out, err := c.EmitScalar(sc)
	if err != nil {
		t.Fatal(err)
	}
	if out.RenderedValue() != "1" {
		t.Errorf("expected unchanged scalar, got %s", Describe(out))
	}
}
