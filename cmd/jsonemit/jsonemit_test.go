package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/google/go-cmp/cmp"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/signadot/jsonemit/config"
	"github.com/signadot/jsonemit/format"
	"github.com/signadot/jsonemit/naming"
	"github.com/signadot/jsonemit/serialize"
)

func jsonText(t *testing.T, v any) string {
	t.Helper()
	d, err := serialize.JSON(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return strings.TrimSpace(string(d))
}

func TestParseInput(t *testing.T) {
	for v, want := range map[string]inputFormat{
		"y": yamlInput, "yaml": yamlInput, "j": jsonInput, "json": jsonInput,
		"m": msgpackInput, "msgpack": msgpackInput,
	} {
		got, err := parseInput(v)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", v, err)
			continue
		}
		if got != want {
			t.Errorf("%s: expected %s, got %s", v, want, got)
		}
	}
	if _, err := parseInput("toml"); !errors.Is(err, errBadInput) {
		t.Errorf("expected errBadInput, got %v", err)
	}
}

func TestInputFor(t *testing.T) {
	tests := []struct {
		path string
		want inputFormat
	}{
		{"doc.yaml", yamlInput},
		{"doc.json", jsonInput},
		{"dir.json/doc", yamlInput},
		{"doc.msgpack", msgpackInput},
		{"doc.mp", msgpackInput},
		{"-", yamlInput},
	}
	for _, tt := range tests {
		if got := inputFor(tt.path, nil); got != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.path, tt.want, got)
		}
	}
	m := msgpackInput
	if got := inputFor("doc.json", &m); got != msgpackInput {
		t.Errorf("expected explicit choice to win, got %s", got)
	}
}

func TestDecodeYAMLDocuments(t *testing.T) {
	docs, err := decodeDocs(strings.NewReader("a: 1\n---\nb: [x, y]\n"), yamlInput)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if got, want := jsonText(t, docs[0]), `{"a": 1}`; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if got, want := jsonText(t, docs[1]), `{"b": ["x", "y"]}`; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestDecodeJSONAndEmpty(t *testing.T) {
	docs, err := decodeDocs(strings.NewReader(`{"k": [true, null]}`), jsonInput)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs))
	}
	if got, want := jsonText(t, docs[0]), `{"k": [true, null]}`; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	docs, err = decodeDocs(strings.NewReader(""), yamlInput)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("expected no documents, got %v", docs)
	}
}

func TestDecodeMsgpack(t *testing.T) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	for _, v := range []any{
		map[string]any{"name": "x", "ids": []any{1, 2}},
		"second",
	} {
		if err := enc.Encode(v); err != nil {
			t.Fatal(err)
		}
	}
	docs, err := decodeDocs(&buf, msgpackInput)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if got, want := jsonText(t, docs[0]), `{"ids": [1, 2], "name": "x"}`; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if got, want := jsonText(t, docs[1]), `"second"`; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRenameKeys(t *testing.T) {
	in := map[string]any{
		"fooBar": map[string]any{"bazQux": 1},
		"list":   []any{map[string]any{"aB": "keepValue"}},
		"n":      map[any]any{"xY": true, 3: "three"},
	}
	want := map[string]any{
		"foo-bar": map[string]any{"baz-qux": 1},
		"list":    []any{map[string]any{"a-b": "keepValue"}},
		"n":       map[any]any{"x-y": true, 3: "three"},
	}
	if diff := cmp.Diff(want, renameKeys(in, naming.Hyphenated)); diff != "" {
		t.Errorf("renamed (-want +got):\n%s", diff)
	}
	if _, ok := in["fooBar"]; !ok {
		t.Error("input changed")
	}
}

func TestPrepareQuery(t *testing.T) {
	docs, err := decodeDocs(strings.NewReader("items: [x, y]\nownerName: z\n"), yamlInput)
	if err != nil {
		t.Fatal(err)
	}
	v, err := prepare(docs[0], naming.Null, "doc.items[1]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "y" {
		t.Errorf("expected %q, got %v", "y", v)
	}
	v, err = prepare(docs[0], naming.Underscored, "doc.owner_name")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "z" {
		t.Errorf("expected %q, got %v", "z", v)
	}
	if _, err := prepare(docs[0], naming.Null, "doc.items["); err == nil {
		t.Error("expected error for a bad expression")
	}
}

func TestPatchJSON(t *testing.T) {
	patch, err := jsonpatch.DecodePatch([]byte(`[
		{"op": "replace", "path": "/a", "value": 2},
		{"op": "add", "path": "/b", "value": "x"}
	]`))
	if err != nil {
		t.Fatal(err)
	}
	c := config.Default()
	c.Output.Format = format.JSONFormat
	d, err := patchJSON(map[string]any{"a": 1}, c, patch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(d, &got); err != nil {
		t.Fatalf("patched output is not JSON: %v\n%s", err, d)
	}
	if diff := cmp.Diff(map[string]any{"a": float64(2), "b": "x"}, got); diff != "" {
		t.Errorf("patched (-want +got):\n%s", diff)
	}

	bad, err := jsonpatch.DecodePatch([]byte(`[{"op": "remove", "path": "/missing"}]`))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := patchJSON(map[string]any{"a": 1}, c, bad); err == nil {
		t.Error("expected error removing a missing path")
	}
}

func TestEmitPatchedKeepsLayout(t *testing.T) {
	patch, err := jsonpatch.DecodePatch([]byte(`[{"op": "add", "path": "/b", "value": [1]}]`))
	if err != nil {
		t.Fatal(err)
	}
	c := config.Default()
	c.Output.Format = format.JSONFormat
	ser := serialize.New(c.SerializeOptions(nil)...)
	var buf bytes.Buffer
	if err := emitPatched(&buf, ser, c, map[string]any{"a": "q"}, patch); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := buf.String(), "{\"a\": \"q\", \"b\": [1]}\n"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestWriteLineDiff(t *testing.T) {
	var buf bytes.Buffer
	if !writeLineDiff(&buf, "a: 1\nb: 2\n", "a: 1\nb: 3\n", nil) {
		t.Error("expected a difference")
	}
	if got, want := buf.String(), " a: 1\n-b: 2\n+b: 3\n"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	buf.Reset()
	if writeLineDiff(&buf, "a: 1\n", "a: 1\n", nil) {
		t.Error("expected no difference")
	}
	if got, want := buf.String(), " a: 1\n"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestTranscode(t *testing.T) {
	got := transcode(naming.Hyphenated, false, []string{"fooBar", "HTTPServer"})
	if diff := cmp.Diff([]string{"foo-bar", "h-t-t-p-server"}, got); diff != "" {
		t.Errorf("apply (-want +got):\n%s", diff)
	}
	got = transcode(naming.Hyphenated, true, []string{"foo-bar"})
	if diff := cmp.Diff([]string{"FooBar"}, got); diff != "" {
		t.Errorf("reverse (-want +got):\n%s", diff)
	}
}
