package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/signadot/jsonemit/format"
	"github.com/signadot/jsonemit/naming"
)

type inputFormat int

const (
	yamlInput inputFormat = iota
	jsonInput
	msgpackInput
)

var errBadInput = errors.New("bad input format")

func parseInput(v string) (inputFormat, error) {
	in, ok := map[string]inputFormat{
		"y":       yamlInput,
		"yml":     yamlInput,
		"yaml":    yamlInput,
		"j":       jsonInput,
		"json":    jsonInput,
		"m":       msgpackInput,
		"mp":      msgpackInput,
		"msgpack": msgpackInput,
	}[v]
	if ok {
		return in, nil
	}
	return 0, fmt.Errorf("%w: %q", errBadInput, v)
}

func (in inputFormat) String() string {
	switch in {
	case jsonInput:
		return "json"
	case msgpackInput:
		return "msgpack"
	default:
		return "yaml"
	}
}

// inputFor returns the input format of path: the -I choice when given,
// otherwise the one implied by the file extension, otherwise YAML.
func inputFor(path string, choice *inputFormat) inputFormat {
	if choice != nil {
		return *choice
	}
	switch filepath.Ext(path) {
	case ".msgpack", ".mp":
		return msgpackInput
	}
	if f, ok := format.FromPath(path); ok && f.IsJSON() {
		return jsonInput
	}
	return yamlInput
}

// readFile decodes every document of path, "-" being standard input.
func readFile(cc *cli.Context, path string, in inputFormat) ([]any, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", path, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	docs, err := decodeDocs(r, in)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return docs, nil
}

type decoder interface {
	Decode(v any) error
}

// decodeDocs reads documents until the end of r. JSON is read with the
// YAML decoder.
func decodeDocs(r io.Reader, in inputFormat) ([]any, error) {
	var dec decoder
	if in == msgpackInput {
		dec = msgpack.NewDecoder(r)
	} else {
		dec = yaml.NewDecoder(r)
	}
	var docs []any
	for {
		var v any
		if err := dec.Decode(&v); err != nil {
			if errors.Is(err, io.EOF) {
				return docs, nil
			}
			return nil, err
		}
		docs = append(docs, v)
	}
}

// renameKeys applies nc to the string keys of decoded maps, recursively.
func renameKeys(v any, nc naming.Convention) any {
	switch x := v.(type) {
	case map[string]any:
		res := make(map[string]any, len(x))
		for k, e := range x {
			res[nc.Apply(k)] = renameKeys(e, nc)
		}
		return res
	case map[any]any:
		res := make(map[any]any, len(x))
		for k, e := range x {
			if s, ok := k.(string); ok {
				k = nc.Apply(s)
			}
			res[k] = renameKeys(e, nc)
		}
		return res
	case []any:
		res := make([]any, len(x))
		for i, e := range x {
			res[i] = renameKeys(e, nc)
		}
		return res
	default:
		return v
	}
}
