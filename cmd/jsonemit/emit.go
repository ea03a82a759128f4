package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/expr-lang/expr"
	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/signadot/jsonemit/config"
	"github.com/signadot/jsonemit/format"
	"github.com/signadot/jsonemit/naming"
	"github.com/signadot/jsonemit/serialize"
)

func emitMain(cfg *EmitConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Emit.Parse(cc, args)
	if err != nil {
		cfg.Emit.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	c, err := cfg.settings()
	if err != nil {
		return err
	}
	ser, err := cfg.serializer(c, cc.Out)
	if err != nil {
		return err
	}
	var patch jsonpatch.Patch
	if cfg.Patch != "" {
		if !c.Output.Format.IsJSON() {
			return fmt.Errorf("%w: -patch requires JSON output", cli.ErrUsage)
		}
		patch, err = readPatch(cfg.Patch)
		if err != nil {
			return err
		}
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	n := 0
	for _, file := range args {
		in := inputFor(file, cfg.Input)
		docs, err := readFile(cc, file, in)
		if err != nil {
			return err
		}
		cfg.logger().Debug("decoded input", "file", file, "format", in, "documents", len(docs))
		for _, doc := range docs {
			v, err := prepare(doc, c.Naming.Keys.Convention(), cfg.Query)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			if n > 0 && c.Output.Format.IsYAML() {
				if _, err := io.WriteString(cc.Out, "---\n"); err != nil {
					return err
				}
			}
			if patch != nil {
				err = emitPatched(cc.Out, ser, c, v, patch)
			} else {
				err = ser.Serialize(cc.Out, v)
			}
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			n++
		}
	}
	return nil
}

// prepare renames the keys of a decoded document and evaluates query over
// it when given.
func prepare(doc any, keys naming.Convention, query string) (any, error) {
	doc = renameKeys(doc, keys)
	if query == "" {
		return doc, nil
	}
	v, err := expr.Eval(query, map[string]any{"doc": doc})
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", query, err)
	}
	return v, nil
}

func readPatch(path string) (jsonpatch.Patch, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", path, err)
	}
	patch, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding patch %s: %w", path, err)
	}
	return patch, nil
}

// emitPatched renders v as plain JSON, applies patch and writes the result
// through ser so that it keeps the configured layout and colors.
func emitPatched(w io.Writer, ser *serialize.Serializer, c *config.Config, v any, patch jsonpatch.Patch) error {
	d, err := patchJSON(v, c, patch)
	if err != nil {
		return err
	}
	var patched any
	if err := yaml.Unmarshal(d, &patched); err != nil {
		return fmt.Errorf("error decoding patched document: %w", err)
	}
	return ser.Serialize(w, patched)
}

func patchJSON(v any, c *config.Config, patch jsonpatch.Patch) ([]byte, error) {
	opts := append(c.SerializeOptions(nil), serialize.WithFormat(format.JSONFormat))
	var buf bytes.Buffer
	if err := serialize.New(opts...).Serialize(&buf, v); err != nil {
		return nil, err
	}
	d, err := patch.Apply(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("error applying patch: %w", err)
	}
	return d, nil
}
