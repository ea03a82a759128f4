package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/jsonemit/serialize"
	"github.com/signadot/jsonemit/writer"
)

func diffMain(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	c, err := cfg.settings()
	if err != nil {
		return err
	}
	if cfg.OutFormat != nil {
		c.Output.Format = *cfg.OutFormat
	}
	// renderings are compared uncolored
	ser := serialize.New(c.SerializeOptions(nil)...)
	from, err := render(cc, ser, args[0], cfg.Input)
	if err != nil {
		return err
	}
	to, err := render(cc, ser, args[1], cfg.Input)
	if err != nil {
		return err
	}
	differs := writeLineDiff(cc.Out, from, to, cfg.colors(cc.Out, c))
	cfg.logger().Debug("compared", "from", args[0], "to", args[1], "differs", differs)
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// render emits every document of path and returns the concatenated text.
func render(cc *cli.Context, ser *serialize.Serializer, path string, choice *inputFormat) (string, error) {
	docs, err := readFile(cc, path, inputFor(path, choice))
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	for i, doc := range docs {
		if i > 0 && ser.Format().IsYAML() {
			buf.WriteString("---\n")
		}
		if err := ser.Serialize(&buf, doc); err != nil {
			return "", fmt.Errorf("%s: %w", path, err)
		}
	}
	return buf.String(), nil
}

// writeLineDiff writes from and to line by line, prefixing removed lines
// with "-", added ones with "+" and common ones with a space. It reports
// whether there was any change.
func writeLineDiff(w io.Writer, from, to string, colors *writer.Colors) bool {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	differs := false
	for _, d := range diffs {
		prefix, paint := " ", func(s string) string { return s }
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix, differs = "-", true
			if colors != nil {
				paint = func(s string) string { return color.RedString("%s", s) }
			}
		case diffmatchpatch.DiffInsert:
			prefix, differs = "+", true
			if colors != nil {
				paint = func(s string) string { return color.GreenString("%s", s) }
			}
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			line = strings.TrimSuffix(line, "\n")
			fmt.Fprintln(w, paint(prefix+line))
		}
	}
	return differs
}
