package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/signadot/jsonemit/format"
	"github.com/signadot/jsonemit/naming"
	"github.com/signadot/jsonemit/serialize"
	"github.com/signadot/jsonemit/valuefmt"
	"github.com/signadot/jsonemit/writer"
)

// FileName is the configuration file looked up by Find.
const FileName = ".jsonemit.toml"

type Config struct {
	Output    Output    `toml:"output"`
	Naming    Naming    `toml:"naming"`
	Values    Values    `toml:"values"`
	Serialize Serialize `toml:"serialize"`
}

type Output struct {
	Format  format.Format `toml:"format"`
	Indent  int           `toml:"indent"`
	Compact bool          `toml:"compact"`
	// Color is auto, always or never.
	Color string `toml:"color"`
}

type Naming struct {
	Keys  naming.Name `toml:"keys"`
	Enums naming.Name `toml:"enums"`
}

type Values struct {
	TimeLayout string `toml:"time-layout"`
	UTC        bool   `toml:"utc"`
	QuoteEnums bool   `toml:"quote-enums"`
}

type Serialize struct {
	Anchors  bool `toml:"anchors"`
	MaxDepth int  `toml:"max-depth"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		Output: Output{Format: format.YAMLFormat, Indent: 2, Color: "auto"},
		Values: Values{QuoteEnums: true},
		Serialize: Serialize{
			Anchors:  true,
			MaxDepth: 1000,
		},
	}
}

// Load reads path over the defaults. Unknown keys are errors.
func Load(path string) (*Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if meta.IsDefined("output", "indent") && cfg.Output.Indent < 1 {
		return nil, fmt.Errorf("%s: [output].indent must be positive", path)
	}
	if meta.IsDefined("values", "time-layout") && strings.TrimSpace(cfg.Values.TimeLayout) == "" {
		return nil, fmt.Errorf("%s: [values].time-layout is empty", path)
	}
	if meta.IsDefined("serialize", "max-depth") && cfg.Serialize.MaxDepth < 1 {
		return nil, fmt.Errorf("%s: [serialize].max-depth must be positive", path)
	}
	switch cfg.Output.Color {
	case "auto", "always", "never":
	default:
		return nil, fmt.Errorf("%s: [output].color must be auto, always or never, got %q", path, cfg.Output.Color)
	}
	return cfg, nil
}

// Find looks for FileName in startDir and its parents.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// FormatterOptions returns the value formatter options of c.
func (c *Config) FormatterOptions() []valuefmt.Option {
	var opts []valuefmt.Option
	if c.Values.TimeLayout != "" {
		opts = append(opts, valuefmt.WithTimeLayout(c.Values.TimeLayout))
	}
	if c.Values.UTC {
		opts = append(opts, valuefmt.WithUTC(true))
	}
	if !c.Values.QuoteEnums {
		opts = append(opts, valuefmt.WithEnumQuoting(func(any) bool { return false }))
	}
	return opts
}

// SerializeOptions returns the serializer options of c. Colors are
// decided by the caller.
func (c *Config) SerializeOptions(colors *writer.Colors) []serialize.Option {
	return []serialize.Option{
		serialize.WithFormat(c.Output.Format),
		serialize.WithKeyNaming(c.Naming.Keys.Convention()),
		serialize.WithEnumNaming(c.Naming.Enums.Convention()),
		serialize.WithFormatter(valuefmt.New(c.FormatterOptions()...)),
		serialize.WithMaxDepth(c.Serialize.MaxDepth),
		serialize.WithAnchors(c.Serialize.Anchors),
		serialize.WithWriterOptions(
			writer.WithIndent(c.Output.Indent),
			writer.WithCompact(c.Output.Compact),
			writer.WithColors(colors),
		),
	}
}
