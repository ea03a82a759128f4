package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/jsonemit/config"
	"github.com/signadot/jsonemit/format"
	"github.com/signadot/jsonemit/naming"
	"github.com/signadot/jsonemit/serialize"
	"github.com/signadot/jsonemit/writer"
)

type MainConfig struct {
	ConfigFile string `cli:"name=config desc='configuration file (default: nearest .jsonemit.toml)'"`
	Verbose    bool   `cli:"name=v desc='log debug messages'"`
	Color      bool   `cli:"name=color desc='encode with color'"`

	Out      string
	CloseOut func() error

	Main *cli.Command

	Log *log.Logger
}

// newLogger writes timestamped messages to w at or above level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

func (cfg *MainConfig) logger() *log.Logger {
	if cfg.Log == nil {
		cfg.Log = newLogger(os.Stderr, log.InfoLevel)
	}
	return cfg.Log
}

// settings loads the configuration file named by -config, or the nearest
// one above the working directory, or the defaults.
func (cfg *MainConfig) settings() (*config.Config, error) {
	path := cfg.ConfigFile
	if path == "" {
		p, ok, err := config.Find(".")
		if err != nil {
			return nil, err
		}
		if !ok {
			cfg.logger().Debug("no configuration file, using defaults")
			return config.Default(), nil
		}
		path = p
	}
	c, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	cfg.logger().Debug("loaded configuration", "path", path)
	return c, nil
}

// colors returns the palette for w, or nil. -color forces colors,
// otherwise the configured mode decides and auto colors terminals only.
func (cfg *MainConfig) colors(w io.Writer, c *config.Config) *writer.Colors {
	if cfg.Color {
		return writer.NewColors()
	}
	switch c.Output.Color {
	case "always":
		return writer.NewColors()
	case "never":
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return writer.NewColors()
	}
	return nil
}

func fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func inputFunc(ip **inputFormat) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		in, err := parseInput(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*ip = &in
		return in, nil
	})
}

type EmitConfig struct {
	*MainConfig

	Compact    bool   `cli:"name=compact desc='no space after separators in flow output'"`
	Naming     string `cli:"name=naming desc='key naming convention: null, camel, pascal, hyphenated, underscored, lower'"`
	EnumNaming string `cli:"name=enum-naming desc='enum value naming convention'"`
	Query      string `cli:"name=q desc='expr-lang expression evaluated with the document bound to doc'"`
	Patch      string `cli:"name=patch desc='RFC 6902 JSON patch file applied to JSON output'"`

	Input     *inputFormat
	OutFormat *format.Format

	Emit *cli.Command
}

// serializer returns the serializer for c after applying the flags.
func (cfg *EmitConfig) serializer(c *config.Config, w io.Writer) (*serialize.Serializer, error) {
	if err := cfg.apply(c); err != nil {
		return nil, err
	}
	return serialize.New(c.SerializeOptions(cfg.colors(w, c))...), nil
}

func (cfg *EmitConfig) apply(c *config.Config) error {
	if cfg.OutFormat != nil {
		c.Output.Format = *cfg.OutFormat
	}
	if cfg.Compact {
		c.Output.Compact = true
	}
	if cfg.Naming != "" {
		n, err := naming.ParseName(cfg.Naming)
		if err != nil {
			return fmt.Errorf("%w: -naming: %w", cli.ErrUsage, err)
		}
		c.Naming.Keys = n
	}
	if cfg.EnumNaming != "" {
		n, err := naming.ParseName(cfg.EnumNaming)
		if err != nil {
			return fmt.Errorf("%w: -enum-naming: %w", cli.ErrUsage, err)
		}
		c.Naming.Enums = n
	}
	return nil
}

type NameConfig struct {
	*MainConfig

	Convention string `cli:"name=c desc='naming convention (default: configured key naming)'"`
	Reverse    bool   `cli:"name=r desc='reverse the convention'"`

	Name *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Input     *inputFormat
	OutFormat *format.Format

	Diff *cli.Command
}
