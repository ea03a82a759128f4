package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "jsonemit").
		WithSynopsis("jsonemit [opts] command [opts]").
		WithDescription("jsonemit renders documents through the JSON or YAML event chain.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jsonemitMain(cfg, cc, args)
		}).
		WithSubs(
			EmitCommand(cfg),
			NameCommand(cfg),
			DiffCommand(cfg))
}

func EmitCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EmitConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: yaml/y, json/j, msgpack/m (default from file extension)",
			Type:        cli.NamedFuncOpt(inputFunc(&cfg.Input), "(format)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(fmtFunc(&cfg.OutFormat), "(format)"),
		})

	cmd := cli.NewCommand("emit").
		WithAliases("e").
		WithSynopsis("emit [-I fmt] [-O fmt] [-naming n] [-q expr] [-patch file] [files]").
		WithDescription("Decode documents and write them through the emitter chain.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return emitMain(cfg, cc, args)
		})
	cfg.Emit = cmd
	return cmd
}

func NameCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &NameConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("name").
		WithAliases("n").
		WithSynopsis("name [-c convention] [-r] words...").
		WithDescription("Apply a naming convention to each word, or reverse it with -r.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return nameMain(cfg, cc, args)
		})
	cfg.Name = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: yaml/y, json/j, msgpack/m (default from file extension)",
			Type:        cli.NamedFuncOpt(inputFunc(&cfg.Input), "(format)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "rendering compared: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(fmtFunc(&cfg.OutFormat), "(format)"),
		})
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff [-I fmt] [-O fmt] file1 file2").
		WithDescription("Emit two documents and print a line diff of the renderings.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diffMain(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}
