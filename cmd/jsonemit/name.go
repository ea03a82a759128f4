package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jsonemit/naming"
)

func nameMain(cfg *NameConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Name.Parse(cc, args)
	if err != nil {
		cfg.Name.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: name requires at least one word", cli.ErrUsage)
	}
	var n naming.Name
	if cfg.Convention != "" {
		n, err = naming.ParseName(cfg.Convention)
		if err != nil {
			return fmt.Errorf("%w: -c: %w", cli.ErrUsage, err)
		}
	} else {
		c, err := cfg.settings()
		if err != nil {
			return err
		}
		n = c.Naming.Keys
	}
	cfg.logger().Debug("transcoding", "convention", n, "reverse", cfg.Reverse)
	for _, word := range transcode(n.Convention(), cfg.Reverse, args) {
		fmt.Fprintln(cc.Out, word)
	}
	return nil
}

func transcode(nc naming.Convention, reverse bool, words []string) []string {
	res := make([]string, len(words))
	for i, w := range words {
		if reverse {
			res[i] = nc.Reverse(w)
			continue
		}
		res[i] = nc.Apply(w)
	}
	return res
}
