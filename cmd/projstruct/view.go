package main

import (
	"github.com/SaadRayh/Project-Structure-Generator/encode"
	"github.com/SaadRayh/Project-Structure-Generator/parse"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	d, err := readInput(cc, args)
	if err != nil {
		return err
	}
	p, err := parse.Parse(d, cfg.parseOpts()...)
	if err != nil {
		return err
	}
	opts := cfg.MainConfig.encOpts(cc.Out)
	if cfg.Root != "" {
		opts = append(opts, encode.EncodeRoot(cfg.Root))
	}
	if cfg.Summary {
		opts = append(opts, encode.EncodeSummary(true))
	}
	return encode.Encode(p, cc.Out, opts...)
}
