package main

import (
	"fmt"

	"github.com/SaadRayh/Project-Structure-Generator/dirbuild"
	"github.com/SaadRayh/Project-Structure-Generator/encode"

	"github.com/scott-cotton/cli"
)

func tree(cfg *TreeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tree.Parse(cc, args)
	if err != nil {
		return err
	}
	dir := "."
	switch len(args) {
	case 0:
	case 1:
		dir = args[0]
	default:
		return fmt.Errorf("%w: at most one directory", cli.ErrUsage)
	}
	p, err := dirbuild.Snapshot(dir)
	if err != nil {
		return err
	}
	opts := append(cfg.MainConfig.encOpts(cc.Out), encode.EncodeSummary(true))
	return encode.Encode(p, cc.Out, opts...)
}
