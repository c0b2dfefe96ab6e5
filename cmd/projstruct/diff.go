package main

import (
	"fmt"
	"io"
	"os"

	"github.com/SaadRayh/Project-Structure-Generator/dirbuild"
	"github.com/SaadRayh/Project-Structure-Generator/encode"
	"github.com/SaadRayh/Project-Structure-Generator/plan"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff takes two sketches or directories", cli.ErrUsage)
	}
	from, err := diffPlan(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	to, err := diffPlan(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	s, err := encode.DiffTrees(from, to, encode.EncodeASCII(cfg.ASCII))
	if err != nil {
		return err
	}
	_, err = io.WriteString(cc.Out, s)
	return err
}

// diffPlan loads one side of a diff: a sketch file, "-" for stdin, or an
// existing directory, which is snapshotted.
func diffPlan(cfg *MainConfig, cc *cli.Context, arg string) (*plan.Plan, error) {
	if arg != "-" {
		if fi, err := os.Stat(arg); err == nil && fi.IsDir() {
			return dirbuild.Snapshot(arg)
		}
	}
	return loadPlan(cfg, cc, arg)
}
