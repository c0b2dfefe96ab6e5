package main

import (
	projstruct "github.com/SaadRayh/Project-Structure-Generator"
	"github.com/SaadRayh/Project-Structure-Generator/prompt"

	"github.com/scott-cotton/cli"
)

func gen(cfg *GenConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Gen.Parse(cc, args)
	if err != nil {
		return err
	}
	d, err := readInput(cc, args)
	if err != nil {
		return err
	}
	ctx, cancel := notifyInterrupt(cc)
	defer cancel()

	o := projstruct.Options{
		Sketch:     d,
		Dir:        cfg.Dir,
		Name:       cfg.Name,
		KeepRoot:   cfg.KeepRoot,
		NoSeeds:    cfg.NoSeeds,
		DryRun:     cfg.DryRun,
		OpenEditor: cfg.Edit,
		Editor:     cfg.Editor,
	}
	if cfg.Format != nil {
		o.Format = *cfg.Format
	}
	if cfg.Mode != nil {
		o.Mode = *cfg.Mode
	}
	if !cfg.DryRun && !cfg.Quiet {
		o.Progress = progressLines(cfg.MainConfig, cc)
	}
	switch {
	case cfg.Force:
		o.Decider = &prompt.Script{Conflict: prompt.Overwrite}
	case cfg.Merge:
		o.Decider = &prompt.Script{Conflict: prompt.Merge}
	case !cfg.Yes:
		// The sketch may have come over stdin, in which case the prompts
		// see end of input and fall back to their defaults.
		o.Decider = prompt.NewTerm(cc.In, cc.Out)
	}
	res, err := projstruct.Generate(ctx, o)
	if err != nil {
		return err
	}
	if cfg.Quiet {
		return res.Report.Err()
	}
	if cfg.DryRun {
		return dryReport(cfg.MainConfig, cc, res)
	}
	return report(cfg.MainConfig, cc, res)
}
