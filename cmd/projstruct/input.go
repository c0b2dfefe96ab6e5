package main

import (
	"fmt"
	"io"
	"os"

	"github.com/SaadRayh/Project-Structure-Generator/parse"
	"github.com/SaadRayh/Project-Structure-Generator/plan"

	"github.com/scott-cotton/cli"
)

// readInput returns the sketch bytes for a command taking at most one file
// argument, with "-" or no argument meaning stdin.
func readInput(cc *cli.Context, args []string) ([]byte, error) {
	switch len(args) {
	case 0:
		return inputBytes(cc, "-")
	case 1:
		return inputBytes(cc, args[0])
	}
	return nil, fmt.Errorf("%w: at most one sketch file", cli.ErrUsage)
}

func inputBytes(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader = cc.In
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func loadPlan(cfg *MainConfig, cc *cli.Context, path string) (*plan.Plan, error) {
	d, err := inputBytes(cc, path)
	if err != nil {
		return nil, err
	}
	p, err := parse.Parse(d, cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error parsing %q: %w", path, err)
	}
	return p, nil
}
