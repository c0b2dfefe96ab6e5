package main

import (
	"fmt"
	"path/filepath"
	"strings"

	projstruct "github.com/SaadRayh/Project-Structure-Generator"
	"github.com/SaadRayh/Project-Structure-Generator/dirbuild"
	"github.com/SaadRayh/Project-Structure-Generator/encode"
	"github.com/SaadRayh/Project-Structure-Generator/plan"

	"github.com/scott-cotton/cli"

	"github.com/fatih/color"
)

// progressLines mirrors entry creation onto the command output as it
// happens.
func progressLines(cfg *MainConfig, cc *cli.Context) dirbuild.ProgressFunc {
	tick, cross := "✓", "✗"
	if cfg.useColor(cc.Out) {
		tick = color.GreenString(tick)
		cross = color.RedString(cross)
	}
	return func(it plan.Item, seeded bool, err error) {
		switch {
		case err != nil:
			fmt.Fprintf(cc.Out, "%s Error creating %s: %v\n", cross, it.Path, err)
		case it.Kind == plan.KindDir:
			fmt.Fprintf(cc.Out, "%s Created folder: %s/\n", tick, it.Path)
		default:
			fmt.Fprintf(cc.Out, "%s Created file: %s\n", tick, it.Path)
			if seeded {
				fmt.Fprintf(cc.Out, "  → Added template content to %s\n", it.Base())
			}
		}
	}
}

// report prints the post-run summary: counts, the rendered tree, the
// project location and the editor outcome. Per-entry failures surface in
// the returned error so the exit status reflects a partial build.
func report(cfg *MainConfig, cc *cli.Context, res *projstruct.Result) error {
	rep := res.Report
	fmt.Fprintln(cc.Out)
	fmt.Fprintln(cc.Out, strings.Repeat("=", 50))
	fmt.Fprintln(cc.Out, "PROJECT STRUCTURE CREATED")
	fmt.Fprintln(cc.Out, strings.Repeat("=", 50))
	fmt.Fprintf(cc.Out, "Folders created: %d\n", rep.Dirs())
	fmt.Fprintf(cc.Out, "Files created: %d\n", rep.Files())
	fmt.Fprintln(cc.Out, "\nStructure:")
	opts := append(cfg.encOpts(cc.Out),
		encode.EncodeRoot(res.Name),
		encode.EncodeSummary(true))
	if err := encode.Encode(res.Plan, cc.Out, opts...); err != nil {
		return err
	}
	loc := res.Root
	if abs, err := filepath.Abs(loc); err == nil {
		loc = abs
	}
	fmt.Fprintf(cc.Out, "\nFull path: %s\n", loc)
	switch {
	case res.Opened:
		fmt.Fprintln(cc.Out, "\nOpened project in the editor.")
	case res.EditorErr != nil:
		fmt.Fprintf(cc.Out, "\n%v\n", res.EditorErr)
		fmt.Fprintln(cc.Out, "You can open the project manually.")
	default:
		fmt.Fprintln(cc.Out, "\nNext steps:")
		fmt.Fprintf(cc.Out, "  1. cd %s\n", res.Root)
		fmt.Fprintln(cc.Out, "  2. Open it in your editor")
		fmt.Fprintln(cc.Out, "  3. Start adding your code")
	}
	return rep.Err()
}

// dryReport renders what a run would have created.
func dryReport(cfg *MainConfig, cc *cli.Context, res *projstruct.Result) error {
	fmt.Fprintf(cc.Out, "Dry run, would create under %s:\n\n", res.Root)
	opts := append(cfg.encOpts(cc.Out),
		encode.EncodeRoot(res.Name),
		encode.EncodeSummary(true))
	if err := encode.Encode(res.Plan, cc.Out, opts...); err != nil {
		return err
	}
	if len(res.Report.Seeded) > 0 {
		fmt.Fprintf(cc.Out, "\nWould seed: %s\n", strings.Join(res.Report.Seeded, ", "))
	}
	return nil
}
