package main

import (
	"fmt"
	"strings"

	projstruct "github.com/SaadRayh/Project-Structure-Generator"
	"github.com/SaadRayh/Project-Structure-Generator/format"
	"github.com/SaadRayh/Project-Structure-Generator/parse"
	"github.com/SaadRayh/Project-Structure-Generator/prompt"

	"github.com/scott-cotton/cli"
)

// session is the classic interactive run: banner, examples, a pasted
// sketch, prompts, then the build.
func session(cfg *MainConfig, cc *cli.Context) error {
	if !cfg.Quiet {
		fmt.Fprintln(cc.Out, "Project Structure Generator")
		fmt.Fprintln(cc.Out, strings.Repeat("=", 60))
		fmt.Fprint(cc.Out, exampleText)
	}

	term := prompt.NewTerm(cc.In, cc.Out)
	sketch, err := term.ReadSketch()
	if err != nil {
		return err
	}
	if cfg.Format == nil && !cfg.Quiet {
		switch parse.Detect([]byte(sketch)) {
		case format.TreeFormat:
			fmt.Fprintln(cc.Out, "Detected tree format...")
		case format.ListFormat:
			fmt.Fprintln(cc.Out, "Detected simple list format...")
		}
	}
	// Parse up front so sketch problems surface before any prompts.
	p, err := parse.Parse([]byte(sketch), append(cfg.parseOpts(), parse.RejectCode(true))...)
	if err != nil {
		return err
	}
	if !cfg.Quiet {
		fmt.Fprintf(cc.Out, "Found %d items to create\n", p.Len())
	}

	ctx, cancel := notifyInterrupt(cc)
	defer cancel()

	o := projstruct.Options{
		Sketch:     []byte(sketch),
		KeepRoot:   cfg.KeepRoot,
		RejectCode: true,
		Decider:    term,
	}
	if cfg.Format != nil {
		o.Format = *cfg.Format
	}
	if cfg.Mode != nil {
		o.Mode = *cfg.Mode
	}
	if !cfg.Quiet {
		o.Progress = progressLines(cfg, cc)
	}
	res, err := projstruct.Generate(ctx, o)
	if err != nil {
		return err
	}
	if cfg.Quiet {
		return res.Report.Err()
	}
	return report(cfg, cc, res)
}

const exampleText = `
Tree format:

    MyApp/
    ├── src/
    │   ├── main.py
    │   └── utils.py
    ├── tests/
    └── README.md

List format:

    MyApp/
    MyApp/src/
    MyApp/src/main.py
    MyApp/README.md

`
