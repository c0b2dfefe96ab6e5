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
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "f",
			Aliases:     []string{"format"},
			Description: "sketch dialect: auto/a, tree/t, list/l",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.Format), "(format)"),
		},
		&cli.Opt{
			Name:        "m",
			Aliases:     []string{"mode"},
			Description: "nesting resolver: stack/s, div/d",
			Type:        cli.NamedFuncOpt(cfg.modeFunc(&cfg.Mode), "(mode)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "projstruct").
		WithSynopsis("projstruct [opts] [command [opts]]").
		WithDescription(mainDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return projstructMain(cfg, cc, args)
		}).
		WithSubs(
			GenCommand(cfg),
			ViewCommand(cfg),
			DiffCommand(cfg),
			TreeCommand(cfg))
}

const mainDescription = `projstruct turns textual structure sketches into project
directory trees.

A sketch is either a drawn tree

	MyApp/
	├── src/
	│   └── main.py
	└── README.md

or a flat list of slash-terminated paths

	MyApp/
	MyApp/src/
	MyApp/src/main.py
	MyApp/README.md

Run without a command for an interactive session: paste a sketch, settle
the project name, and the tree is created under the current directory with
well-known files like README.md seeded.`

func GenCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GenConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Gen, "gen").
		WithAliases("g", "ge").
		WithSynopsis("gen [opts] [file]").
		WithDescription("generate a project tree from a sketch file or stdin").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return gen(cfg, cc, args)
		})
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [opts] [file]").
		WithDescription("parse a sketch and render the resulting tree without creating it").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff <old> <new>").
		WithDescription("diff two trees, each a sketch file, '-' for stdin, or an existing directory").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func TreeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TreeConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Tree, "tree").
		WithAliases("t", "tr").
		WithSynopsis("tree [dir]").
		WithDescription("render a directory on disk as a sketch").
		WithRun(func(cc *cli.Context, args []string) error {
			return tree(cfg, cc, args)
		})
}
