package main

import (
	"fmt"
	"io"
	"os"

	"github.com/SaadRayh/Project-Structure-Generator/encode"
	"github.com/SaadRayh/Project-Structure-Generator/format"
	"github.com/SaadRayh/Project-Structure-Generator/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color    bool `cli:"name=color desc='render trees with color'"`
	ASCII    bool `cli:"name=ascii desc='draw tree connectors in plain ascii'"`
	Quiet    bool `cli:"name=q aliases=quiet desc='suppress progress and summary output'"`
	KeepRoot bool `cli:"name=keepRoot aliases=k desc='treat the first sketch line as a regular entry'"`

	Format *format.Format
	Mode   *format.Mode

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) modeFunc(mp **format.Mode) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		m, err := format.ParseMode(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*mp = &m
		return m, nil
	})
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	res := []parse.ParseOption{
		parse.KeepRoot(cfg.KeepRoot),
	}
	if cfg.Format != nil {
		res = append(res, parse.ParseFormat(*cfg.Format))
	}
	if cfg.Mode != nil {
		res = append(res, parse.ParseMode(*cfg.Mode))
	}
	return res
}

// useColor decides whether output to w gets color: on when -color was
// given, off when -color was explicitly set false, otherwise on for a
// terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeASCII(cfg.ASCII),
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type GenConfig struct {
	*MainConfig

	Name    string `cli:"name=n aliases=name desc='project name, skips the name prompt'"`
	Dir     string `cli:"name=C aliases=dir desc='parent directory for the project root'"`
	Yes     bool   `cli:"name=yes desc='never prompt: fail on conflicts, keep defaults'"`
	Force   bool   `cli:"name=force desc='replace an existing target without asking'"`
	Merge   bool   `cli:"name=merge desc='build into an existing target without asking'"`
	NoSeeds bool   `cli:"name=noSeeds desc='leave well-known files empty'"`
	DryRun  bool   `cli:"name=dryRun desc='report what would be created, touch nothing'"`
	Edit    bool   `cli:"name=edit desc='open the created project in the editor'"`
	Editor  string `cli:"name=editor desc='editor command, default code'"`

	Gen *cli.Command
}

type ViewConfig struct {
	*MainConfig

	Summary bool   `cli:"name=s aliases=summary desc='append a directory and file count'"`
	Root    string `cli:"name=root desc='override the root label'"`

	View *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type TreeConfig struct {
	*MainConfig

	Tree *cli.Command
}
