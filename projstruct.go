// Package projstruct turns textual structure sketches into project trees
// on disk.
//
// [Generate] is the whole pipeline: parse a sketch, settle the project name
// and any conflict with an existing directory, materialize the entries, and
// optionally open the result in an editor. The pieces are available
// separately in the parse, plan, encode and dirbuild packages.
package projstruct

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/SaadRayh/Project-Structure-Generator/dirbuild"
	"github.com/SaadRayh/Project-Structure-Generator/editor"
	"github.com/SaadRayh/Project-Structure-Generator/eval"
	"github.com/SaadRayh/Project-Structure-Generator/format"
	"github.com/SaadRayh/Project-Structure-Generator/parse"
	"github.com/SaadRayh/Project-Structure-Generator/plan"
	"github.com/SaadRayh/Project-Structure-Generator/prompt"
)

// Options configures one Generate run.
type Options struct {
	// Sketch is the structure text to realize.
	Sketch []byte
	// Dir is where the project root is created, "." when empty.
	Dir string
	// Name forces the project name, skipping the name prompt.
	Name string
	// Format and Mode steer the parser; the zero values auto-detect the
	// dialect and use the stack resolver.
	Format format.Format
	Mode   format.Mode
	// KeepRoot parses the first sketch line as a regular entry instead of
	// the project's own label.
	KeepRoot bool
	// RejectCode refuses sketches that look like pasted source code.
	RejectCode bool
	// NoSeeds leaves well-known files empty instead of seeding them.
	NoSeeds bool
	// DryRun reports what would be created without touching the
	// filesystem.
	DryRun bool
	// Decider answers the interactive questions. When nil the run is
	// non-interactive: the name must come from Name or the sketch, and an
	// existing target directory is an error.
	Decider prompt.Decider
	// Editor is the command used to open the project, editor.DefaultCommand
	// when empty.
	Editor string
	// OpenEditor opens the project without consulting the Decider.
	OpenEditor bool
	// Progress observes entries as they are created.
	Progress dirbuild.ProgressFunc
}

// Result reports what Generate did.
type Result struct {
	Name   string // final project name, after any rename
	Root   string // created directory, Dir joined with Name
	Plan   *plan.Plan
	Report *dirbuild.Report
	Merged bool // built into a directory that already existed
	Opened bool // an editor was launched on the result

	// EditorErr records a failed editor launch. It is advisory; the
	// project is on disk either way.
	EditorErr error
}

// Generate runs a sketch through the whole pipeline. Entry creation is
// best-effort: per-entry problems land in Result.Report, not in the returned
// error. The error is non-nil for unusable input, an unresolved target
// conflict, an abandoned prompt, or an interrupted run; on interruption a
// tree that Generate itself started is removed again.
func Generate(ctx context.Context, opts Options) (*Result, error) {
	p, err := parse.Parse(opts.Sketch, parseOptions(&opts)...)
	if err != nil {
		return nil, err
	}
	name := opts.Name
	if name == "" {
		name = p.Root
		if opts.Decider != nil {
			name, err = opts.Decider.ProjectName(p.Root)
			if err != nil {
				return nil, err
			}
		}
	}
	if name == "" {
		return nil, ErrNoName
	}
	if err := plan.ValidateSegment(name); err != nil {
		return nil, fmt.Errorf("project name %q: %w", name, err)
	}
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	res := &Result{Plan: p}
	var root string
	removable := false
	if opts.DryRun {
		root = filepath.Join(dir, name)
	} else {
		root, removable, err = settleRoot(dir, &name, res, &opts)
		if err != nil {
			return nil, err
		}
	}
	res.Name = name
	res.Root = root

	buildOpts := []dirbuild.BuildOption{
		dirbuild.WithSeeds(!opts.NoSeeds),
		dirbuild.WithDryRun(opts.DryRun),
		dirbuild.WithEnv(eval.ProjectEnv(name)),
	}
	if opts.Progress != nil {
		buildOpts = append(buildOpts, dirbuild.WithProgress(opts.Progress))
	}
	rep, err := dirbuild.Apply(ctx, root, p, buildOpts...)
	res.Report = rep
	if err != nil {
		// Interrupted. A tree started from scratch is removed; a merge
		// target keeps what it had plus whatever was already built.
		if removable {
			if rmErr := dirbuild.Remove(root); rmErr != nil {
				return res, errors.Join(err, rmErr)
			}
		}
		return res, err
	}

	open := opts.OpenEditor
	if !open && opts.Decider != nil {
		open, err = opts.Decider.OpenEditor()
		if err != nil {
			return res, err
		}
	}
	if open {
		if err := editor.Open(ctx, opts.Editor, root); err != nil {
			res.EditorErr = err
		} else {
			res.Opened = true
		}
	}
	return res, nil
}

// settleRoot prepares dir/name, walking the conflict menu until the target
// is usable. It reports whether the tree may be removed on interruption,
// which is false for merges into pre-existing directories.
func settleRoot(dir string, name *string, res *Result, opts *Options) (string, bool, error) {
	for {
		root := filepath.Join(dir, *name)
		err := dirbuild.PrepareRoot(root, dirbuild.RootFresh)
		if err == nil {
			return root, true, nil
		}
		if !errors.Is(err, dirbuild.ErrTargetExists) || opts.Decider == nil {
			return "", false, err
		}
		choice, newName, derr := opts.Decider.OnConflict(root)
		if derr != nil {
			return "", false, derr
		}
		switch choice {
		case prompt.Rename:
			if err := plan.ValidateSegment(newName); err != nil {
				return "", false, fmt.Errorf("project name %q: %w", newName, err)
			}
			if newName == *name {
				return "", false, fmt.Errorf("%w: %q", dirbuild.ErrTargetExists, root)
			}
			*name = newName
		case prompt.Overwrite:
			if err := dirbuild.PrepareRoot(root, dirbuild.RootOverwrite); err != nil {
				return "", false, err
			}
			return root, true, nil
		case prompt.Merge:
			if err := dirbuild.PrepareRoot(root, dirbuild.RootMerge); err != nil {
				return "", false, err
			}
			res.Merged = true
			return root, false, nil
		default:
			return "", false, ErrCancelled
		}
	}
}

func parseOptions(o *Options) []parse.ParseOption {
	var res []parse.ParseOption
	if o.Format != format.AutoFormat {
		res = append(res, parse.ParseFormat(o.Format))
	}
	if o.Mode != format.StackMode {
		res = append(res, parse.ParseMode(o.Mode))
	}
	if o.KeepRoot {
		res = append(res, parse.KeepRoot(true))
	}
	if o.RejectCode {
		res = append(res, parse.RejectCode(true))
	}
	return res
}
