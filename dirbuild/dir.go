// Package dirbuild materializes build plans on disk.
package dirbuild

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/SaadRayh/Project-Structure-Generator/debug"
	"github.com/SaadRayh/Project-Structure-Generator/eval"
	"github.com/SaadRayh/Project-Structure-Generator/plan"
)

type buildOpts struct {
	seeds    bool
	dryRun   bool
	env      eval.Env
	progress ProgressFunc
}

type BuildOption func(*buildOpts)

// ProgressFunc observes one entry: seeded tells whether boilerplate went in,
// err is nil on success.
type ProgressFunc func(it plan.Item, seeded bool, err error)

// WithSeeds controls boilerplate for well-known file names. On by default.
func WithSeeds(v bool) BuildOption {
	return func(o *buildOpts) { o.seeds = v }
}

// WithDryRun reports what would be created without touching the filesystem.
func WithDryRun(v bool) BuildOption {
	return func(o *buildOpts) { o.dryRun = v }
}

// WithEnv sets the placeholder environment for seed bodies. The default is
// eval.ProjectEnv of the root's base name.
func WithEnv(env eval.Env) BuildOption {
	return func(o *buildOpts) { o.env = env }
}

func WithProgress(f ProgressFunc) BuildOption {
	return func(o *buildOpts) { o.progress = f }
}

// Apply creates the planned entries under root, which must already exist.
// Work is best-effort and in plan order: a failed entry is recorded in the
// report and the next one is attempted. Directories are idempotent; files
// are truncated and rewritten. Apply stops early only when ctx is done,
// returning the context error with the partial report; what was created
// stays on disk for the caller to keep or remove.
func Apply(ctx context.Context, root string, p *plan.Plan, opts ...BuildOption) (*Report, error) {
	o := &buildOpts{seeds: true}
	for _, f := range opts {
		f(o)
	}
	if o.env == nil {
		o.env = eval.ProjectEnv(filepath.Base(root))
	}
	var table map[string]Seed
	if o.seeds {
		var err error
		table, err = seedTable()
		if err != nil {
			return nil, err
		}
	}
	rep := &Report{Root: root}
	for i := range p.Items {
		it := p.Items[i]
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		seeded, err := o.applyItem(root, it, table)
		if debug.Build() {
			debug.Logf("build: %s seeded=%v err=%v\n", it, seeded, err)
		}
		if err != nil {
			rep.Failures = append(rep.Failures, Failure{Item: it, Err: err})
		} else {
			rep.Created = append(rep.Created, it)
			if seeded {
				rep.Seeded = append(rep.Seeded, it.Path)
			}
		}
		if o.progress != nil {
			o.progress(it, seeded, err)
		}
	}
	return rep, nil
}

func (o *buildOpts) applyItem(root string, it plan.Item, table map[string]Seed) (bool, error) {
	target, err := SafeJoin(root, it.Path)
	if err != nil {
		return false, err
	}
	if o.dryRun {
		_, would := table[it.Base()]
		return would && it.Kind == plan.KindFile, nil
	}
	if it.Kind == plan.KindDir {
		return false, os.MkdirAll(target, 0o755)
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return false, err
	}
	body := ""
	mode := os.FileMode(0o644)
	seeded := false
	if s, ok := table[it.Base()]; ok {
		body, err = eval.ExpandString(s.Body, o.env)
		if err != nil {
			return false, err
		}
		if s.Exec {
			mode = 0o755
		}
		seeded = true
	}
	return seeded, os.WriteFile(target, []byte(body), mode)
}

// Failure records one entry that could not be created.
type Failure struct {
	Item plan.Item
	Err  error
}

// Report lists what one Apply run did.
type Report struct {
	Root     string
	Created  []plan.Item
	Failures []Failure
	Seeded   []string
}

func (r *Report) Ok() bool { return len(r.Failures) == 0 }

// Dirs counts created directories.
func (r *Report) Dirs() int {
	n := 0
	for i := range r.Created {
		if r.Created[i].Kind == plan.KindDir {
			n++
		}
	}
	return n
}

// Files counts created files.
func (r *Report) Files() int { return len(r.Created) - r.Dirs() }

// Err summarizes failures, nil when every entry was created.
func (r *Report) Err() error {
	if r.Ok() {
		return nil
	}
	total := len(r.Created) + len(r.Failures)
	return fmt.Errorf("%w: %d of %d", ErrPartial, len(r.Failures), total)
}

// RootPolicy says what to do when the project root already exists.
type RootPolicy int

const (
	// RootFresh requires that the root not exist yet.
	RootFresh RootPolicy = iota
	// RootOverwrite removes an existing root first.
	RootOverwrite
	// RootMerge builds into an existing directory, keeping its entries.
	RootMerge
)

// PrepareRoot makes root ready for Apply according to policy, creating the
// directory when missing.
func PrepareRoot(root string, policy RootPolicy) error {
	fi, err := os.Lstat(root)
	if errors.Is(err, os.ErrNotExist) {
		return os.MkdirAll(root, 0o755)
	}
	if err != nil {
		return err
	}
	switch policy {
	case RootFresh:
		return fmt.Errorf("%w: %q", ErrTargetExists, root)
	case RootOverwrite:
		if err := os.RemoveAll(root); err != nil {
			return err
		}
		return os.MkdirAll(root, 0o755)
	case RootMerge:
		if !fi.IsDir() {
			return fmt.Errorf("%w: %q is not a directory", ErrTargetExists, root)
		}
		return nil
	}
	return fmt.Errorf("unknown root policy %d", policy)
}

// Remove deletes a project tree, typically after an interrupted build.
func Remove(root string) error {
	return os.RemoveAll(root)
}

// SafeJoin joins rel below root, refusing absolute paths and any result
// that would land outside root.
func SafeJoin(root, rel string) (string, error) {
	if filepath.IsAbs(rel) {
		return "", fmt.Errorf("%w: %q", ErrUnsafePath, rel)
	}
	target := filepath.Join(root, filepath.FromSlash(rel))
	r, err := filepath.Rel(root, target)
	if err != nil {
		return "", err
	}
	if r == ".." || strings.HasPrefix(r, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrUnsafePath, rel)
	}
	return target, nil
}
