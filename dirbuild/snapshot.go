package dirbuild

import (
	"io/fs"
	"path/filepath"

	"github.com/SaadRayh/Project-Structure-Generator/plan"
)

// Snapshot reads an existing directory tree back into a plan, entries in
// lexical walk order, paths relative to root. Root's base name becomes the
// plan root.
func Snapshot(root string) (*plan.Plan, error) {
	p := &plan.Plan{Root: filepath.Base(root)}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		kind := plan.KindFile
		if d.IsDir() {
			kind = plan.KindDir
		}
		p.Items = append(p.Items, plan.Item{Path: filepath.ToSlash(rel), Kind: kind})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}
