// Package plan holds the parsed representation of a project layout:
// an ordered list of file and directory items, rooted below a project name.
package plan

import (
	"fmt"
	"strings"
)

// Item is one entry of a parsed layout. Path is relative to the project
// root, segments joined by '/'. Items appear in the order they were drawn.
type Item struct {
	Path string
	Kind Kind
}

func (it Item) String() string {
	if it.Kind == KindDir {
		return it.Path + "/"
	}
	return it.Path
}

// Segments splits the item path on '/'.
func (it Item) Segments() []string {
	return strings.Split(it.Path, "/")
}

// Base returns the final path segment.
func (it Item) Base() string {
	segs := it.Segments()
	return segs[len(segs)-1]
}

// Plan is the result of parsing one structure description. Root is the
// detected project label ("" when root-skipping was disabled or no root
// line was present); Items never contain the root segment.
type Plan struct {
	Root  string
	Items []Item
}

func (p *Plan) Len() int { return len(p.Items) }

// Dirs counts directory items.
func (p *Plan) Dirs() int {
	n := 0
	for i := range p.Items {
		if p.Items[i].Kind == KindDir {
			n++
		}
	}
	return n
}

// Files counts file items.
func (p *Plan) Files() int {
	return len(p.Items) - p.Dirs()
}

// Paths returns the item paths in emission order, directories carrying a
// trailing '/'.
func (p *Plan) Paths() []string {
	res := make([]string, len(p.Items))
	for i := range p.Items {
		res[i] = p.Items[i].String()
	}
	return res
}

// ValidateSegment checks that name is a single well-formed path segment:
// non-empty, not "." or "..", and free of separators.
func ValidateSegment(name string) error {
	if name == "" {
		return ErrEmptySegment
	}
	if name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrDotSegment, name)
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrSeparator, name)
	}
	return nil
}

// Validate checks every segment of every item and that no path is absolute.
func (p *Plan) Validate() error {
	for i := range p.Items {
		it := &p.Items[i]
		if strings.HasPrefix(it.Path, "/") {
			return fmt.Errorf("%w: %q", ErrAbsolute, it.Path)
		}
		for _, seg := range it.Segments() {
			if err := ValidateSegment(seg); err != nil {
				return fmt.Errorf("item %q: %w", it.Path, err)
			}
		}
	}
	return nil
}
