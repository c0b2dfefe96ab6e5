// Package encode renders build plans as drawn trees.
package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/SaadRayh/Project-Structure-Generator/plan"
)

// Encode writes p as a drawn tree, the root label first when one is known.
// Entries keep their plan order; parents missing from the plan are implied.
func Encode(p *plan.Plan, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	var b strings.Builder
	root := es.root
	if root == "" {
		root = p.Root
	}
	if root != "" {
		b.WriteString(es.Color(plan.KindDir, RootColor, root+"/"))
		b.WriteByte('\n')
	}
	tree := buildTree(p.Items)
	encodeChildren(&b, es, tree, "")
	if es.summary {
		b.WriteString(es.Color(plan.KindDir, SummaryColor, summaryLine(tree)))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func EncodeString(p *plan.Plan, opts ...EncodeOption) (string, error) {
	var b strings.Builder
	if err := Encode(p, &b, opts...); err != nil {
		return "", err
	}
	return b.String(), nil
}

type treeNode struct {
	name     string
	kind     plan.Kind
	children []*treeNode
	index    map[string]*treeNode
}

func (n *treeNode) child(name string, kind plan.Kind) *treeNode {
	if c, ok := n.index[name]; ok {
		return c
	}
	c := &treeNode{name: name, kind: kind, index: map[string]*treeNode{}}
	n.index[name] = c
	n.children = append(n.children, c)
	return c
}

func buildTree(items []plan.Item) *treeNode {
	root := &treeNode{kind: plan.KindDir, index: map[string]*treeNode{}}
	for _, it := range items {
		segs := it.Segments()
		n := root
		for i, seg := range segs {
			kind := plan.KindDir
			if i == len(segs)-1 {
				kind = it.Kind
			}
			n = n.child(seg, kind)
		}
	}
	return root
}

func encodeChildren(b *strings.Builder, es *EncState, n *treeNode, prefix string) {
	branch, corner, rule, blank := "├── ", "└── ", "│   ", "    "
	if es.ascii {
		branch, corner, rule = "|-- ", "`-- ", "|   "
	}
	for i, c := range n.children {
		last := i == len(n.children)-1
		conn, next := branch, prefix+rule
		if last {
			conn, next = corner, prefix+blank
		}
		name := c.name
		if c.kind == plan.KindDir {
			name += "/"
		}
		b.WriteString(prefix)
		b.WriteString(conn)
		b.WriteString(es.Color(c.kind, NameColor, name))
		b.WriteByte('\n')
		encodeChildren(b, es, c, next)
	}
}

func summaryLine(tree *treeNode) string {
	d, f := countNodes(tree)
	ds, fs := "directories", "files"
	if d == 1 {
		ds = "directory"
	}
	if f == 1 {
		fs = "file"
	}
	return fmt.Sprintf("%d %s, %d %s", d, ds, f, fs)
}

func countNodes(n *treeNode) (dirs, files int) {
	for _, c := range n.children {
		if c.kind == plan.KindDir {
			dirs++
		} else {
			files++
		}
		d, f := countNodes(c)
		dirs += d
		files += f
	}
	return dirs, files
}
