package parse

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/SaadRayh/Project-Structure-Generator/debug"
	"github.com/SaadRayh/Project-Structure-Generator/format"
	"github.com/SaadRayh/Project-Structure-Generator/plan"
	"github.com/SaadRayh/Project-Structure-Generator/token"
)

func Parse(d []byte, opts ...ParseOption) (*plan.Plan, error) {
	pOpts := &parseOpts{format: format.AutoFormat, mode: format.StackMode}
	for _, f := range opts {
		f(pOpts)
	}
	if len(bytes.TrimSpace(d)) == 0 {
		return nil, ErrNoStructure
	}
	if pOpts.rejectCode {
		if ind := CodeIndicator(d); ind != "" {
			return nil, fmt.Errorf("%w: found %q", ErrCodeInput, ind)
		}
	}
	lines := token.Scan(d)
	if len(lines) == 0 {
		return nil, ErrNoItems
	}
	f := pOpts.format
	if f == format.AutoFormat {
		f = Detect(d)
	}
	if debug.Parse() {
		debug.Logf("parse: format=%v mode=%v keepRoot=%v lines=%d\n",
			f, pOpts.mode, pOpts.keepRoot, len(lines))
	}
	var p *plan.Plan
	switch {
	case f == format.ListFormat:
		p = parseList(lines, pOpts)
	case pOpts.mode == format.DivMode:
		p = parseDiv(lines, pOpts)
	default:
		p = parseStack(lines, pOpts)
	}
	if len(p.Items) == 0 {
		return nil, ErrNoItems
	}
	return p, nil
}

func ParseString(s string, opts ...ParseOption) (*plan.Plan, error) {
	return Parse([]byte(s), opts...)
}

// Detect guesses the sketch dialect. Connector glyphs or indentation mean a
// drawn tree; a flat run of paths is a list.
func Detect(d []byte) format.Format {
	if token.HasConnectors(d) || token.Indented(d) {
		return format.TreeFormat
	}
	return format.ListFormat
}

var codeIndicators = []string{
	"def ", "class ", "import ", "function ", "const ", "let ", "var ",
	"#!/usr/bin", "if __name__", "public class", "void main",
}

// CodeIndicator returns the first source code marker found in d, or the
// empty string when none is present.
func CodeIndicator(d []byte) string {
	s := string(d)
	for _, ind := range codeIndicators {
		if strings.Contains(s, ind) {
			return ind
		}
	}
	return ""
}

// Output of tree(1) and friends ends with a count line; it is not an entry.
var summaryRE = regexp.MustCompile(`(?i)^\d+\s+director(y|ies),\s+\d+\s+files?$`)

type frame struct {
	indent int
	name   string
}

// parseStack resolves nesting by keeping a stack of open directories. A line
// closes every frame indented at least as far as itself, then joins the
// remaining frame names with its own label.
func parseStack(lines []token.Line, o *parseOpts) *plan.Plan {
	p := &plan.Plan{}
	var stack []frame
	first := true
	for _, ln := range lines {
		if summaryRE.MatchString(ln.Label) {
			continue
		}
		if !validLabel(ln.Label) {
			if debug.Parse() {
				debug.Logf("parse: line %d: skip %q\n", ln.N, ln.Raw)
			}
			continue
		}
		if first && !o.keepRoot {
			first = false
			p.Root = ln.Label
			continue
		}
		first = false
		for len(stack) > 0 && stack[len(stack)-1].indent >= ln.Indent {
			stack = stack[:len(stack)-1]
		}
		segs := make([]string, 0, len(stack)+1)
		for _, fr := range stack {
			segs = append(segs, fr.name)
		}
		segs = append(segs, ln.Label)
		path := strings.Join(segs, "/")
		kind := classify(ln.Label, ln.Dir)
		p.Items = append(p.Items, plan.Item{Path: path, Kind: kind})
		if kind == plan.KindDir {
			stack = append(stack, frame{indent: ln.Indent, name: ln.Label})
		}
	}
	return p
}

// parseDiv derives depth as fill/4 the way older generators did. Every entry
// lands on the path stack, which the next line truncates to its own depth, so
// irregular indentation degrades instead of erroring.
func parseDiv(lines []token.Line, o *parseOpts) *plan.Plan {
	p := &plan.Plan{}
	var pathStack []string
	first := true
	for _, ln := range lines {
		if summaryRE.MatchString(ln.Label) {
			continue
		}
		if !validLabel(ln.Label) {
			if debug.Parse() {
				debug.Logf("parse: line %d: skip %q\n", ln.N, ln.Raw)
			}
			continue
		}
		if first && !o.keepRoot {
			first = false
			p.Root = ln.Label
			continue
		}
		first = false
		level := ln.Fill / 4
		var path string
		if level == 0 {
			path = ln.Label
			pathStack = []string{ln.Label}
		} else {
			adj := level
			if !o.keepRoot {
				adj = level - 1
			}
			if adj > len(pathStack) {
				adj = len(pathStack)
			}
			pathStack = append(pathStack[:adj], ln.Label)
			path = strings.Join(pathStack, "/")
		}
		p.Items = append(p.Items, plan.Item{Path: path, Kind: classify(ln.Label, ln.Dir)})
	}
	return p
}

// parseList reads one path per line. When the root is dropped its name is
// also stripped from entries written as root-relative paths.
func parseList(lines []token.Line, o *parseOpts) *plan.Plan {
	p := &plan.Plan{}
	first := true
	for _, ln := range lines {
		if summaryRE.MatchString(ln.Label) {
			continue
		}
		if first && !o.keepRoot {
			first = false
			p.Root = ln.Label
			continue
		}
		first = false
		path := ln.Label
		if p.Root != "" {
			if path == p.Root {
				continue
			}
			path = strings.TrimPrefix(path, p.Root+"/")
		}
		if !validLabel(path) {
			if debug.Parse() {
				debug.Logf("parse: line %d: skip %q\n", ln.N, ln.Raw)
			}
			continue
		}
		p.Items = append(p.Items, plan.Item{Path: path, Kind: classify(path, ln.Dir)})
	}
	return p
}

// classify decides the entry kind. A trailing slash wins; otherwise a dot in
// the final segment means file and a bare name means directory.
func classify(label string, dir bool) plan.Kind {
	if dir {
		return plan.KindDir
	}
	base := label
	if i := strings.LastIndexByte(label, '/'); i >= 0 {
		base = label[i+1:]
	}
	if strings.Contains(base, ".") {
		return plan.KindFile
	}
	return plan.KindDir
}

func validLabel(label string) bool {
	for _, seg := range strings.Split(label, "/") {
		if plan.ValidateSegment(seg) != nil {
			return false
		}
	}
	return true
}
