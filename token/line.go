package token

import "strings"

// Line is one sketch line carrying a usable label.
type Line struct {
	N      int    // 1-based line number in the input
	Raw    string // original text, without the trailing newline
	Label  string // connector glyphs, comments and trailing slashes removed
	Dir    bool   // label had a trailing slash
	Indent int    // width of the leading filler with glyphs normalized to spaces
	Fill   int    // count of leading filler runes, unnormalized
}

// glyphNormalizer rewrites connector glyphs so that indentation can be
// measured as a run of spaces. Branch sequences span three cells, vertical
// rules one. Longer patterns are listed first so they win.
var glyphNormalizer = strings.NewReplacer(
	"├──", "   ",
	"└──", "   ",
	"|--", "   ",
	"`--", "   ",
	"+--", "   ",
	"│", " ",
	"─", " ",
	"|", " ",
)

var connectors = []string{"├──", "└──", "|--", "`--", "+--"}

// Scan tokenizes sketch text into lines. Blank lines, comment-only lines and
// lines that reduce to an empty label are dropped; everything else is kept in
// input order with its original line number.
func Scan(d []byte) []Line {
	var out []Line
	for i, raw := range strings.Split(string(d), "\n") {
		raw = strings.TrimRight(raw, "\r")
		ln, ok := scanLine(i+1, raw)
		if !ok {
			continue
		}
		out = append(out, ln)
	}
	return out
}

// HasConnectors reports whether d contains tree branch glyphs, in either the
// box-drawing or ASCII spelling.
func HasConnectors(d []byte) bool {
	s := string(d)
	for _, c := range connectors {
		if strings.Contains(s, c) {
			return true
		}
	}
	return false
}

// Indented reports whether any non-blank line of d starts with whitespace.
func Indented(d []byte) bool {
	for _, line := range strings.Split(string(d), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if line[0] == ' ' || line[0] == '\t' {
			return true
		}
	}
	return false
}

func scanLine(n int, raw string) (Line, bool) {
	rs := []rune(raw)
	fill := fillRun(rs)
	label := strings.TrimSpace(string(rs[fill:]))
	if label == "" {
		return Line{}, false
	}
	// A '#' anywhere starts a comment; a line that is only a comment is
	// dropped entirely.
	if i := strings.IndexByte(label, '#'); i == 0 {
		return Line{}, false
	} else if i > 0 {
		label = strings.TrimSpace(label[:i])
		if label == "" {
			return Line{}, false
		}
	}
	trimmed := strings.TrimRight(label, "/")
	if trimmed == "" {
		return Line{}, false
	}
	return Line{
		N:      n,
		Raw:    raw,
		Label:  trimmed,
		Dir:    trimmed != label,
		Indent: indentWidth(raw),
		Fill:   fill,
	}, true
}

// indentWidth measures the leading whitespace of the glyph-normalized line.
// Tabs count one cell, matching how the filler run is counted.
func indentWidth(raw string) int {
	w := 0
	for _, r := range glyphNormalizer.Replace(raw) {
		if r != ' ' && r != '\t' {
			break
		}
		w++
	}
	return w
}

// fillRun returns the length of the leading run of filler runes: whitespace,
// box-drawing glyphs and their ASCII stand-ins. A '-' is filler only as the
// tail of an ASCII branch such as |-- so that names like "-x" survive.
func fillRun(rs []rune) int {
	i := 0
	for i < len(rs) {
		switch r := rs[i]; {
		case r == ' ' || r == '\t' || r == '│' || r == '├' || r == '└' || r == '─':
		case r == '|' || r == '`' || r == '+':
		case r == '-' && i > 0 && asciiBranch(rs[i-1]):
		default:
			return i
		}
		i++
	}
	return i
}

func asciiBranch(r rune) bool {
	return r == '|' || r == '`' || r == '+' || r == '-'
}
