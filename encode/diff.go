package encode

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/SaadRayh/Project-Structure-Generator/plan"
)

// DiffTrees renders a line diff of two plans drawn as trees: deletions
// prefixed "- ", insertions "+ ", common lines "  ". Color options would
// corrupt the line matching, so both plans are drawn plain.
func DiffTrees(from, to *plan.Plan, opts ...EncodeOption) (string, error) {
	plain := append([]EncodeOption{}, opts...)
	plain = append(plain, EncodeColors(&Colors{Default: colorDefault}))
	fromText, err := EncodeString(from, plain...)
	if err != nil {
		return "", err
	}
	toText, err := EncodeString(to, plain...)
	if err != nil {
		return "", err
	}
	diffCfg := diffpatch.New()
	fromRunes, toRunes, lines := diffCfg.DiffLinesToRunes(fromText, toText)
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)
	var b strings.Builder
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "- "
		case diffpatch.DiffInsert:
			prefix = "+ "
		}
		for _, ln := range strings.Split(strings.TrimRight(d.Text, "\n"), "\n") {
			b.WriteString(prefix)
			b.WriteString(ln)
			b.WriteByte('\n')
		}
	}
	return b.String(), nil
}
