package encode

import "github.com/SaadRayh/Project-Structure-Generator/plan"

type EncState struct {
	Color   func(plan.Kind, ColorAttr, string) string
	root    string
	ascii   bool
	summary bool
}

type EncodeOption func(*EncState)

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// EncodeRoot overrides the root label shown above the tree. Handy when the
// project was renamed after parsing.
func EncodeRoot(name string) EncodeOption {
	return func(es *EncState) { es.root = name }
}

// EncodeASCII draws connectors with |-- and `-- instead of box glyphs.
func EncodeASCII(v bool) EncodeOption {
	return func(es *EncState) { es.ascii = v }
}

// EncodeSummary appends a "N directories, M files" line. The parser skips
// such lines, so summarized output still round-trips.
func EncodeSummary(v bool) EncodeOption {
	return func(es *EncState) { es.summary = v }
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{}
	for _, f := range opts {
		f(es)
	}
	if es.Color == nil {
		es.Color = func(_ plan.Kind, _ ColorAttr, s string) string { return s }
	}
	return es
}
