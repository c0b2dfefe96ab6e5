package parse

import (
	"github.com/SaadRayh/Project-Structure-Generator/format"
)

type parseOpts struct {
	format     format.Format
	mode       format.Mode
	keepRoot   bool
	rejectCode bool
}

type ParseOption func(*parseOpts)

func ParseTree() ParseOption {
	return ParseFormat(format.TreeFormat)
}
func ParseList() ParseOption {
	return ParseFormat(format.ListFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}
func ParseMode(m format.Mode) ParseOption {
	return func(o *parseOpts) { o.mode = m }
}

// KeepRoot disables dropping the first entry as the sketch's own root label.
func KeepRoot(v bool) ParseOption {
	return func(o *parseOpts) { o.keepRoot = v }
}

// RejectCode makes Parse fail with [ErrCodeInput] when the input contains
// markers typical of source code. Interactive callers enable this to catch
// pasted programs before they become deeply nested gibberish on disk.
func RejectCode(v bool) ParseOption {
	return func(o *parseOpts) { o.rejectCode = v }
}
