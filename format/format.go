// Package format names the recognized sketch dialects and the indentation
// measurement modes used when parsing them.
package format

import (
	"errors"
	"fmt"
)

// Format identifies the textual dialect of a structure sketch.
type Format int

const (
	// AutoFormat asks the parser to detect the dialect from the input.
	AutoFormat Format = iota
	// TreeFormat is a drawn tree: connector glyphs or indentation carry
	// the nesting.
	TreeFormat
	// ListFormat is one path per line, directories marked by a trailing
	// slash, with no indentation.
	ListFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"a":    AutoFormat,
		"auto": AutoFormat,
		"t":    TreeFormat,
		"tree": TreeFormat,
		"l":    ListFormat,
		"list": ListFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case AutoFormat:
		return []byte("auto"), nil
	case TreeFormat:
		return []byte("tree"), nil
	case ListFormat:
		return []byte("list"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}
