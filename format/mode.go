package format

import (
	"errors"
	"fmt"
)

// Mode selects how tree indentation is turned into nesting depth.
type Mode int

const (
	// StackMode resolves depth by popping a stack of open directories
	// whose indent is at least the current line's indent. It tolerates
	// irregular indentation.
	StackMode Mode = iota
	// DivMode divides the raw filler rune count by four. It reproduces
	// older generators and assumes regular four-cell indentation.
	DivMode
)

var ErrBadMode = errors.New("bad mode")

func ParseMode(v string) (Mode, error) {
	m, ok := map[string]Mode{
		"s":      StackMode,
		"stack":  StackMode,
		"d":      DivMode,
		"div":    DivMode,
		"legacy": DivMode,
	}[v]
	if ok {
		return m, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadMode, v)
}

func (m Mode) String() string {
	d, err := m.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (m Mode) MarshalText() ([]byte, error) {
	switch m {
	case StackMode:
		return []byte("stack"), nil
	case DivMode:
		return []byte("div"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a mode>", m)
	}
}

func (m *Mode) UnmarshalText(d []byte) error {
	pm, err := ParseMode(string(d))
	if err != nil {
		return err
	}
	*m = pm
	return nil
}
