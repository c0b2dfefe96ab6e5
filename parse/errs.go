package parse

import "errors"

var (
	// ErrNoStructure reports input that is empty or all whitespace.
	ErrNoStructure = errors.New("no structure provided")
	// ErrNoItems reports input that contained text but no usable entries.
	ErrNoItems = errors.New("could not parse structure")
	// ErrCodeInput reports input that looks like source code rather than a
	// directory sketch. Detection is opt-in, see [RejectCode].
	ErrCodeInput = errors.New("input looks like code, not a directory structure")
)
