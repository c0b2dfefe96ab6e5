package projstruct

import "errors"

var (
	// ErrCancelled reports a run abandoned at a prompt.
	ErrCancelled = errors.New("generation cancelled")
	// ErrNoName reports that no project name could be determined.
	ErrNoName = errors.New("no project name")
)
