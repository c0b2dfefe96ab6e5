package dirbuild

import "errors"

var (
	// ErrTargetExists reports a project root that is already taken.
	ErrTargetExists = errors.New("target already exists")
	// ErrUnsafePath reports an entry that would land outside the root.
	ErrUnsafePath = errors.New("path escapes project root")
	// ErrPartial reports a build where some entries could not be created.
	ErrPartial = errors.New("some entries could not be created")
)
