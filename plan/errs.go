package plan

import "errors"

var (
	ErrEmptySegment = errors.New("empty path segment")
	ErrDotSegment   = errors.New("'.' and '..' segments not allowed")
	ErrSeparator    = errors.New("path separator inside segment")
	ErrAbsolute     = errors.New("absolute paths not allowed")
)
