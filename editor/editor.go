// Package editor launches a code editor on a created project.
package editor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// DefaultCommand is the editor tried when none is configured.
const DefaultCommand = "code"

// ErrNotFound reports that the editor binary is not on PATH. Callers treat
// it as advisory: a missing editor never fails a build.
var ErrNotFound = errors.New("editor not found")

// Open runs the editor command (DefaultCommand when empty) with path as its
// argument and waits for it to exit. Editors like VS Code hand the path off
// to a running instance and return quickly.
func Open(ctx context.Context, cmdName, path string) error {
	if cmdName == "" {
		cmdName = DefaultCommand
	}
	bin, err := exec.LookPath(cmdName)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrNotFound, cmdName)
	}
	c := exec.CommandContext(ctx, bin, path)
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("editor %s: %w", cmdName, err)
	}
	return nil
}
