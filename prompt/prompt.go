// Package prompt collects the decisions an interactive build asks for.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/SaadRayh/Project-Structure-Generator/plan"
)

// Conflict is the user's choice for a target directory that already exists.
type Conflict int

const (
	Cancel Conflict = iota
	Rename
	Overwrite
	Merge
)

func (c Conflict) String() string {
	s, ok := map[Conflict]string{
		Cancel:    "cancel",
		Rename:    "rename",
		Overwrite: "overwrite",
		Merge:     "merge",
	}[c]
	if ok {
		return s
	}
	return "<unknown conflict choice>"
}

// Decider supplies the decisions a build needs. Implementations that cannot
// ask, like tests and scripted runs, return fixed answers.
type Decider interface {
	// ProjectName returns the name to use, def being the parsed root label.
	ProjectName(def string) (string, error)
	// OnConflict says what to do about an existing target directory; the
	// string is the replacement name when the answer is Rename.
	OnConflict(path string) (Conflict, string, error)
	// OpenEditor reports whether to open the created project in an editor.
	OpenEditor() (bool, error)
}

// Term asks questions line by line on a reader/writer pair, usually the
// terminal.
type Term struct {
	sc  *bufio.Scanner
	out io.Writer
}

func NewTerm(in io.Reader, out io.Writer) *Term {
	return &Term{sc: bufio.NewScanner(in), out: out}
}

func (t *Term) readLine() (string, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(t.sc.Text()), nil
}

func (t *Term) ProjectName(def string) (string, error) {
	for {
		if def != "" {
			fmt.Fprintf(t.out, "Project name [%s]: ", def)
		} else {
			fmt.Fprint(t.out, "Project name: ")
		}
		ln, err := t.readLine()
		if errors.Is(err, io.EOF) {
			if def == "" {
				return "", io.ErrUnexpectedEOF
			}
			return def, nil
		}
		if err != nil {
			return "", err
		}
		if ln == "" {
			if def == "" {
				continue
			}
			return def, nil
		}
		if err := plan.ValidateSegment(ln); err != nil {
			fmt.Fprintf(t.out, "Not a usable name: %v\n", err)
			continue
		}
		return ln, nil
	}
}

func (t *Term) OnConflict(path string) (Conflict, string, error) {
	fmt.Fprintf(t.out, "Directory %q already exists.\n", path)
	fmt.Fprintln(t.out, "  1) rename the new project")
	fmt.Fprintln(t.out, "  2) overwrite the existing directory")
	fmt.Fprintln(t.out, "  3) merge into the existing directory")
	fmt.Fprintln(t.out, "  4) cancel")
	for {
		fmt.Fprint(t.out, "Choose [1-4]: ")
		ln, err := t.readLine()
		if errors.Is(err, io.EOF) {
			return Cancel, "", nil
		}
		if err != nil {
			return Cancel, "", err
		}
		switch ln {
		case "1":
			name, err := t.ProjectName("")
			if err != nil {
				return Cancel, "", err
			}
			return Rename, name, nil
		case "2":
			fmt.Fprintf(t.out, "This deletes %q and everything in it. Type yes to confirm: ", path)
			confirm, err := t.readLine()
			if err != nil && !errors.Is(err, io.EOF) {
				return Cancel, "", err
			}
			if strings.ToLower(confirm) != "yes" {
				fmt.Fprintln(t.out, "Overwrite cancelled.")
				return Cancel, "", nil
			}
			return Overwrite, "", nil
		case "3":
			return Merge, "", nil
		case "4":
			return Cancel, "", nil
		}
		fmt.Fprintln(t.out, "Please answer 1, 2, 3 or 4.")
	}
}

func (t *Term) OpenEditor() (bool, error) {
	fmt.Fprint(t.out, "Open project in VS Code? [y/N]: ")
	ln, err := t.readLine()
	if errors.Is(err, io.EOF) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	switch strings.ToLower(ln) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// ReadSketch reads structure text until two consecutive blank lines or end
// of input. Lines keep their indentation, and later prompts continue on the
// same input.
func (t *Term) ReadSketch() (string, error) {
	fmt.Fprintln(t.out, "Paste your project structure, then finish with two empty lines:")
	var lines []string
	blanks := 0
	for t.sc.Scan() {
		ln := t.sc.Text()
		if strings.TrimSpace(ln) == "" {
			blanks++
			if blanks >= 2 {
				break
			}
		} else {
			blanks = 0
		}
		lines = append(lines, ln)
	}
	if err := t.sc.Err(); err != nil {
		return "", err
	}
	return strings.Join(lines, "\n") + "\n", nil
}

// Script answers without asking, for tests and non-interactive runs.
type Script struct {
	Name     string
	Conflict Conflict
	NewName  string
	Editor   bool
}

func (s *Script) ProjectName(def string) (string, error) {
	if s.Name != "" {
		return s.Name, nil
	}
	if def != "" {
		return def, nil
	}
	return "", errors.New("no project name scripted")
}

func (s *Script) OnConflict(path string) (Conflict, string, error) {
	return s.Conflict, s.NewName, nil
}

func (s *Script) OpenEditor() (bool, error) {
	return s.Editor, nil
}
