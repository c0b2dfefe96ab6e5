package projstruct

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SaadRayh/Project-Structure-Generator/dirbuild"
	"github.com/SaadRayh/Project-Structure-Generator/parse"
	"github.com/SaadRayh/Project-Structure-Generator/prompt"
)

const appSketch = `App/
├── src/
│   └── main.py
└── README.md
`

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	res, err := Generate(context.Background(), Options{
		Sketch: []byte(appSketch),
		Dir:    dir,
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Name != "App" {
		t.Errorf("name = %q, want App", res.Name)
	}
	if res.Root != filepath.Join(dir, "App") {
		t.Errorf("root = %q", res.Root)
	}
	if !res.Report.Ok() {
		t.Fatalf("failures: %v", res.Report.Failures)
	}
	if fi, err := os.Stat(filepath.Join(res.Root, "src")); err != nil || !fi.IsDir() {
		t.Errorf("src: %v", err)
	}
	d, err := os.ReadFile(filepath.Join(res.Root, "README.md"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(d), "# App\n") {
		t.Errorf("README seeded wrong: %q", string(d[:min(len(d), 20)]))
	}
}

func TestGenerateNameOverride(t *testing.T) {
	dir := t.TempDir()
	res, err := Generate(context.Background(), Options{
		Sketch: []byte(appSketch),
		Dir:    dir,
		Name:   "renamed",
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Name != "renamed" {
		t.Errorf("name = %q", res.Name)
	}
	d, err := os.ReadFile(filepath.Join(res.Root, "README.md"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(d), "# renamed\n") {
		t.Errorf("README uses wrong name: %q", string(d[:min(len(d), 20)]))
	}
}

func TestGenerateDeciderName(t *testing.T) {
	dir := t.TempDir()
	res, err := Generate(context.Background(), Options{
		Sketch:  []byte(appSketch),
		Dir:     dir,
		Decider: &prompt.Script{Name: "fromprompt"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Name != "fromprompt" {
		t.Errorf("name = %q", res.Name)
	}
}

func TestGenerateConflictRename(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "App")
	if err := os.MkdirAll(filepath.Join(old, "keep"), 0o755); err != nil {
		t.Fatal(err)
	}
	res, err := Generate(context.Background(), Options{
		Sketch:  []byte(appSketch),
		Dir:     dir,
		Decider: &prompt.Script{Conflict: prompt.Rename, NewName: "App2"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Name != "App2" || res.Root != filepath.Join(dir, "App2") {
		t.Errorf("built at %q as %q", res.Root, res.Name)
	}
	if _, err := os.Stat(filepath.Join(old, "keep")); err != nil {
		t.Errorf("existing directory touched: %v", err)
	}
}

func TestGenerateConflictOverwrite(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "App")
	if err := os.MkdirAll(old, 0o755); err != nil {
		t.Fatal(err)
	}
	stale := filepath.Join(old, "stale.txt")
	if err := os.WriteFile(stale, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	res, err := Generate(context.Background(), Options{
		Sketch:  []byte(appSketch),
		Dir:     dir,
		Decider: &prompt.Script{Conflict: prompt.Overwrite},
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(stale); !errors.Is(err, os.ErrNotExist) {
		t.Error("overwrite kept stale entry")
	}
	if _, err := os.Stat(filepath.Join(res.Root, "README.md")); err != nil {
		t.Errorf("README missing: %v", err)
	}
}

func TestGenerateConflictMerge(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "App")
	if err := os.MkdirAll(old, 0o755); err != nil {
		t.Fatal(err)
	}
	keep := filepath.Join(old, "keep.txt")
	if err := os.WriteFile(keep, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	res, err := Generate(context.Background(), Options{
		Sketch:  []byte(appSketch),
		Dir:     dir,
		Decider: &prompt.Script{Conflict: prompt.Merge},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Merged {
		t.Error("Merged not set")
	}
	if _, err := os.Stat(keep); err != nil {
		t.Errorf("merge lost existing entry: %v", err)
	}
	if _, err := os.Stat(filepath.Join(res.Root, "src", "main.py")); err != nil {
		t.Errorf("new entry missing: %v", err)
	}
}

func TestGenerateConflictCancel(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "App"), 0o755); err != nil {
		t.Fatal(err)
	}
	_, err := Generate(context.Background(), Options{
		Sketch:  []byte(appSketch),
		Dir:     dir,
		Decider: &prompt.Script{},
	})
	if !errors.Is(err, ErrCancelled) {
		t.Fatalf("err = %v, want ErrCancelled", err)
	}
}

func TestGenerateConflictNonInteractive(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "App"), 0o755); err != nil {
		t.Fatal(err)
	}
	_, err := Generate(context.Background(), Options{
		Sketch: []byte(appSketch),
		Dir:    dir,
	})
	if !errors.Is(err, dirbuild.ErrTargetExists) {
		t.Fatalf("err = %v, want ErrTargetExists", err)
	}
}

func TestGenerateDryRun(t *testing.T) {
	dir := t.TempDir()
	res, err := Generate(context.Background(), Options{
		Sketch: []byte(appSketch),
		Dir:    dir,
		DryRun: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Report.Dirs() != 1 || res.Report.Files() != 2 {
		t.Errorf("report dirs=%d files=%d", res.Report.Dirs(), res.Report.Files())
	}
	if _, err := os.Stat(res.Root); !errors.Is(err, os.ErrNotExist) {
		t.Error("dry run created the root")
	}
}

func TestGenerateInterrupted(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Generate(ctx, Options{
		Sketch: []byte(appSketch),
		Dir:    dir,
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "App")); !errors.Is(err, os.ErrNotExist) {
		t.Error("interrupted tree not removed")
	}
}

func TestGenerateErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Generate(context.Background(), Options{Sketch: nil, Dir: dir})
	if !errors.Is(err, parse.ErrNoStructure) {
		t.Errorf("err = %v, want ErrNoStructure", err)
	}
	_, err = Generate(context.Background(), Options{
		Sketch:   []byte("a.txt\nb.txt\n"),
		Dir:      dir,
		KeepRoot: true,
	})
	if !errors.Is(err, ErrNoName) {
		t.Errorf("err = %v, want ErrNoName", err)
	}
}

func TestGenerateEditor(t *testing.T) {
	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("no true binary on PATH")
	}
	dir := t.TempDir()
	res, err := Generate(context.Background(), Options{
		Sketch:     []byte(appSketch),
		Dir:        dir,
		OpenEditor: true,
		Editor:     "true",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Opened || res.EditorErr != nil {
		t.Errorf("opened=%v editorErr=%v", res.Opened, res.EditorErr)
	}
}

func TestGenerateEditorMissingNonFatal(t *testing.T) {
	dir := t.TempDir()
	res, err := Generate(context.Background(), Options{
		Sketch:     []byte(appSketch),
		Dir:        dir,
		OpenEditor: true,
		Editor:     "definitely-not-an-editor-a8f2",
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Opened || res.EditorErr == nil {
		t.Errorf("opened=%v editorErr=%v", res.Opened, res.EditorErr)
	}
	if _, statErr := os.Stat(filepath.Join(res.Root, "README.md")); statErr != nil {
		t.Errorf("project missing despite editor failure: %v", statErr)
	}
}
