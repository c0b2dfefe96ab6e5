package plan

import (
	"errors"
	"reflect"
	"testing"
)

func TestItemString(t *testing.T) {
	tests := []struct {
		it   Item
		want string
	}{
		{Item{Path: "src", Kind: KindDir}, "src/"},
		{Item{Path: "src/main.py", Kind: KindFile}, "src/main.py"},
	}
	for _, tt := range tests {
		if got := tt.it.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestItemSegments(t *testing.T) {
	it := Item{Path: "a/b/c.txt", Kind: KindFile}
	want := []string{"a", "b", "c.txt"}
	if got := it.Segments(); !reflect.DeepEqual(got, want) {
		t.Errorf("Segments() = %v, want %v", got, want)
	}
	if got := it.Base(); got != "c.txt" {
		t.Errorf("Base() = %q, want %q", got, "c.txt")
	}
}

func TestPlanCounts(t *testing.T) {
	p := &Plan{
		Root: "App",
		Items: []Item{
			{Path: "src", Kind: KindDir},
			{Path: "src/main.py", Kind: KindFile},
			{Path: "README.md", Kind: KindFile},
		},
	}
	if p.Len() != 3 {
		t.Errorf("Len() = %d, want 3", p.Len())
	}
	if p.Dirs() != 1 {
		t.Errorf("Dirs() = %d, want 1", p.Dirs())
	}
	if p.Files() != 2 {
		t.Errorf("Files() = %d, want 2", p.Files())
	}
	want := []string{"src/", "src/main.py", "README.md"}
	if got := p.Paths(); !reflect.DeepEqual(got, want) {
		t.Errorf("Paths() = %v, want %v", got, want)
	}
}

func TestValidateSegment(t *testing.T) {
	tests := []struct {
		name string
		want error
	}{
		{"src", nil},
		{"main.py", nil},
		{"my file.txt", nil},
		{"", ErrEmptySegment},
		{".", ErrDotSegment},
		{"..", ErrDotSegment},
		{"a/b", ErrSeparator},
		{`a\b`, ErrSeparator},
	}
	for _, tt := range tests {
		if err := ValidateSegment(tt.name); !errors.Is(err, tt.want) {
			t.Errorf("ValidateSegment(%q) = %v, want %v", tt.name, err, tt.want)
		}
	}
}

func TestPlanValidate(t *testing.T) {
	ok := &Plan{Items: []Item{
		{Path: "a/b", Kind: KindDir},
		{Path: "a/b/c.txt", Kind: KindFile},
	}}
	if err := ok.Validate(); err != nil {
		t.Fatal(err)
	}
	bad := []struct {
		p    *Plan
		want error
	}{
		{&Plan{Items: []Item{{Path: "/abs", Kind: KindDir}}}, ErrAbsolute},
		{&Plan{Items: []Item{{Path: "a//b", Kind: KindDir}}}, ErrEmptySegment},
		{&Plan{Items: []Item{{Path: "a/../b", Kind: KindFile}}}, ErrDotSegment},
	}
	for _, tt := range bad {
		if err := tt.p.Validate(); !errors.Is(err, tt.want) {
			t.Errorf("Validate(%v) = %v, want %v", tt.p.Items, err, tt.want)
		}
	}
}

func TestKindText(t *testing.T) {
	for _, k := range Kinds() {
		var got Kind
		if err := got.UnmarshalText([]byte(k.String())); err != nil {
			t.Fatal(err)
		}
		if got != k {
			t.Errorf("round trip: got %v, want %v", got, k)
		}
	}
	var k Kind
	if err := k.UnmarshalText([]byte("Link")); err == nil {
		t.Error("expected error for unknown kind")
	}
}
