package stoplist

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEnglish(t *testing.T) {
	set, err := English()
	if err != nil {
		t.Fatalf("English: %v", err)
	}
	if set.Len() != 179 {
		t.Errorf("expected 179 english stopwords, got %d", set.Len())
	}
	for _, w := range []string{"the", "and", "on", "no", "y", "wouldn't"} {
		if !set.IsStop(w) {
			t.Errorf("%q should be a stopword", w)
		}
	}
	if set.IsStop("holmes") {
		t.Error("holmes should not be a stopword")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stops.yaml")
	content := "terms:\n  - The\n  - of\n  - \"  \"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	set, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if set.Len() != 2 {
		t.Errorf("expected 2 terms, got %d: %v", set.Len(), set.All())
	}
	if !set.IsStop("the") {
		t.Error("terms should be lowercased")
	}
}

func TestLoadEmptyPathUsesEnglish(t *testing.T) {
	set, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if !set.IsStop("the") {
		t.Error("empty path should load the embedded english list")
	}
}

func TestLoadEmptyFails(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no terms key", "other: [a]\n"},
		{"empty list", "terms: []\n"},
		{"blank terms", "terms: [\" \", \"\"]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "stops.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if !errors.Is(err, ErrEmpty) {
				t.Errorf("expected ErrEmpty, got %v", err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/stops.yaml"); err == nil {
		t.Error("Should error on nonexistent stoplist")
	}
}

func TestFilter(t *testing.T) {
	set, err := New([]string{"the", "on"})
	if err != nil {
		t.Fatal(err)
	}
	got := set.Filter([]string{"the", "cat", "sat", "on", "the", "mat"})
	want := []string{"the", "on", "the"}
	if len(got) != len(want) {
		t.Fatalf("Filter() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Filter()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
