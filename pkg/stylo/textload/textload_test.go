package textload

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadLatin1(t *testing.T) {
	// "café" with é as the single Latin-1 byte 0xE9.
	path := writeFile(t, "lost.txt", []byte{'c', 'a', 'f', 0xE9, ' ', 'o', 'k'})

	loader, err := New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if loader.Encoding() != DefaultEncoding {
		t.Errorf("Encoding() = %q, want %q", loader.Encoding(), DefaultEncoding)
	}

	text, err := loader.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if text != "café ok" {
		t.Errorf("Load() = %q, want %q", text, "café ok")
	}
}

func TestLoadUTF8(t *testing.T) {
	path := writeFile(t, "hound.txt", []byte("naïve café"))

	loader, err := New("UTF-8")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	text, err := loader.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if text != "naïve café" {
		t.Errorf("Load() = %q", text)
	}
}

func TestLoadMissingFile(t *testing.T) {
	loader, err := New("")
	if err != nil {
		t.Fatal(err)
	}
	_, err = loader.Load(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}

func TestNewUnknownEncoding(t *testing.T) {
	if _, err := New("no-such-encoding"); err == nil {
		t.Error("expected error for unknown encoding")
	}
}

func TestLoadHTML(t *testing.T) {
	page := `<html><head><title>War</title><style>p { color: red }</style>
<script>var x = "ignored";</script></head>
<body><h1>Chapter I</h1><p>The <em>Martians</em> came.</p></body></html>`
	path := writeFile(t, "war.html", []byte(page))

	loader, err := New("UTF-8")
	if err != nil {
		t.Fatal(err)
	}
	text, err := loader.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	for _, want := range []string{"Chapter I", "Martians", "came."} {
		if !strings.Contains(text, want) {
			t.Errorf("extracted text %q missing %q", text, want)
		}
	}
	for _, banned := range []string{"color", "ignored", "<p>"} {
		if strings.Contains(text, banned) {
			t.Errorf("extracted text %q should not contain %q", text, banned)
		}
	}
}
