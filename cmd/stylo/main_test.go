package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cognicore/stylo/internal/logging"
	"github.com/cognicore/stylo/pkg/stylo"
	"github.com/cognicore/stylo/pkg/stylo/config"
	"github.com/cognicore/stylo/pkg/stylo/store"
	"github.com/cognicore/stylo/pkg/stylo/store/sqlite"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Charts.Dir = ""
	for i, body := range []string{"The cat sat on the mat.", "A dog ran in the park.", "The cat ran away."} {
		path := filepath.Join(dir, cfg.Corpora[i].Author+".txt")
		if err := os.WriteFile(path, []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
		cfg.Corpora[i].Path = path
	}
	return cfg
}

func TestBuildEngineFiles(t *testing.T) {
	cfg := testConfig(t)

	engine, src, cleanup, err := buildEngine(context.Background(), cfg, "", logging.NewDiscard())
	if err != nil {
		t.Fatalf("buildEngine failed: %v", err)
	}
	defer cleanup()

	if engine == nil {
		t.Fatal("Expected non-nil engine")
	}
	fs, ok := src.(stylo.FileSource)
	if !ok {
		t.Fatalf("expected FileSource, got %T", src)
	}
	if len(fs.Files) != 3 || fs.Files[2].Author != "unknown" {
		t.Errorf("unexpected files %+v", fs.Files)
	}

	texts, err := src.Texts(context.Background())
	if err != nil {
		t.Fatalf("Texts: %v", err)
	}
	if texts[0].Body != "The cat sat on the mat." {
		t.Errorf("first body = %q", texts[0].Body)
	}
}

func TestBuildEngineLibrary(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)
	dbPath := filepath.Join(t.TempDir(), "library.db")

	st, err := sqlite.OpenSQLite(ctx, dbPath)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range cfg.Corpora {
		body, err := os.ReadFile(c.Path)
		if err != nil {
			t.Fatal(err)
		}
		if err := st.UpsertCorpus(ctx, store.Corpus{Author: c.Author, Body: string(body)}); err != nil {
			t.Fatal(err)
		}
	}
	st.Close()

	_, src, cleanup, err := buildEngine(ctx, cfg, dbPath, logging.NewDiscard())
	if err != nil {
		t.Fatalf("buildEngine failed: %v", err)
	}
	defer cleanup()

	if _, ok := src.(stylo.StoreSource); !ok {
		t.Fatalf("expected StoreSource, got %T", src)
	}
	texts, err := src.Texts(ctx)
	if err != nil {
		t.Fatalf("Texts: %v", err)
	}
	if len(texts) != 3 || !strings.HasPrefix(texts[1].Body, "A dog") {
		t.Errorf("unexpected texts %+v", texts)
	}
}

func TestBuildEngineInvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Unknown = "mystery"

	if _, _, _, err := buildEngine(context.Background(), cfg, "", logging.NewDiscard()); err == nil {
		t.Error("buildEngine should fail when no corpus carries the unknown label")
	}
}
