package chart

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func sampleChart() Chart {
	styles := DefaultStyles()
	return Chart{
		Slug:   "word-length",
		Title:  "Word Length",
		XLabel: "Samples",
		YLabel: "Counts",
		Series: []Series{
			{Label: "a", Style: styles.At(0), Points: []Point{{"3", 4}, {"2", 1}}},
			{Label: "b", Style: styles.At(1), Points: []Point{{"4", 2}, {"3", 2}, {"1", 1}}},
		},
	}
}

func TestCategoriesFirstAppearance(t *testing.T) {
	got := sampleChart().Categories()
	want := []string{"3", "2", "4", "1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Categories() = %v, want %v", got, want)
	}
}

func TestStyleCycleWraps(t *testing.T) {
	styles := DefaultStyles()
	if styles.At(0).Name != "solid" || styles.At(1).Name != "dotted" || styles.At(2).Name != "dashed" {
		t.Errorf("unexpected default order: %v", styles)
	}
	if styles.At(3).Name != "solid" {
		t.Errorf("At(3) should wrap to solid, got %s", styles.At(3).Name)
	}

	var empty StyleCycle
	if empty.At(5).Name != "solid" {
		t.Error("empty cycle should fall back to solid")
	}
}

func TestDefaultStylesIndependent(t *testing.T) {
	a := DefaultStyles()
	a[0] = Dashed
	if DefaultStyles().At(0).Name != "solid" {
		t.Error("modifying one cycle should not affect another")
	}
}

func TestRecorder(t *testing.T) {
	var rec Recorder
	loc, err := rec.Render(sampleChart())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if loc != "memory:word-length" {
		t.Errorf("unexpected location %q", loc)
	}
	if len(rec.Charts) != 1 {
		t.Errorf("expected 1 recorded chart, got %d", len(rec.Charts))
	}
}

func TestFileSinkWritesPNG(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")
	sink, err := NewFileSink(dir, "png", "run1")
	if err != nil {
		t.Fatalf("NewFileSink: %v", err)
	}

	path, err := sink.Render(sampleChart())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if filepath.Base(path) != "run1-word-length.png" {
		t.Errorf("unexpected file name %s", path)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("chart file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("chart file is empty")
	}
}

func TestFileSinkEmptyChart(t *testing.T) {
	sink, err := NewFileSink(t.TempDir(), "svg", "")
	if err != nil {
		t.Fatalf("NewFileSink: %v", err)
	}
	c := Chart{Slug: "empty", Title: "Empty", Series: []Series{{Label: "a"}}}
	if _, err := sink.Render(c); err != nil {
		t.Errorf("empty chart should still render: %v", err)
	}
}

func TestNewFileSinkRejectsFormat(t *testing.T) {
	if _, err := NewFileSink(t.TempDir(), "gif", ""); err == nil {
		t.Error("expected error for unsupported format")
	}
}
