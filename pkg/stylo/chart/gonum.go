package chart

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Formats supported by FileSink.
var Formats = map[string]struct{}{
	"png": {},
	"svg": {},
	"pdf": {},
}

// FileSink draws charts with gonum/plot and writes one file per chart.
type FileSink struct {
	Dir    string
	Format string // png, svg or pdf
	Prefix string // prepended to file names, e.g. a run id
	Width  vg.Length
	Height vg.Length
}

// NewFileSink creates a sink writing format files into dir.
func NewFileSink(dir, format, prefix string) (*FileSink, error) {
	if format == "" {
		format = "png"
	}
	if _, ok := Formats[format]; !ok {
		return nil, fmt.Errorf("unsupported chart format %q", format)
	}
	return &FileSink{
		Dir:    dir,
		Format: format,
		Prefix: prefix,
		Width:  10 * vg.Inch,
		Height: 6 * vg.Inch,
	}, nil
}

// Render implements Sink.
func (s *FileSink) Render(c Chart) (string, error) {
	p, err := build(c)
	if err != nil {
		return "", fmt.Errorf("build chart %s: %w", c.Slug, err)
	}

	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return "", fmt.Errorf("create chart dir: %w", err)
	}

	name := c.Slug + "." + s.Format
	if s.Prefix != "" {
		name = s.Prefix + "-" + name
	}
	path := filepath.Join(s.Dir, name)

	if err := p.Save(s.Width, s.Height, path); err != nil {
		return "", fmt.Errorf("save chart %s: %w", path, err)
	}
	return path, nil
}

// build lays every series out on a shared nominal x axis.
func build(c Chart) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel
	p.Legend.Top = true

	categories := c.Categories()
	pos := make(map[string]int, len(categories))
	for i, cat := range categories {
		pos[cat] = i
	}

	for i, series := range c.Series {
		if len(series.Points) == 0 {
			continue
		}
		xys := make(plotter.XYs, len(series.Points))
		for j, pt := range series.Points {
			xys[j].X = float64(pos[pt.X])
			xys[j].Y = pt.Y
		}
		sort.Slice(xys, func(a, b int) bool { return xys[a].X < xys[b].X })

		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("series %s: %w", series.Label, err)
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = plotutil.Color(i)
		for _, d := range series.Style.Dashes {
			line.LineStyle.Dashes = append(line.LineStyle.Dashes, vg.Points(d))
		}

		p.Add(line)
		p.Legend.Add(series.Label, line)
	}

	if len(categories) > 0 {
		p.NominalX(categories...)
	}
	return p, nil
}
