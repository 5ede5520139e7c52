package chart

// Point is one category on the x axis and its value.
type Point struct {
	X string  `json:"x"`
	Y float64 `json:"y"`
}

// Series is one labeled line, typically one author.
type Series struct {
	Label  string    `json:"label"`
	Style  LineStyle `json:"-"`
	Points []Point   `json:"points"`
}

// Chart is a line chart over categorical x values.
type Chart struct {
	Slug   string   `json:"slug"` // short file-safe name, e.g. "word-length"
	Title  string   `json:"title"`
	XLabel string   `json:"x_label"`
	YLabel string   `json:"y_label"`
	Series []Series `json:"series"`
}

// Categories returns every x value used by any series, in order of first appearance.
func (c Chart) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, s := range c.Series {
		for _, p := range s.Points {
			if _, ok := seen[p.X]; ok {
				continue
			}
			seen[p.X] = struct{}{}
			out = append(out, p.X)
		}
	}
	return out
}

// Sink renders charts somewhere and returns where each one went.
type Sink interface {
	Render(c Chart) (location string, err error)
}

// Discard drops every chart.
type Discard struct{}

// Render implements Sink.
func (Discard) Render(Chart) (string, error) {
	return "", nil
}

// Recorder keeps rendered charts in memory.
type Recorder struct {
	Charts []Chart
}

// Render implements Sink.
func (r *Recorder) Render(c Chart) (string, error) {
	r.Charts = append(r.Charts, c)
	return "memory:" + c.Slug, nil
}

// Factory creates the sink for one run; runID lets file sinks keep runs apart.
type Factory func(runID string) (Sink, error)

// DiscardFactory always returns Discard.
func DiscardFactory(string) (Sink, error) {
	return Discard{}, nil
}

// FileFactory returns a factory of FileSinks writing format files into dir,
// prefixed with the run id.
func FileFactory(dir, format string) Factory {
	return func(runID string) (Sink, error) {
		return NewFileSink(dir, format, runID)
	}
}
