package chart

// LineStyle names a dash pattern. Dashes alternate on/off lengths in points;
// nil means a solid line.
type LineStyle struct {
	Name   string
	Dashes []float64
}

var (
	Solid  = LineStyle{Name: "solid"}
	Dotted = LineStyle{Name: "dotted", Dashes: []float64{1, 3}}
	Dashed = LineStyle{Name: "dashed", Dashes: []float64{6, 3}}
)

// StyleCycle hands out line styles by series index, wrapping around.
type StyleCycle []LineStyle

// DefaultStyles returns solid, dotted, dashed.
func DefaultStyles() StyleCycle {
	return StyleCycle{Solid, Dotted, Dashed}
}

// At returns the style for series i.
func (c StyleCycle) At(i int) LineStyle {
	if len(c) == 0 {
		return Solid
	}
	if i < 0 {
		i = -i
	}
	return c[i%len(c)]
}
