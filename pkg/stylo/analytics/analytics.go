// Package analytics builds per-author frequency distributions over truncated corpora
// and lays them out as chart series.
package analytics

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/cognicore/stylo/pkg/stylo/chart"
	"github.com/cognicore/stylo/pkg/stylo/corpus"
	"github.com/cognicore/stylo/pkg/stylo/freqdist"
	"github.com/cognicore/stylo/pkg/stylo/postag"
	"github.com/cognicore/stylo/pkg/stylo/stoplist"
)

// Default number of buckets charted per author.
const (
	DefaultWordLengthTop = 15
	DefaultStopwordTop   = 50
	DefaultPOSTop        = 35
)

// Options controls one chart: how many buckets per author and which line styles.
type Options struct {
	Top    int
	Styles chart.StyleCycle
}

func (o Options) styles() chart.StyleCycle {
	if len(o.Styles) == 0 {
		return chart.DefaultStyles()
	}
	return o.Styles
}

// WordLengths counts token lengths in characters.
func WordLengths(words []string) *freqdist.Dist[int] {
	d := freqdist.New[int]()
	for _, w := range words {
		d.Add(utf8.RuneCountInString(w))
	}
	return d
}

// WordLength charts the most common word lengths of each author's first shortest words.
func WordLength(set corpus.Set, shortest int, opts Options) chart.Chart {
	if opts.Top <= 0 {
		opts.Top = DefaultWordLengthTop
	}
	styles := opts.styles()

	c := chart.Chart{Slug: "word-length", Title: "Word Length", XLabel: "Word length", YLabel: "Counts"}
	for i, e := range set.Entries() {
		dist := WordLengths(corpus.Truncate(e.Words, shortest))
		c.Series = append(c.Series, series(e.Author, styles.At(i), dist.MostCommon(opts.Top), strconv.Itoa))
	}
	return c
}

// Stopwords charts the most common stopwords of each author's first shortest words.
func Stopwords(set corpus.Set, shortest int, stops *stoplist.Set, opts Options) (chart.Chart, error) {
	if stops == nil {
		return chart.Chart{}, stoplist.ErrEmpty
	}
	if opts.Top <= 0 {
		opts.Top = DefaultStopwordTop
	}
	styles := opts.styles()

	c := chart.Chart{
		Slug:   "stopwords",
		Title:  fmt.Sprintf("%d Most Common Stopwords", opts.Top),
		XLabel: "Stopword",
		YLabel: "Counts",
	}
	for i, e := range set.Entries() {
		dist := freqdist.FromSlice(stops.Filter(corpus.Truncate(e.Words, shortest)))
		c.Series = append(c.Series, series(e.Author, styles.At(i), dist.MostCommon(opts.Top), identity))
	}
	return c, nil
}

// PartsOfSpeech tags each author's first shortest words and charts the most common tags.
func PartsOfSpeech(set corpus.Set, shortest int, tagger postag.Tagger, opts Options) (chart.Chart, error) {
	if opts.Top <= 0 {
		opts.Top = DefaultPOSTop
	}
	styles := opts.styles()

	c := chart.Chart{Slug: "parts-of-speech", Title: "Part of Speech", XLabel: "Tag", YLabel: "Counts"}
	for i, e := range set.Entries() {
		tags, err := tagger.Tag(corpus.Truncate(e.Words, shortest))
		if err != nil {
			return chart.Chart{}, &corpus.StageError{Stage: "parts of speech", Author: e.Author, Err: err}
		}
		dist := freqdist.FromSlice(tags)
		c.Series = append(c.Series, series(e.Author, styles.At(i), dist.MostCommon(opts.Top), identity))
	}
	return c, nil
}

func identity(s string) string { return s }

func series[K comparable](label string, style chart.LineStyle, entries []freqdist.Entry[K], name func(K) string) chart.Series {
	s := chart.Series{Label: label, Style: style, Points: make([]chart.Point, len(entries))}
	for i, e := range entries {
		s.Points[i] = chart.Point{X: name(e.Value), Y: float64(e.Count)}
	}
	return s
}
