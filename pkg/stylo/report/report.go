package report

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/stylo/pkg/stylo/corpus"
	"github.com/cognicore/stylo/pkg/stylo/jaccard"
	"github.com/cognicore/stylo/pkg/stylo/langcheck"
	"github.com/cognicore/stylo/pkg/stylo/vocab"
)

// Report is the outcome of one attribution run.
type Report struct {
	RunID      string            `json:"run_id"`
	StartedAt  time.Time         `json:"started_at"`
	Unknown    string            `json:"unknown"`
	Counts     []corpus.Count    `json:"word_counts"`
	Shortest   int               `json:"shortest_corpus"`
	Languages  []langcheck.Guess `json:"languages,omitempty"`
	Charts     []ChartRef        `json:"charts,omitempty"`
	Vocabulary vocab.Result      `json:"vocabulary"`
	Similarity jaccard.Result    `json:"similarity"`
}

// ChartRef names a rendered chart and where it went.
type ChartRef struct {
	Title    string `json:"title"`
	Location string `json:"location,omitempty"`
}

// Builder stamps new reports with monotonic ULIDs.
type Builder struct {
	entropy *ulid.MonotonicEntropy
	now     func() time.Time
}

// NewBuilder creates a report builder.
func NewBuilder() *Builder {
	return &Builder{
		entropy: ulid.Monotonic(rand.Reader, 0),
		now:     time.Now,
	}
}

// Start opens a report for a run comparing known authors against unknown.
func (b *Builder) Start(unknown string) *Report {
	now := b.now()
	return &Report{
		RunID:     ulid.MustNew(ulid.Timestamp(now), b.entropy).String(),
		StartedAt: now,
		Unknown:   unknown,
	}
}

// WriteText prints the run the way the console report reads: word counts, the
// shortest corpus, then each test's scores and verdict.
func (r *Report) WriteText(w io.Writer) error {
	ew := &errWriter{w: w}

	for _, c := range r.Counts {
		ew.printf("Number of words for %s = %d\n", c.Author, c.Words)
	}
	ew.printf("length shortest corpus = %d\n\n", r.Shortest)

	for _, s := range r.Vocabulary.Scores {
		ew.printf("Chi-squared for %s = %.1f\n", s.Author, s.Value)
	}
	if r.Vocabulary.MostLikely != "" {
		ew.printf("Most-likely author by vocabulary is %s\n\n", r.Vocabulary.MostLikely)
	}

	for _, s := range r.Similarity.Scores {
		ew.printf("Jaccard Similarity for %s = %s\n", s.Author, strconv.FormatFloat(s.Value, 'g', -1, 64))
	}
	if r.Similarity.MostLikely != "" {
		ew.printf("Most likely author by similarity is %s\n", r.Similarity.MostLikely)
	}

	for _, c := range r.Charts {
		if c.Location == "" {
			continue
		}
		ew.printf("Chart %q written to %s\n", c.Title, c.Location)
	}
	return ew.err
}

// WriteJSON prints the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
