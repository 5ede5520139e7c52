// Package vocab compares known authors' word use against an unknown corpus with a
// chi-squared goodness-of-fit statistic.
//
// For a known author A and the unknown corpus U, the combined corpus is A followed by U
// and p = |A| / |A+U|. Over the most common words w of the combined corpus:
//
//	expected(w) = count(w, A+U) * p
//	chi2        = Σ (count(w, A) - expected(w))² / expected(w)
//
// Lower is a better fit. The statistic uses the full corpora, not the truncated
// prefixes the other tests compare.
package vocab

import (
	"fmt"

	"github.com/cognicore/stylo/pkg/stylo/corpus"
	"github.com/cognicore/stylo/pkg/stylo/freqdist"
)

const stage = "vocabulary"

// DefaultMostCommon is the number of combined-corpus words the statistic covers.
const DefaultMostCommon = 1000

// Score is one known author's chi-squared statistic.
type Score struct {
	Author string  `json:"author"`
	Value  float64 `json:"chi_squared"`
}

// Result holds every known author's score and the best fit.
type Result struct {
	Scores     []Score `json:"scores"`
	MostLikely string  `json:"most_likely"`
}

// accumulator holds the running statistic for one known author.
type accumulator struct {
	proportion float64
	observed   *freqdist.Dist[string]
	chi2       float64
}

func newAccumulator(known, unknown []string) (*accumulator, error) {
	if len(known) == 0 {
		return nil, corpus.ErrDegenerate
	}
	return &accumulator{
		proportion: float64(len(known)) / float64(len(known)+len(unknown)),
		observed:   freqdist.FromSlice(known),
	}, nil
}

func (a *accumulator) add(word string, combinedCount int64) {
	expected := float64(combinedCount) * a.proportion
	diff := float64(a.observed.Count(word)) - expected
	a.chi2 += diff * diff / expected
}

// ChiSquared computes the statistic for one known corpus against the unknown corpus.
// mostCommon <= 0 selects DefaultMostCommon. An empty known corpus fails with
// corpus.ErrDegenerate.
func ChiSquared(known, unknown []string, mostCommon int) (float64, error) {
	if mostCommon <= 0 {
		mostCommon = DefaultMostCommon
	}

	acc, err := newAccumulator(known, unknown)
	if err != nil {
		return 0, err
	}

	combined := freqdist.New[string]()
	for _, w := range known {
		combined.Add(w)
	}
	for _, w := range unknown {
		combined.Add(w)
	}

	for _, e := range combined.MostCommon(mostCommon) {
		acc.add(e.Value, e.Count)
	}
	return acc.chi2, nil
}

// Test scores every known author in set order against the corpus labeled unknown.
// Ties go to the earlier author.
func Test(set corpus.Set, unknown string, mostCommon int) (Result, error) {
	unknownWords, ok := set.Words(unknown)
	if !ok {
		return Result{}, &corpus.StageError{Stage: stage, Author: unknown, Err: corpus.ErrUnknownAuthor}
	}

	known := set.Known(unknown)
	if len(known) == 0 {
		return Result{}, &corpus.StageError{
			Stage: stage,
			Err:   fmt.Errorf("no known corpora: %w", corpus.ErrDegenerate),
		}
	}

	res := Result{Scores: make([]Score, 0, len(known))}
	best := -1
	for _, k := range known {
		chi2, err := ChiSquared(k.Words, unknownWords, mostCommon)
		if err != nil {
			return Result{}, &corpus.StageError{Stage: stage, Author: k.Author, Err: err}
		}
		res.Scores = append(res.Scores, Score{Author: k.Author, Value: chi2})
		if best < 0 || chi2 < res.Scores[best].Value {
			best = len(res.Scores) - 1
		}
	}
	res.MostLikely = res.Scores[best].Author
	return res, nil
}
