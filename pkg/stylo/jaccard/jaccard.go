package jaccard

import (
	"fmt"

	"github.com/cognicore/stylo/pkg/stylo/corpus"
)

const stage = "similarity"

// Score is one known author's Jaccard similarity to the unknown corpus.
type Score struct {
	Author string  `json:"author"`
	Value  float64 `json:"similarity"`
}

// Result holds every known author's similarity and the most similar author.
type Result struct {
	Scores     []Score `json:"scores"`
	MostLikely string  `json:"most_likely"`
}

func uniqueWords(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Overlap returns the intersection and union sizes of the unique words of a and b.
func Overlap(a, b []string) (shared, union int) {
	setA := uniqueWords(a)
	setB := uniqueWords(b)
	for w := range setA {
		if _, ok := setB[w]; ok {
			shared++
		}
	}
	return shared, len(setA) + len(setB) - shared
}

// Similarity is |A∩B| / |A∪B| over the unique words of a and b. Two empty inputs
// have similarity 0.
func Similarity(a, b []string) float64 {
	shared, union := Overlap(a, b)
	if union == 0 {
		return 0
	}
	return float64(shared) / float64(union)
}

// Test compares the first shortest words of every known author with the first
// shortest words of the corpus labeled unknown. Ties go to the earlier author.
func Test(set corpus.Set, unknown string, shortest int) (Result, error) {
	unknownWords, ok := set.Words(unknown)
	if !ok {
		return Result{}, &corpus.StageError{Stage: stage, Author: unknown, Err: corpus.ErrUnknownAuthor}
	}
	unknownWords = corpus.Truncate(unknownWords, shortest)

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
		sim := Similarity(corpus.Truncate(k.Words, shortest), unknownWords)
		res.Scores = append(res.Scores, Score{Author: k.Author, Value: sim})
		if best < 0 || sim > res.Scores[best].Value {
			best = len(res.Scores) - 1
		}
	}
	res.MostLikely = res.Scores[best].Author
	return res, nil
}
