package analytics

import (
	"errors"
	"strings"
	"testing"

	"github.com/cognicore/stylo/pkg/stylo/chart"
	"github.com/cognicore/stylo/pkg/stylo/corpus"
	"github.com/cognicore/stylo/pkg/stylo/postag"
	"github.com/cognicore/stylo/pkg/stylo/stoplist"
)

func scenario() corpus.Set {
	return corpus.NewSet(
		corpus.Tokens{Author: "a", Words: strings.Fields("the cat sat on the mat")},
		corpus.Tokens{Author: "b", Words: strings.Fields("a dog ran in the park")},
		corpus.Tokens{Author: "unknown", Words: strings.Fields("the cat ran away")},
	)
}

func pointsByX(s chart.Series) map[string]float64 {
	m := make(map[string]float64, len(s.Points))
	for _, p := range s.Points {
		m[p.X] = p.Y
	}
	return m
}

func TestWordLengths(t *testing.T) {
	d := WordLengths(strings.Fields("the cat sat on the mat"))
	if d.Count(3) != 4 {
		t.Errorf("length-3 count = %d, want 4", d.Count(3))
	}
	if d.Count(2) != 1 {
		t.Errorf("length-2 count = %d, want 1", d.Count(2))
	}
}

func TestWordLengthsCountsRunes(t *testing.T) {
	d := WordLengths([]string{"café", "naïve"})
	if d.Count(4) != 1 || d.Count(5) != 1 {
		t.Errorf("lengths should count characters, not bytes: %+v", d.MostCommon(0))
	}
}

func TestWordLengthChart(t *testing.T) {
	set := scenario()
	c := WordLength(set, 6, Options{})

	if c.Title != "Word Length" {
		t.Errorf("unexpected title %q", c.Title)
	}
	if len(c.Series) != 3 {
		t.Fatalf("expected one series per author, got %d", len(c.Series))
	}

	a := pointsByX(c.Series[0])
	if a["3"] != 4 || a["2"] != 1 {
		t.Errorf("author a buckets = %v, want 3:4 2:1", a)
	}

	styles := chart.DefaultStyles()
	for i, s := range c.Series {
		if s.Style.Name != styles.At(i).Name {
			t.Errorf("series %d style = %s, want %s", i, s.Style.Name, styles.At(i).Name)
		}
	}
}

func TestWordLengthTruncates(t *testing.T) {
	set := scenario()
	c := WordLength(set, set.Shortest(), Options{})

	// a truncated to 4: the cat sat on -> 3:3, 2:1
	a := pointsByX(c.Series[0])
	if a["3"] != 3 || a["2"] != 1 {
		t.Errorf("truncated buckets = %v, want 3:3 2:1", a)
	}
}

func TestWordLengthTopLimit(t *testing.T) {
	set := corpus.NewSet(corpus.Tokens{Author: "a", Words: strings.Fields("a bb ccc dddd eeeee")})
	c := WordLength(set, 5, Options{Top: 2})
	if len(c.Series[0].Points) != 2 {
		t.Errorf("expected 2 buckets, got %d", len(c.Series[0].Points))
	}
}

func TestStopwordsChart(t *testing.T) {
	stops, err := stoplist.New([]string{"the", "on", "a", "in"})
	if err != nil {
		t.Fatal(err)
	}

	c, err := Stopwords(scenario(), 6, stops, Options{})
	if err != nil {
		t.Fatalf("Stopwords: %v", err)
	}
	if c.Title != "50 Most Common Stopwords" {
		t.Errorf("unexpected title %q", c.Title)
	}
	a := pointsByX(c.Series[0])
	if a["the"] != 2 || a["on"] != 1 {
		t.Errorf("author a stopwords = %v", a)
	}
	if _, ok := a["cat"]; ok {
		t.Error("non-stopwords should be filtered out")
	}
}

func TestStopwordsRequiresSet(t *testing.T) {
	if _, err := Stopwords(scenario(), 4, nil, Options{}); !errors.Is(err, stoplist.ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
}

func TestPartsOfSpeechChart(t *testing.T) {
	var calls [][]string
	tagger := postag.Func(func(tokens []string) ([]string, error) {
		calls = append(calls, tokens)
		tags := make([]string, len(tokens))
		for i, tok := range tokens {
			if tok == "the" || tok == "a" {
				tags[i] = "DT"
			} else {
				tags[i] = "NN"
			}
		}
		return tags, nil
	})

	set := scenario()
	c, err := PartsOfSpeech(set, set.Shortest(), tagger, Options{})
	if err != nil {
		t.Fatalf("PartsOfSpeech: %v", err)
	}
	if len(calls) != 3 {
		t.Fatalf("expected one tagger call per author, got %d", len(calls))
	}
	for _, call := range calls {
		if len(call) != 4 {
			t.Errorf("tagger should see truncated tokens, got %d", len(call))
		}
	}
	unknown := pointsByX(c.Series[2])
	if unknown["DT"] != 1 || unknown["NN"] != 3 {
		t.Errorf("unknown tags = %v", unknown)
	}
}

func TestPartsOfSpeechTaggerError(t *testing.T) {
	boom := errors.New("model missing")
	tagger := postag.Func(func([]string) ([]string, error) { return nil, boom })

	_, err := PartsOfSpeech(scenario(), 4, tagger, Options{})
	if !errors.Is(err, boom) {
		t.Fatalf("expected tagger error, got %v", err)
	}
	var stageErr *corpus.StageError
	if !errors.As(err, &stageErr) || stageErr.Author != "a" {
		t.Errorf("error should name the first author: %v", err)
	}
}
