// Package langcheck guesses the language of each raw corpus so a run can warn when a
// text does not match the language of the stopword list and tagger.
package langcheck

import (
	"github.com/abadojack/whatlanggo"

	"github.com/cognicore/stylo/pkg/stylo/corpus"
)

// sampleRunes bounds how much of each text is inspected.
const sampleRunes = 20000

// Guess is the detected language of one author's text.
type Guess struct {
	Author     string  `json:"author"`
	Language   string  `json:"language"` // ISO 639-1, empty when undetermined
	Confidence float64 `json:"confidence"`
	Reliable   bool    `json:"reliable"`
}

// Matches reports whether the guess agrees with want. Undetermined and unreliable
// guesses are treated as matching, so only confident disagreements are flagged.
func (g Guess) Matches(want string) bool {
	if g.Language == "" || !g.Reliable {
		return true
	}
	return g.Language == want
}

// Detect guesses the language of every text in order.
func Detect(texts []corpus.Text) []Guess {
	out := make([]Guess, 0, len(texts))
	for _, t := range texts {
		info := whatlanggo.Detect(sample(t.Body))
		g := Guess{Author: t.Author, Confidence: info.Confidence}
		// Detect reports a negative Lang when no script was recognized.
		if info.Lang >= 0 {
			g.Language = info.Lang.Iso6391()
			g.Reliable = info.IsReliable()
		}
		out = append(out, g)
	}
	return out
}

func sample(s string) string {
	n := 0
	for i := range s {
		if n == sampleRunes {
			return s[:i]
		}
		n++
	}
	return s
}
