// Package postag assigns Penn Treebank part-of-speech tags to word tokens.
package postag

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"
)

// ErrMisaligned means the tagger did not return exactly one tag per input token.
var ErrMisaligned = errors.New("tagger output does not align with input tokens")

// Tagger tags a token sequence. Implementations must be deterministic and keep no
// state between calls.
type Tagger interface {
	Tag(tokens []string) ([]string, error)
}

// ProseTagger tags with the averaged perceptron model bundled in prose.
type ProseTagger struct{}

// NewProseTagger creates a prose-backed tagger.
func NewProseTagger() *ProseTagger {
	return &ProseTagger{}
}

// Tag implements Tagger. Tokens are joined with spaces and re-tokenized by prose.
// When prose splits a word (e.g. "cannot"), the pieces are joined back and the word
// takes the tag of its first piece.
func (t *ProseTagger) Tag(tokens []string) ([]string, error) {
	if len(tokens) == 0 {
		return []string{}, nil
	}

	doc, err := prose.NewDocument(
		strings.Join(tokens, " "),
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, fmt.Errorf("prose: %w", err)
	}
	return align(tokens, doc.Tokens())
}

func align(tokens []string, tagged []prose.Token) ([]string, error) {
	tags := make([]string, len(tokens))
	j := 0
	for i, want := range tokens {
		if j >= len(tagged) {
			return nil, fmt.Errorf("%w: %d tokens in, tagger stopped at %d", ErrMisaligned, len(tokens), i)
		}
		tags[i] = tagged[j].Tag
		got := tagged[j].Text
		j++
		for got != want && j < len(tagged) && strings.HasPrefix(want, got+tagged[j].Text) {
			got += tagged[j].Text
			j++
		}
		if got != want {
			return nil, fmt.Errorf("%w: token %d is %q, tagger saw %q", ErrMisaligned, i, want, got)
		}
	}
	if j != len(tagged) {
		return nil, fmt.Errorf("%w: %d tokens in, %d tags out", ErrMisaligned, len(tokens), len(tagged))
	}
	return tags, nil
}

// Func adapts a plain function to the Tagger interface.
type Func func(tokens []string) ([]string, error)

// Tag implements Tagger.
func (f Func) Tag(tokens []string) ([]string, error) {
	return f(tokens)
}
