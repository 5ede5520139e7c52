package corpus

import (
	"errors"
	"fmt"
)

// DefaultUnknown is the label used for the corpus whose author is being estimated.
const DefaultUnknown = "unknown"

var (
	// ErrDegenerate reports a corpus that cannot support a statistic (e.g. no tokens).
	ErrDegenerate = errors.New("degenerate corpus")
	// ErrUnknownAuthor reports a lookup for a label that is not in the set.
	ErrUnknownAuthor = errors.New("unknown author label")
)

// StageError records which analysis stage failed and for which author.
type StageError struct {
	Stage  string
	Author string
	Err    error
}

func (e *StageError) Error() string {
	if e.Author == "" {
		return fmt.Sprintf("%s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("%s (%s): %v", e.Stage, e.Author, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Text is one author's raw corpus before tokenization.
type Text struct {
	Author string
	Body   string
}

// Tokens is one author's normalized token sequence, in original text order.
type Tokens struct {
	Author string
	Words  []string
}

// Set holds the tokenized corpora of every author in a fixed order.
type Set struct {
	entries []Tokens
	index   map[string]int
}

// NewSet builds a set from entries, keeping their order. Later duplicates replace
// earlier ones in place.
func NewSet(entries ...Tokens) Set {
	s := Set{index: make(map[string]int, len(entries))}
	for _, e := range entries {
		s.add(e)
	}
	return s
}

func (s *Set) add(e Tokens) {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if i, ok := s.index[e.Author]; ok {
		s.entries[i] = e
		return
	}
	s.index[e.Author] = len(s.entries)
	s.entries = append(s.entries, e)
}

// Len returns the number of authors.
func (s Set) Len() int {
	return len(s.entries)
}

// Authors returns the author labels in set order.
func (s Set) Authors() []string {
	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Author
	}
	return out
}

// Entries returns the per-author token sequences in set order.
// The slices are shared with the set and must not be modified.
func (s Set) Entries() []Tokens {
	out := make([]Tokens, len(s.entries))
	copy(out, s.entries)
	return out
}

// Words returns the token sequence for author.
func (s Set) Words(author string) ([]string, bool) {
	i, ok := s.index[author]
	if !ok {
		return nil, false
	}
	return s.entries[i].Words, true
}

// Known returns every entry except the one labeled unknown.
func (s Set) Known(unknown string) []Tokens {
	out := make([]Tokens, 0, len(s.entries))
	for _, e := range s.entries {
		if e.Author == unknown {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Count is the token count of one author's corpus.
type Count struct {
	Author string `json:"author"`
	Words  int    `json:"words"`
}

// Counts returns each author's token count in set order.
func (s Set) Counts() []Count {
	out := make([]Count, len(s.entries))
	for i, e := range s.entries {
		out[i] = Count{Author: e.Author, Words: len(e.Words)}
	}
	return out
}

// Shortest returns the minimum token count across all authors, or 0 for an empty set.
func (s Set) Shortest() int {
	if len(s.entries) == 0 {
		return 0
	}
	shortest := len(s.entries[0].Words)
	for _, e := range s.entries[1:] {
		if n := len(e.Words); n < shortest {
			shortest = n
		}
	}
	return shortest
}

// Truncate returns the first n words. It never slices past the end of words.
func Truncate(words []string, n int) []string {
	if n < 0 {
		n = 0
	}
	if n > len(words) {
		n = len(words)
	}
	return words[:n]
}
