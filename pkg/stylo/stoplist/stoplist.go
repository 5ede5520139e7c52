package stoplist

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed english.yaml
var englishYAML []byte

// ErrEmpty is returned when a stopword source yields no terms.
var ErrEmpty = errors.New("stoplist is empty")

// Set is an immutable set of stopwords, loaded once and shared by analyzers.
type Set struct {
	stops map[string]struct{}
}

// file is the on-disk stoplist format.
type file struct {
	Terms []string `yaml:"terms"`
}

// New builds a set from terms. Terms are lowercased and blanks are ignored.
// It fails with ErrEmpty when nothing remains.
func New(terms []string) (*Set, error) {
	stops := make(map[string]struct{}, len(terms))
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		stops[term] = struct{}{}
	}
	if len(stops) == 0 {
		return nil, ErrEmpty
	}
	return &Set{stops: stops}, nil
}

// English returns the embedded English stopword list.
func English() (*Set, error) {
	return parse(englishYAML, "embedded english list")
}

// Load reads a YAML stoplist (`terms: [...]`). An empty path selects the
// embedded English list.
func Load(path string) (*Set, error) {
	if path == "" {
		return English()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parse(data, path)
}

func parse(data []byte, source string) (*Set, error) {
	var sl file
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, fmt.Errorf("parse %s: %w", source, err)
	}
	set, err := New(sl.Terms)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return set, nil
}

// IsStop checks if a token is a stopword
func (s *Set) IsStop(token string) bool {
	_, ok := s.stops[token]
	return ok
}

// Len returns the number of stopwords.
func (s *Set) Len() int {
	return len(s.stops)
}

// All returns all stopwords, sorted.
func (s *Set) All() []string {
	result := make([]string, 0, len(s.stops))
	for w := range s.stops {
		result = append(result, w)
	}
	sort.Strings(result)
	return result
}

// Filter returns the tokens that are stopwords, in their original order.
func (s *Set) Filter(tokens []string) []string {
	var out []string
	for _, tok := range tokens {
		if s.IsStop(tok) {
			out = append(out, tok)
		}
	}
	return out
}
