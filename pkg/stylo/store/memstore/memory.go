package memstore

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/cognicore/stylo/pkg/stylo/store"
)

// Store is an in-memory corpus library, mainly for tests.
type Store struct {
	mu      sync.RWMutex
	corpora map[string]store.Corpus
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{corpora: make(map[string]store.Corpus)}
}

// Close implements store.Store.
func (s *Store) Close() error {
	return nil
}

// UpsertCorpus inserts or replaces the corpus for c.Author.
func (s *Store) UpsertCorpus(ctx context.Context, c store.Corpus) error {
	if c.Author == "" {
		return errors.New("corpus author is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.corpora[c.Author] = c
	return nil
}

// GetCorpus retrieves a corpus by author label.
func (s *Store) GetCorpus(ctx context.Context, author string) (store.Corpus, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.corpora[author]
	return c, ok, nil
}

// ListCorpora returns every corpus ordered by author.
func (s *Store) ListCorpora(ctx context.Context) ([]store.CorpusInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]store.CorpusInfo, 0, len(s.corpora))
	for _, c := range s.corpora {
		out = append(out, store.CorpusInfo{
			Author:     c.Author,
			Title:      c.Title,
			Source:     c.Source,
			ImportedAt: c.ImportedAt,
			Bytes:      len(c.Body),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Author < out[j].Author })
	return out, nil
}

// DeleteCorpus removes a corpus; deleting a missing author is not an error.
func (s *Store) DeleteCorpus(ctx context.Context, author string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.corpora, author)
	return nil
}
