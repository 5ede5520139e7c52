package store

import (
	"context"
	"time"
)

// Store is a library of imported corpus texts, one per author label.
type Store interface {
	Close() error

	UpsertCorpus(ctx context.Context, c Corpus) error
	GetCorpus(ctx context.Context, author string) (Corpus, bool, error)
	ListCorpora(ctx context.Context) ([]CorpusInfo, error)
	DeleteCorpus(ctx context.Context, author string) error
}

// Corpus is one stored text, already decoded to UTF-8.
type Corpus struct {
	Author     string
	Title      string
	Source     string // original file path
	Encoding   string // encoding the source was decoded from
	ImportedAt time.Time
	Body       string
}

// CorpusInfo describes a stored corpus without its body.
type CorpusInfo struct {
	Author     string
	Title      string
	Source     string
	ImportedAt time.Time
	Bytes      int
}
