package stylo

import (
	"context"
	"fmt"

	"github.com/cognicore/stylo/pkg/stylo/corpus"
	"github.com/cognicore/stylo/pkg/stylo/store"
	"github.com/cognicore/stylo/pkg/stylo/textload"
)

// Source supplies the raw corpora for a run.
type Source interface {
	Texts(ctx context.Context) ([]corpus.Text, error)
}

// FileRef maps an author label to a corpus file.
type FileRef struct {
	Author string
	Path   string
}

// FileSource reads corpora from files.
type FileSource struct {
	Loader *textload.Loader
	Files  []FileRef
}

// Texts implements Source.
func (s FileSource) Texts(ctx context.Context) ([]corpus.Text, error) {
	out := make([]corpus.Text, 0, len(s.Files))
	for _, f := range s.Files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		body, err := s.Loader.Load(f.Path)
		if err != nil {
			return nil, fmt.Errorf("read %s for %s: %w", f.Path, f.Author, err)
		}
		out = append(out, corpus.Text{Author: f.Author, Body: body})
	}
	return out, nil
}

// StoreSource reads the named authors from a corpus library.
type StoreSource struct {
	Store   store.Store
	Authors []string
}

// Texts implements Source.
func (s StoreSource) Texts(ctx context.Context) ([]corpus.Text, error) {
	out := make([]corpus.Text, 0, len(s.Authors))
	for _, author := range s.Authors {
		c, found, err := s.Store.GetCorpus(ctx, author)
		if err != nil {
			return nil, fmt.Errorf("get corpus %s: %w", author, err)
		}
		if !found {
			return nil, &corpus.StageError{Stage: "library", Author: author, Err: corpus.ErrUnknownAuthor}
		}
		out = append(out, corpus.Text{Author: author, Body: c.Body})
	}
	return out, nil
}
