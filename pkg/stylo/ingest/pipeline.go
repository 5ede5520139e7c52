package ingest

import "github.com/cognicore/stylo/pkg/stylo/corpus"

// Pipeline turns raw author texts into a tokenized corpus set.
type Pipeline struct {
	tokenizer *Tokenizer
}

// NewPipeline creates an ingestion pipeline with the given tokenizer
func NewPipeline(tokenizer *Tokenizer) *Pipeline {
	if tokenizer == nil {
		tokenizer = NewTokenizer()
	}
	return &Pipeline{tokenizer: tokenizer}
}

// Process tokenizes every text, keeping the input order of authors.
// An author whose text has no alphabetic words gets an empty sequence.
func (p *Pipeline) Process(texts []corpus.Text) corpus.Set {
	entries := make([]corpus.Tokens, 0, len(texts))
	for _, text := range texts {
		words := p.tokenizer.Tokenize(text.Body)
		if words == nil {
			words = []string{}
		}
		entries = append(entries, corpus.Tokens{
			Author: text.Author,
			Words:  words,
		})
	}
	return corpus.NewSet(entries...)
}
