package config

import (
	"fmt"

	"github.com/cognicore/stylo/pkg/stylo/chart"
	"github.com/cognicore/stylo/pkg/stylo/ingest"
	"github.com/cognicore/stylo/pkg/stylo/postag"
	"github.com/cognicore/stylo/pkg/stylo/stoplist"
	"github.com/cognicore/stylo/pkg/stylo/textload"
)

// Loader constructs the run components described by a Config.
type Loader struct {
	Config *Config
}

// Components holds everything a run needs besides the corpora themselves.
type Components struct {
	Text      *textload.Loader
	Tokenizer *ingest.Tokenizer
	Tagger    postag.Tagger
	Stoplist  *stoplist.Set // nil when the stopword chart is disabled
	Charts    chart.Factory
}

// Load validates the config and returns initialized components.
func (l *Loader) Load() (*Components, error) {
	cfg := l.Config
	if cfg == nil {
		cfg = Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	text, err := textload.New(cfg.Encoding)
	if err != nil {
		return nil, fmt.Errorf("text loader: %w", err)
	}

	comp := &Components{
		Text:      text,
		Tokenizer: ingest.NewTokenizer(),
		Tagger:    postag.NewProseTagger(),
		Charts:    chart.DiscardFactory,
	}

	if cfg.Stopwords.Enabled {
		stops, err := stoplist.Load(cfg.Stopwords.Path)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		comp.Stoplist = stops
	}

	if cfg.Charts.Dir != "" {
		comp.Charts = chart.FileFactory(cfg.Charts.Dir, cfg.Charts.Format)
	}

	return comp, nil
}
