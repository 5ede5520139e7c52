package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/cognicore/stylo/internal/logging"
	"github.com/cognicore/stylo/pkg/stylo"
	"github.com/cognicore/stylo/pkg/stylo/config"
	"github.com/cognicore/stylo/pkg/stylo/ingest"
	"github.com/cognicore/stylo/pkg/stylo/store/sqlite"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file (default: built-in doyle/wells setup)")
		dbPath     = flag.String("db", "", "Optional: read corpora from this library instead of files")
		jsonOut    = flag.Bool("json", false, "Print the report as JSON")
		stopwords  = flag.Bool("stopwords", false, "Also chart the most common stopwords")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.LoadEnv(); err != nil {
		log.Fatalf("environment: %v", err)
	}
	if *stopwords {
		cfg.Stopwords.Enabled = true
	}

	logger := logging.New(cfg.LogLevel)

	engine, src, cleanup, err := buildEngine(ctx, cfg, *dbPath, logger)
	if err != nil {
		log.Fatalf("setup: %v", err)
	}
	defer cleanup()

	rep, err := engine.Run(ctx, src)
	if err != nil {
		log.Fatalf("analyze: %v", err)
	}

	if *jsonOut {
		err = rep.WriteJSON(os.Stdout)
	} else {
		err = rep.WriteText(os.Stdout)
	}
	if err != nil {
		log.Fatalf("write report: %v", err)
	}
}

// buildEngine wires the engine from cfg. With a dbPath the configured author labels
// are read from the corpus library, otherwise from the configured files.
func buildEngine(ctx context.Context, cfg *config.Config, dbPath string, logger *logging.Logger) (*stylo.Engine, stylo.Source, func(), error) {
	components, err := (&config.Loader{Config: cfg}).Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load components: %w", err)
	}

	engine := stylo.New(stylo.Options{
		Unknown:       cfg.Unknown,
		Language:      cfg.Language,
		Pipeline:      ingest.NewPipeline(components.Tokenizer),
		Tagger:        components.Tagger,
		Stoplist:      components.Stoplist,
		Charts:        components.Charts,
		WordLengthTop: cfg.Charts.WordLengthTop,
		POSTop:        cfg.Charts.POSTop,
		StopwordTop:   cfg.Stopwords.Top,
		MostCommon:    cfg.Vocabulary.MostCommon,
		Logger:        logger,
	})

	if dbPath != "" {
		st, err := sqlite.OpenSQLite(ctx, dbPath)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("open library: %w", err)
		}
		src := stylo.StoreSource{Store: st, Authors: cfg.Authors()}
		return engine, src, func() { st.Close() }, nil
	}

	files := make([]stylo.FileRef, len(cfg.Corpora))
	for i, c := range cfg.Corpora {
		files[i] = stylo.FileRef{Author: c.Author, Path: c.Path}
	}
	src := stylo.FileSource{Loader: components.Text, Files: files}
	return engine, src, func() {}, nil
}
