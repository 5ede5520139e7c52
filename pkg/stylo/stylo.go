package stylo

import (
	"context"
	"fmt"

	"github.com/cognicore/stylo/internal/logging"
	"github.com/cognicore/stylo/pkg/stylo/analytics"
	"github.com/cognicore/stylo/pkg/stylo/chart"
	"github.com/cognicore/stylo/pkg/stylo/corpus"
	"github.com/cognicore/stylo/pkg/stylo/ingest"
	"github.com/cognicore/stylo/pkg/stylo/jaccard"
	"github.com/cognicore/stylo/pkg/stylo/langcheck"
	"github.com/cognicore/stylo/pkg/stylo/postag"
	"github.com/cognicore/stylo/pkg/stylo/report"
	"github.com/cognicore/stylo/pkg/stylo/stoplist"
	"github.com/cognicore/stylo/pkg/stylo/vocab"
)

const previewLength = 300

// Engine runs the attribution tests over a set of corpora
type Engine struct {
	unknown    string
	language   string
	pipeline   *ingest.Pipeline
	tagger     postag.Tagger
	stops      *stoplist.Set
	charts     chart.Factory
	styles     chart.StyleCycle
	lengthTop  int
	posTop     int
	stopTop    int
	mostCommon int
	reports    *report.Builder
	log        *logging.Logger
}

// Options configures an Engine. Zero values fall back to defaults.
type Options struct {
	Unknown       string
	Language      string // expected ISO 639-1 code; empty skips the language check
	Pipeline      *ingest.Pipeline
	Tagger        postag.Tagger
	Stoplist      *stoplist.Set // nil disables the stopword chart
	Charts        chart.Factory
	Styles        chart.StyleCycle
	WordLengthTop int
	POSTop        int
	StopwordTop   int
	MostCommon    int
	Logger        *logging.Logger
}

// New creates an Engine with the given dependencies
func New(opts Options) *Engine {
	e := &Engine{
		unknown:    opts.Unknown,
		language:   opts.Language,
		pipeline:   opts.Pipeline,
		tagger:     opts.Tagger,
		stops:      opts.Stoplist,
		charts:     opts.Charts,
		styles:     opts.Styles,
		lengthTop:  opts.WordLengthTop,
		posTop:     opts.POSTop,
		stopTop:    opts.StopwordTop,
		mostCommon: opts.MostCommon,
		reports:    report.NewBuilder(),
		log:        opts.Logger,
	}
	if e.unknown == "" {
		e.unknown = corpus.DefaultUnknown
	}
	if e.pipeline == nil {
		e.pipeline = ingest.NewPipeline(ingest.NewTokenizer())
	}
	if e.tagger == nil {
		e.tagger = postag.NewProseTagger()
	}
	if e.charts == nil {
		e.charts = chart.DiscardFactory
	}
	if len(e.styles) == 0 {
		e.styles = chart.DefaultStyles()
	}
	if e.lengthTop <= 0 {
		e.lengthTop = analytics.DefaultWordLengthTop
	}
	if e.posTop <= 0 {
		e.posTop = analytics.DefaultPOSTop
	}
	if e.stopTop <= 0 {
		e.stopTop = analytics.DefaultStopwordTop
	}
	if e.mostCommon <= 0 {
		e.mostCommon = vocab.DefaultMostCommon
	}
	if e.log == nil {
		e.log = logging.NewDiscard()
	}
	return e
}

// Run reads every corpus from src and analyzes them.
func (e *Engine) Run(ctx context.Context, src Source) (*report.Report, error) {
	texts, err := src.Texts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load corpora: %w", err)
	}
	return e.Analyze(ctx, texts)
}

// Analyze tokenizes texts, renders the stylometric charts and scores every
// known author against the unknown corpus. The unknown corpus is moved last.
func (e *Engine) Analyze(ctx context.Context, texts []corpus.Text) (*report.Report, error) {
	texts, err := e.order(texts)
	if err != nil {
		return nil, err
	}

	rep := e.reports.Start(e.unknown)
	e.log.Debug("run %s: %d corpora", rep.RunID, len(texts))
	e.log.Debug("preview of %s: %s", texts[0].Author, preview(texts[0].Body))

	if e.language != "" {
		rep.Languages = langcheck.Detect(texts)
		for _, g := range rep.Languages {
			if !g.Matches(e.language) {
				e.log.Warn("corpus %s looks like %q, expected %q", g.Author, g.Language, e.language)
			}
		}
	}

	set := e.pipeline.Process(texts)
	rep.Counts = set.Counts()
	rep.Shortest = set.Shortest()
	for _, c := range rep.Counts {
		e.log.Debug("Number of words for %s = %d", c.Author, c.Words)
	}
	e.log.Debug("length shortest corpus = %d", rep.Shortest)
	if rep.Shortest == 0 {
		e.log.Warn("shortest corpus is empty; truncated analyses will see no words")
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := e.renderCharts(rep, set); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rep.Vocabulary, err = vocab.Test(set, e.unknown, e.mostCommon)
	if err != nil {
		return nil, err
	}
	rep.Similarity, err = jaccard.Test(set, e.unknown, rep.Shortest)
	if err != nil {
		return nil, err
	}

	e.log.Info("most likely author: vocabulary=%s similarity=%s",
		rep.Vocabulary.MostLikely, rep.Similarity.MostLikely)
	return rep, nil
}

func (e *Engine) renderCharts(rep *report.Report, set corpus.Set) error {
	sink, err := e.charts(rep.RunID)
	if err != nil {
		return fmt.Errorf("chart sink: %w", err)
	}

	charts := []chart.Chart{
		analytics.WordLength(set, rep.Shortest, analytics.Options{Top: e.lengthTop, Styles: e.styles}),
	}

	if e.stops != nil {
		c, err := analytics.Stopwords(set, rep.Shortest, e.stops, analytics.Options{Top: e.stopTop, Styles: e.styles})
		if err != nil {
			return err
		}
		charts = append(charts, c)
	}

	pos, err := analytics.PartsOfSpeech(set, rep.Shortest, e.tagger, analytics.Options{Top: e.posTop, Styles: e.styles})
	if err != nil {
		return err
	}
	charts = append(charts, pos)

	for _, c := range charts {
		loc, err := sink.Render(c)
		if err != nil {
			return fmt.Errorf("render %s: %w", c.Slug, err)
		}
		if loc != "" {
			e.log.Debug("chart %s written to %s", c.Slug, loc)
		}
		rep.Charts = append(rep.Charts, report.ChartRef{Title: c.Title, Location: loc})
	}
	return nil
}

// order returns texts with the unknown corpus last, keeping the known authors in
// their given order.
func (e *Engine) order(texts []corpus.Text) ([]corpus.Text, error) {
	out := make([]corpus.Text, 0, len(texts))
	var unknown *corpus.Text
	for i := range texts {
		if texts[i].Author == e.unknown {
			unknown = &texts[i]
			continue
		}
		out = append(out, texts[i])
	}
	if unknown == nil {
		return nil, &corpus.StageError{Stage: "load", Author: e.unknown, Err: corpus.ErrUnknownAuthor}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no known authors to compare against %s: %w", e.unknown, corpus.ErrDegenerate)
	}
	return append(out, *unknown), nil
}

func preview(s string) string {
	r := []rune(s)
	if len(r) > previewLength {
		r = r[:previewLength]
	}
	return string(r)
}
