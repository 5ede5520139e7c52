package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/cognicore/stylo/pkg/stylo/store"
	"github.com/cognicore/stylo/pkg/stylo/store/sqlite"
	"github.com/cognicore/stylo/pkg/stylo/textload"
)

func main() {
	var (
		dbPath   = flag.String("db", "", "Library database path (required)")
		author   = flag.String("author", "", "Author label to import under")
		file     = flag.String("file", "", "Text or HTML file to import")
		title    = flag.String("title", "", "Optional: title of the work")
		encoding = flag.String("encoding", textload.DefaultEncoding, "Text encoding of the file")
		list     = flag.Bool("list", false, "List the corpora in the library")
		remove   = flag.String("delete", "", "Delete the corpus stored under this author")
	)
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("--db required")
	}

	ctx := context.Background()

	st, err := sqlite.OpenSQLite(ctx, *dbPath)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer st.Close()

	switch {
	case *list:
		if err := listCorpora(ctx, st, os.Stdout); err != nil {
			log.Fatalf("list: %v", err)
		}
	case *remove != "":
		if err := st.DeleteCorpus(ctx, *remove); err != nil {
			log.Fatalf("delete %s: %v", *remove, err)
		}
		log.Printf("Deleted corpus %s", *remove)
	default:
		if *author == "" || *file == "" {
			log.Fatal("--author and --file required (or --list)")
		}
		n, err := importCorpus(ctx, st, *author, *file, *title, *encoding)
		if err != nil {
			log.Fatalf("import: %v", err)
		}
		log.Printf("Imported %s as %s (%d bytes)", *file, *author, n)
	}
}

// importCorpus decodes path and stores it under author, replacing any previous
// corpus with that label. It returns the stored body size in bytes.
func importCorpus(ctx context.Context, st store.Store, author, path, title, encoding string) (int, error) {
	loader, err := textload.New(encoding)
	if err != nil {
		return 0, err
	}
	body, err := loader.Load(path)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}
	if title == "" {
		title = filepath.Base(path)
	}

	err = st.UpsertCorpus(ctx, store.Corpus{
		Author:     author,
		Title:      title,
		Source:     path,
		Encoding:   loader.Encoding(),
		ImportedAt: time.Now().UTC(),
		Body:       body,
	})
	if err != nil {
		return 0, fmt.Errorf("store %s: %w", author, err)
	}
	return len(body), nil
}

func listCorpora(ctx context.Context, st store.Store, out io.Writer) error {
	infos, err := st.ListCorpora(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "AUTHOR\tTITLE\tBYTES\tIMPORTED\tSOURCE")
	for _, c := range infos {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n",
			c.Author, c.Title, c.Bytes, c.ImportedAt.Format(time.RFC3339), c.Source)
	}
	return tw.Flush()
}
