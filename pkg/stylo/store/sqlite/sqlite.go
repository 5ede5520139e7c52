package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/stylo/pkg/stylo/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite corpus library with WAL mode enabled, creating the
// schema if needed.
func OpenSQLite(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS corpora (
	author TEXT PRIMARY KEY,
	title TEXT NOT NULL DEFAULT '',
	source TEXT NOT NULL DEFAULT '',
	encoding TEXT NOT NULL DEFAULT '',
	imported_at TEXT NOT NULL,
	body TEXT NOT NULL
);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// UpsertCorpus inserts or replaces the corpus stored under c.Author.
func (s *sqliteStore) UpsertCorpus(ctx context.Context, c store.Corpus) error {
	if c.Author == "" {
		return errors.New("corpus author is required")
	}
	imported := c.ImportedAt
	if imported.IsZero() {
		imported = time.Now()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const stmt = `
INSERT INTO corpora (author, title, source, encoding, imported_at, body)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(author) DO UPDATE SET
	title=excluded.title,
	source=excluded.source,
	encoding=excluded.encoding,
	imported_at=excluded.imported_at,
	body=excluded.body;
`
	if _, err := tx.ExecContext(
		ctx,
		stmt,
		c.Author,
		c.Title,
		c.Source,
		c.Encoding,
		imported.UTC().Format(time.RFC3339),
		c.Body,
	); err != nil {
		return err
	}

	return tx.Commit()
}

// GetCorpus retrieves a corpus by author label
func (s *sqliteStore) GetCorpus(ctx context.Context, author string) (store.Corpus, bool, error) {
	var (
		c        store.Corpus
		imported string
	)
	err := s.db.QueryRowContext(ctx, `
SELECT author, title, source, encoding, imported_at, body
FROM corpora
WHERE author = ?;
`, author).Scan(&c.Author, &c.Title, &c.Source, &c.Encoding, &imported, &c.Body)
	if err == sql.ErrNoRows {
		return store.Corpus{}, false, nil
	}
	if err != nil {
		return store.Corpus{}, false, err
	}

	c.ImportedAt = parseTime(imported)
	return c, true, nil
}

// ListCorpora returns every stored corpus ordered by author, without bodies.
func (s *sqliteStore) ListCorpora(ctx context.Context) ([]store.CorpusInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT author, title, source, imported_at, length(CAST(body AS BLOB))
FROM corpora
ORDER BY author;
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.CorpusInfo
	for rows.Next() {
		var (
			info     store.CorpusInfo
			imported string
		)
		if err := rows.Scan(&info.Author, &info.Title, &info.Source, &imported, &info.Bytes); err != nil {
			return nil, err
		}
		info.ImportedAt = parseTime(imported)
		out = append(out, info)
	}
	return out, rows.Err()
}

// DeleteCorpus removes a corpus; deleting a missing author is not an error.
func (s *sqliteStore) DeleteCorpus(ctx context.Context, author string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM corpora WHERE author = ?`, author)
	return err
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
