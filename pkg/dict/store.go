package dict

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Store mines dictionary words from the bot's SQLite metadata database,
// where every forwarded file's name and caption already live.
type Store struct {
	db *sqlx.DB
}

// Open connects to the SQLite database at path.
func Open(path string) (*Store, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open metadata db: %w", err)
	}
	return &Store{db: db}, nil
}

// NewStore wraps an existing connection.
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Words returns the distinct words found in stored file names and captions,
// first spelling wins on case-insensitive duplicates. category narrows the
// scan to one major MIME type ("image", "video", ...); empty means all files.
func (s *Store) Words(ctx context.Context, category string) ([]string, error) {
	q := `SELECT name, COALESCE(caption, '') FROM files`
	var args []any
	if category != "" {
		q += ` WHERE mime_type LIKE ?`
		args = append(args, category+"/%")
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query files: %w", err)
	}
	defer rows.Close()

	seen := make(map[string]struct{})
	var words []string
	for rows.Next() {
		var name, caption string
		if err := rows.Scan(&name, &caption); err != nil {
			return nil, fmt.Errorf("scan file row: %w", err)
		}
		for _, w := range SplitWords(name + " " + caption) {
			key := strings.ToLower(w)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			words = append(words, w)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate files: %w", err)
	}
	return words, nil
}

// SplitWords breaks a file name or caption into candidate dictionary words:
// maximal letter/digit runs of at least two runes.
func SplitWords(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var out []string
	for _, f := range fields {
		if utf8.RuneCountInString(f) < 2 {
			continue
		}
		out = append(out, f)
	}
	return out
}
