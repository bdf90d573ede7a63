package server

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	collection TEXT NOT NULL,
	id         TEXT NOT NULL,
	doc        TEXT NOT NULL,
	PRIMARY KEY (collection, id)
);

CREATE TABLE IF NOT EXISTS sequences (
	collection TEXT PRIMARY KEY,
	next       INTEGER NOT NULL
);
`

// Store is a per-collection JSON document store over sqlite. Every
// collection shares one table; the id field inside the document is the
// collection's own (id_paciente, id_cita, ...).
type Store struct {
	db *sqlx.DB
}

func NewStore(path string) (*Store, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// List returns documents in insertion order.
func (s *Store) List(ctx context.Context, collection string) ([]json.RawMessage, error) {
	var rows []string
	err := s.db.SelectContext(ctx, &rows,
		`SELECT doc FROM documents WHERE collection = ? ORDER BY rowid`, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", collection, err)
	}
	docs := make([]json.RawMessage, 0, len(rows))
	for _, row := range rows {
		docs = append(docs, json.RawMessage(row))
	}
	return docs, nil
}

var ErrNoDocument = sql.ErrNoRows

func (s *Store) Get(ctx context.Context, collection, id string) (json.RawMessage, error) {
	var doc string
	err := s.db.GetContext(ctx, &doc,
		`SELECT doc FROM documents WHERE collection = ? AND id = ?`, collection, id)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(doc), nil
}

func (s *Store) Insert(ctx context.Context, collection, id string, doc map[string]interface{}) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO documents (collection, id, doc) VALUES (?, ?, ?)`,
		collection, id, string(raw))
	if err != nil {
		return fmt.Errorf("failed to insert into %s: %w", collection, err)
	}
	return nil
}

// Update merges the given fields over the stored document, so partial PUT
// bodies behave like the real API.
func (s *Store) Update(ctx context.Context, collection, id string, fields map[string]interface{}) (map[string]interface{}, error) {
	existing, err := s.Get(ctx, collection, id)
	if err != nil {
		return nil, err
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(existing, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode stored document: %w", err)
	}
	for k, v := range fields {
		doc[k] = v
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`UPDATE documents SET doc = ? WHERE collection = ? AND id = ?`,
		string(raw), collection, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update %s/%s: %w", collection, id, err)
	}
	return doc, nil
}

func (s *Store) Delete(ctx context.Context, collection, id string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM documents WHERE collection = ? AND id = ?`, collection, id)
	if err != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", collection, id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// NextSeq returns the collection's next integer id, for the one collection
// that uses numeric identifiers.
func (s *Store) NextSeq(ctx context.Context, collection string) (int64, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var next int64
	err = tx.GetContext(ctx, &next,
		`SELECT next FROM sequences WHERE collection = ?`, collection)
	switch {
	case err == sql.ErrNoRows:
		next = 1
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO sequences (collection, next) VALUES (?, 2)`, collection); err != nil {
			return 0, err
		}
	case err != nil:
		return 0, err
	default:
		if _, err := tx.ExecContext(ctx,
			`UPDATE sequences SET next = next + 1 WHERE collection = ?`, collection); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return next, nil
}

// Count reports how many documents a collection holds.
func (s *Store) Count(ctx context.Context, collection string) (int, error) {
	var n int
	err := s.db.GetContext(ctx, &n,
		`SELECT COUNT(*) FROM documents WHERE collection = ?`, collection)
	return n, err
}
