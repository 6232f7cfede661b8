// Package history persists a record of each lex request handled by
// jsonnetlexd, for later inspection via GET /v1/history/{id}.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"modernc.org/sqlite"

	"github.com/johnboiles/jsonnet/internal/apierr"
)

// Record is one completed call to /v1/lex.
type Record struct {
	ID         uuid.UUID
	Filename   string
	ByteCount  int
	TokenCount int
	OK         bool
	ErrMessage string
	Duration   time.Duration
	Created    time.Time
}

// Store persists Records to a modernc.org/sqlite-backed database using
// plain database/sql, prepared statements, and no ORM.
type Store struct {
	db *sql.DB
}

// Open creates or attaches to the sqlite database at file and ensures its
// schema exists.
func Open(file string) (*Store, error) {
	db, err := sql.Open("sqlite", file)
	if err != nil {
		return nil, wrapDBError(err)
	}
	s := &Store{db: db}
	if err := s.init(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	stmt := `CREATE TABLE IF NOT EXISTS lex_history (
		id TEXT NOT NULL PRIMARY KEY,
		filename TEXT NOT NULL,
		byte_count INTEGER NOT NULL,
		token_count INTEGER NOT NULL,
		ok INTEGER NOT NULL,
		err_message TEXT NOT NULL,
		duration_ns INTEGER NOT NULL,
		created INTEGER NOT NULL
	);`
	_, err := s.db.Exec(stmt)
	if err != nil {
		return wrapDBError(err)
	}
	return nil
}

// Record inserts a new history row and returns it with its generated ID
// and Created time populated.
func (s *Store) Record(ctx context.Context, r Record) (Record, error) {
	newID, err := uuid.NewRandom()
	if err != nil {
		return Record{}, fmt.Errorf("could not generate ID: %w", err)
	}
	r.ID = newID
	r.Created = time.Now()

	stmt, err := s.db.Prepare(`INSERT INTO lex_history
		(id, filename, byte_count, token_count, ok, err_message, duration_ns, created)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return Record{}, wrapDBError(err)
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx,
		r.ID.String(), r.Filename, r.ByteCount, r.TokenCount,
		boolToInt(r.OK), r.ErrMessage, r.Duration.Nanoseconds(), r.Created.Unix(),
	)
	if err != nil {
		return Record{}, wrapDBError(err)
	}
	return r, nil
}

// GetByID fetches a single history row by its ID.
func (s *Store) GetByID(ctx context.Context, id uuid.UUID) (Record, error) {
	row := s.db.QueryRowContext(ctx, `SELECT filename, byte_count, token_count, ok, err_message, duration_ns, created
		FROM lex_history WHERE id = ?;`, id.String())

	var r Record
	r.ID = id
	var ok int
	var durNS int64
	var created int64

	err := row.Scan(&r.Filename, &r.ByteCount, &r.TokenCount, &ok, &r.ErrMessage, &durNS, &created)
	if err != nil {
		return r, wrapDBError(err)
	}

	r.OK = ok != 0
	r.Duration = time.Duration(durNS)
	r.Created = time.Unix(created, 0)
	return r, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func wrapDBError(err error) error {
	sqliteErr := &sqlite.Error{}
	if errors.As(err, &sqliteErr) {
		return fmt.Errorf("%s", sqlite.ErrorCodeString[sqliteErr.Code()])
	} else if errors.Is(err, sql.ErrNoRows) {
		return apierr.ErrNotFound
	}
	return err
}
