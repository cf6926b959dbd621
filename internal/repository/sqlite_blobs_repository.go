package repository

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	errorvalues "github.com/limbo/mindful/internal/error_values"
	"github.com/limbo/mindful/pkg/cleanup"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS blobs (
	slot       TEXT PRIMARY KEY,
	payload    BLOB NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

// SQLiteBlobsRepository is the on-device blob store.
type SQLiteBlobsRepository struct {
	db *sql.DB
}

func NewSQLiteBlobsRepo(path string) (*SQLiteBlobsRepository, error) {
	if path == "" {
		return nil, errors.New("sqlite db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.New("creating db dir error: " + err.Error())
	}
	db, err := sql.Open("sqlite", "file:"+path+"?mode=rwc")
	if err != nil {
		return nil, errors.New("opening sqlite db error: " + err.Error())
	}
	// single writer, the app never touches the store from two goroutines at once
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.New("pinging sqlite db error: " + err.Error())
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, errors.New("migrating sqlite db error: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing sqlite blobs db",
		F:    db.Close,
	})
	return &SQLiteBlobsRepository{db: db}, nil
}

func (sr *SQLiteBlobsRepository) Get(ctx context.Context, slot string) ([]byte, error) {
	var payload []byte
	row := sr.db.QueryRowContext(ctx, `SELECT payload FROM blobs WHERE slot = ?;`, slot)
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errorvalues.ErrBlobNotFound
		}
		return nil, errors.New("getting blob error: " + err.Error())
	}
	return payload, nil
}

func (sr *SQLiteBlobsRepository) Put(ctx context.Context, slot string, payload []byte) error {
	_, err := sr.db.ExecContext(ctx, `INSERT INTO blobs (slot, payload) VALUES (?, ?)
		ON CONFLICT (slot) DO UPDATE SET payload = excluded.payload, updated_at = CURRENT_TIMESTAMP;`,
		slot,
		payload,
	)
	if err != nil {
		return errors.New("saving blob error: " + err.Error())
	}
	return nil
}

func (sr *SQLiteBlobsRepository) Delete(ctx context.Context, slot string) error {
	res, err := sr.db.ExecContext(ctx, `DELETE FROM blobs WHERE slot = ?;`, slot)
	if err != nil {
		return errors.New("deleting blob error: " + err.Error())
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.New("deleting blob error: " + err.Error())
	}
	if n == 0 {
		return errorvalues.ErrBlobNotFound
	}
	return nil
}

func (sr *SQLiteBlobsRepository) Close() error {
	return sr.db.Close()
}
