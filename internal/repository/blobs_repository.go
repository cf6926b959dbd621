package repository

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/mindful/internal/error_values"
	"github.com/limbo/mindful/pkg/cleanup"
)

const upsertBlobQuery = `INSERT INTO blobs (slot, payload) VALUES ($1, $2) ON CONFLICT (slot) DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW();`

// BlobsRepository keeps the blobs in a postgres table. Used when the profile is synced to a server.
type BlobsRepository struct {
	conn PgConnection
}

func NewBlobsRepo(cfg DBConfig) *BlobsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for blobsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for blobsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &BlobsRepository{
		conn: pool,
	}
}

func NewBlobsRepoWithConn(conn PgConnection) *BlobsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for blobsRepo: " + err.Error())
	}
	return &BlobsRepository{
		conn: conn,
	}
}

func (br *BlobsRepository) Get(ctx context.Context, slot string) ([]byte, error) {
	var payload []byte
	row := br.conn.QueryRow(ctx, `SELECT payload FROM blobs WHERE slot = $1;`, slot)
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrBlobNotFound
		}
		return nil, errors.New("getting blob error: " + err.Error())
	}
	return payload, nil
}

func (br *BlobsRepository) Put(ctx context.Context, slot string, payload []byte) error {
	_, err := br.conn.Exec(ctx, upsertBlobQuery,
		slot,
		payload,
	)
	if err != nil {
		return errors.New("saving blob error: " + err.Error())
	}
	return nil
}

func (br *BlobsRepository) Delete(ctx context.Context, slot string) error {
	ct, err := br.conn.Exec(ctx, `DELETE FROM blobs WHERE slot = $1;`, slot)
	if err != nil {
		return errors.New("deleting blob error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrBlobNotFound
	}
	return nil
}
