package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_blobs.go -package=mocks BlobsRepositoryI

// Slots of the persisted blobs.
const (
	SlotCatalog     = "savedMeditations"
	SlotStatistics  = "userMeditationData"
	SlotPreferences = "userPreferences"
)

type BlobsRepositoryI interface {
	// Returns payload stored under slot. ErrBlobNotFound if nothing was saved yet
	Get(ctx context.Context, slot string) ([]byte, error)
	// Stores payload under slot, replacing the previous one
	Put(ctx context.Context, slot string, payload []byte) error
	// Removes slot
	Delete(ctx context.Context, slot string) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
