package store

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"

	"receipt-points/internal/domain/receipt"
	"receipt-points/internal/infra"
	"receipt-points/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schemaSQL string

const pgUniqueViolation = "23505"

// PostgresReceiptStore is the swap-in persistent backend. Receipts are kept
// as the submitted JSON document; points stay denormalized next to it so a
// lookup never rescores.
type PostgresReceiptStore struct {
	pool *pgxpool.Pool
}

func NewPostgresReceiptStore(pool *pgxpool.Pool) *PostgresReceiptStore {
	return &PostgresReceiptStore{pool: pool}
}

// EnsureSchema creates the receipts table if missing. Idempotent.
func (s *PostgresReceiptStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schemaSQL); err != nil {
		return infra.WrapRepoErr("failed to ensure receipts schema", err)
	}
	return nil
}

func (s *PostgresReceiptStore) Put(ctx context.Context, record shared.ReceiptRecord) error {
	body, err := json.Marshal(record.Receipt)
	if err != nil {
		return infra.WrapRepoErr("failed to encode receipt", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO receipts (id, receipt, points, received_at) VALUES ($1, $2, $3, $4)`,
		record.ID, body, record.Points, record.ReceivedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return infra.WrapRepoErr("receipt already stored", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert receipt", err)
	}
	return nil
}

func (s *PostgresReceiptStore) Get(ctx context.Context, id uuid.UUID) (*shared.ReceiptRecord, error) {
	record := shared.ReceiptRecord{ID: id}
	var body []byte

	row := s.pool.QueryRow(ctx,
		`SELECT receipt, points, received_at FROM receipts WHERE id = $1`, id)
	if err := row.Scan(&body, &record.Points, &record.ReceivedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("receipt not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get receipt by id", err)
	}

	var snap receipt.Snapshot
	if err := json.Unmarshal(body, &snap); err != nil {
		return nil, infra.WrapRepoErr("failed to decode stored receipt", err)
	}
	record.Receipt = snap
	return &record, nil
}
