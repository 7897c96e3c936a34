package shared

import (
	"context"
	"time"

	"receipt-points/internal/domain/receipt"

	"github.com/google/uuid"
)

// ReceiptRecord is what a submission leaves behind: the validated receipt,
// its identifier, and the points computed eagerly at submission time. Each
// record is written exactly once and read-only afterwards.
type ReceiptRecord struct {
	ID         uuid.UUID
	Receipt    receipt.Snapshot
	Points     int
	ReceivedAt time.Time
}

// ReceiptStore is the injected persistence port. Put must be visible to
// subsequent Gets before the submission response returns; absence is
// signalled with the infra NOT_FOUND kind.
type ReceiptStore interface {
	Put(ctx context.Context, record ReceiptRecord) error
	Get(ctx context.Context, id uuid.UUID) (*ReceiptRecord, error)
}
