package queries

import (
	"context"

	"receipt-points/internal/infra"
	"receipt-points/internal/pkg/errs"
	"receipt-points/internal/usecase/shared"

	"github.com/google/uuid"
)

type PointsView struct {
	ReceiptID uuid.UUID `json:"receipt_id"`
	Points    int       `json:"points"`
}

type ReceiptQueries interface {
	GetPoints(ctx context.Context, id uuid.UUID) (*PointsView, error)
}

type receiptQueriesImpl struct {
	store shared.ReceiptStore
}

func NewReceiptQueries(store shared.ReceiptStore) ReceiptQueries {
	return &receiptQueriesImpl{store: store}
}

// GetPoints returns the score cached at submission time. A missing record is
// a not-found condition, never a zero score.
func (q *receiptQueriesImpl) GetPoints(ctx context.Context, id uuid.UUID) (*PointsView, error) {
	record, err := q.store.Get(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReceiptNotFound
		}
		return nil, err
	}
	return &PointsView{ReceiptID: record.ID, Points: record.Points}, nil
}
