package commands

import (
	"context"

	"receipt-points/internal/domain/receipt"
	"receipt-points/internal/pkg/clock"
	"receipt-points/internal/pkg/errs"
	"receipt-points/internal/usecase/shared"

	"github.com/google/uuid"
)

type ProcessReceiptRequest struct {
	Retailer     string
	PurchaseDate string
	PurchaseTime string
	Items        []ReceiptItemInput
	Total        string
}

type ReceiptItemInput struct {
	ShortDescription string
	Price            string
}

type ProcessReceiptResult struct {
	ReceiptID uuid.UUID
	Points    int
}

type ReceiptCommands interface {
	Process(ctx context.Context, req ProcessReceiptRequest) (*ProcessReceiptResult, error)
}

type receiptUseCaseImpl struct {
	store shared.ReceiptStore
	clock clock.Clock
}

func NewReceiptCommands(store shared.ReceiptStore, clk clock.Clock) ReceiptCommands {
	return &receiptUseCaseImpl{store: store, clock: clk}
}

// Process validates the submission, scores it, and stores the record under a
// fresh identifier. Points are computed here, at submission time, never
// lazily at lookup: a genuine zero-point receipt must stay distinguishable
// from "not yet scored".
func (uc *receiptUseCaseImpl) Process(ctx context.Context, req ProcessReceiptRequest) (*ProcessReceiptResult, error) {
	items := make([]receipt.ItemInput, len(req.Items))
	for i, it := range req.Items {
		items[i] = receipt.ItemInput{ShortDescription: it.ShortDescription, Price: it.Price}
	}

	rec, err := receipt.New(req.Retailer, req.PurchaseDate, req.PurchaseTime, items, req.Total)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidReceipt)
	}

	record := shared.ReceiptRecord{
		ID:         uuid.New(),
		Receipt:    rec.Snapshot(),
		Points:     rec.Points(),
		ReceivedAt: uc.clock.Now(),
	}
	if err := uc.store.Put(ctx, record); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to store receipt"), errs.ErrStoreOperationFailed)
	}

	return &ProcessReceiptResult{ReceiptID: record.ID, Points: record.Points}, nil
}
