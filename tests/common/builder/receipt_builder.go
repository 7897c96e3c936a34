//go:build unit || e2e || integration

package builder

import (
	"time"

	"receipt-points/internal/domain/receipt"
	"receipt-points/internal/usecase/commands"
	"receipt-points/internal/usecase/shared"

	"github.com/google/uuid"
)

// ReceiptBuilder produces receipt fixtures in every shape the tests need.
// Defaults to the four-Gatorade corner-market receipt (109 points).
type ReceiptBuilder struct {
	retailer     string
	purchaseDate string
	purchaseTime string
	items        []receipt.ItemInput
	total        string
}

func NewReceiptBuilder() *ReceiptBuilder {
	items := make([]receipt.ItemInput, 4)
	for i := range items {
		items[i] = receipt.ItemInput{ShortDescription: "Gatorade", Price: "2.25"}
	}
	return &ReceiptBuilder{
		retailer:     "M&M Corner Market",
		purchaseDate: "2022-03-20",
		purchaseTime: "14:33",
		items:        items,
		total:        "9.00",
	}
}

func (b *ReceiptBuilder) WithRetailer(v string) *ReceiptBuilder {
	b.retailer = v
	return b
}

func (b *ReceiptBuilder) WithPurchaseDate(v string) *ReceiptBuilder {
	b.purchaseDate = v
	return b
}

func (b *ReceiptBuilder) WithPurchaseTime(v string) *ReceiptBuilder {
	b.purchaseTime = v
	return b
}

func (b *ReceiptBuilder) WithTotal(v string) *ReceiptBuilder {
	b.total = v
	return b
}

func (b *ReceiptBuilder) WithItems(items ...receipt.ItemInput) *ReceiptBuilder {
	b.items = items
	return b
}

func (b *ReceiptBuilder) AddItem(shortDescription, price string) *ReceiptBuilder {
	b.items = append(b.items, receipt.ItemInput{ShortDescription: shortDescription, Price: price})
	return b
}

func (b *ReceiptBuilder) BuildDomain() (*receipt.Receipt, error) {
	return receipt.New(b.retailer, b.purchaseDate, b.purchaseTime, b.items, b.total)
}

func (b *ReceiptBuilder) BuildCommand() commands.ProcessReceiptRequest {
	items := make([]commands.ReceiptItemInput, len(b.items))
	for i, it := range b.items {
		items[i] = commands.ReceiptItemInput{ShortDescription: it.ShortDescription, Price: it.Price}
	}
	return commands.ProcessReceiptRequest{
		Retailer:     b.retailer,
		PurchaseDate: b.purchaseDate,
		PurchaseTime: b.purchaseTime,
		Items:        items,
		Total:        b.total,
	}
}

// BuildRequestMap returns the JSON-shaped payload so tests can mutate
// individual fields before sending.
func (b *ReceiptBuilder) BuildRequestMap() map[string]any {
	items := make([]map[string]any, len(b.items))
	for i, it := range b.items {
		items[i] = map[string]any{
			"shortDescription": it.ShortDescription,
			"price":            it.Price,
		}
	}
	return map[string]any{
		"retailer":     b.retailer,
		"purchaseDate": b.purchaseDate,
		"purchaseTime": b.purchaseTime,
		"items":        items,
		"total":        b.total,
	}
}

// BuildRecord builds a stored record as the submission command would,
// scoring the receipt eagerly.
func (b *ReceiptBuilder) BuildRecord(receivedAt time.Time) (shared.ReceiptRecord, error) {
	rec, err := b.BuildDomain()
	if err != nil {
		return shared.ReceiptRecord{}, err
	}
	return shared.ReceiptRecord{
		ID:         uuid.New(),
		Receipt:    rec.Snapshot(),
		Points:     rec.Points(),
		ReceivedAt: receivedAt,
	}, nil
}
