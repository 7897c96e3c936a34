package receipt

import "fmt"

// Receipt is a structurally valid purchase record. Construction via New is
// the only path in; instances are immutable afterwards.
type Receipt struct {
	retailer     Retailer
	purchaseDate PurchaseDate
	purchaseTime PurchaseTime
	items        []Item
	total        Amount
}

type Item struct {
	description Description
	price       Amount
}

func (i Item) Description() Description { return i.description }
func (i Item) Price() Amount            { return i.price }

// New validates every field and collects all violations from the submission
// before failing, so a client sees the full list at once rather than one
// violation per round trip.
func New(retailer, purchaseDate, purchaseTime string, items []ItemInput, total string) (*Receipt, error) {
	var violations []string

	ret, err := NewRetailer(retailer)
	if err != nil {
		violations = append(violations, err.Error())
	}
	date, err := NewPurchaseDate(purchaseDate)
	if err != nil {
		violations = append(violations, err.Error())
	}
	clk, err := NewPurchaseTime(purchaseTime)
	if err != nil {
		violations = append(violations, err.Error())
	}
	tot, err := NewAmount("total", total)
	if err != nil {
		violations = append(violations, err.Error())
	}

	validated := make([]Item, 0, len(items))
	if len(items) == 0 {
		violations = append(violations, "items must contain at least one item")
	}
	for i, it := range items {
		desc, derr := NewDescription(fmt.Sprintf("items[%d].shortDescription", i), it.ShortDescription)
		if derr != nil {
			violations = append(violations, derr.Error())
		}
		price, perr := NewAmount(fmt.Sprintf("items[%d].price", i), it.Price)
		if perr != nil {
			violations = append(violations, perr.Error())
		}
		if derr == nil && perr == nil {
			validated = append(validated, Item{description: desc, price: price})
		}
	}

	if len(violations) > 0 {
		return nil, newValidationError(violations)
	}

	return &Receipt{
		retailer:     ret,
		purchaseDate: date,
		purchaseTime: clk,
		items:        validated,
		total:        tot,
	}, nil
}

func (r *Receipt) Retailer() Retailer         { return r.retailer }
func (r *Receipt) PurchaseDate() PurchaseDate { return r.purchaseDate }
func (r *Receipt) PurchaseTime() PurchaseTime { return r.purchaseTime }
func (r *Receipt) Total() Amount              { return r.total }

func (r *Receipt) Items() []Item {
	return append([]Item(nil), r.items...)
}

func (r *Receipt) Snapshot() Snapshot {
	items := make([]ItemSnapshot, len(r.items))
	for i, it := range r.items {
		items[i] = ItemSnapshot{
			ShortDescription: it.description.String(),
			Price:            it.price.String(),
		}
	}
	return Snapshot{
		Retailer:     r.retailer.String(),
		PurchaseDate: r.purchaseDate.String(),
		PurchaseTime: r.purchaseTime.String(),
		Items:        items,
		Total:        r.total.String(),
	}
}

// FromSnapshot rebuilds a Receipt from its stored form, revalidating on the
// way in. Stored snapshots were validated at submission, so failure here
// means the backing store was tampered with.
func FromSnapshot(s Snapshot) (*Receipt, error) {
	items := make([]ItemInput, len(s.Items))
	for i, it := range s.Items {
		items[i] = ItemInput{ShortDescription: it.ShortDescription, Price: it.Price}
	}
	return New(s.Retailer, s.PurchaseDate, s.PurchaseTime, items, s.Total)
}
