package request

import (
	"receipt-points/internal/usecase/commands"
)

// ProcessReceiptRequest deliberately carries no binding tags: field-level
// validation lives in the domain so every violation in one submission can be
// reported together.
type ProcessReceiptRequest struct {
	Retailer     string               `json:"retailer"`
	PurchaseDate string               `json:"purchaseDate"`
	PurchaseTime string               `json:"purchaseTime"`
	Items        []ProcessReceiptItem `json:"items"`
	Total        string               `json:"total"`
}

type ProcessReceiptItem struct {
	ShortDescription string `json:"shortDescription"`
	Price            string `json:"price"`
}

func (r *ProcessReceiptRequest) ToCommand() commands.ProcessReceiptRequest {
	items := make([]commands.ReceiptItemInput, len(r.Items))
	for i, it := range r.Items {
		items[i] = commands.ReceiptItemInput{
			ShortDescription: it.ShortDescription,
			Price:            it.Price,
		}
	}
	return commands.ProcessReceiptRequest{
		Retailer:     r.Retailer,
		PurchaseDate: r.PurchaseDate,
		PurchaseTime: r.PurchaseTime,
		Items:        items,
		Total:        r.Total,
	}
}
