package response

import (
	"receipt-points/internal/usecase/commands"
	"receipt-points/internal/usecase/queries"
)

type ProcessReceiptResponse struct {
	ID string `json:"id"`
}

func FromProcessResult(r *commands.ProcessReceiptResult) *ProcessReceiptResponse {
	return &ProcessReceiptResponse{ID: r.ReceiptID.String()}
}

type PointsResponse struct {
	Points int `json:"points"`
}

func FromPointsView(v *queries.PointsView) *PointsResponse {
	return &PointsResponse{Points: v.Points}
}

type NotFoundResponse struct {
	Detail string `json:"detail"`
}

// ReceiptNotFound is the pinned 404 body for points lookups.
func ReceiptNotFound() NotFoundResponse {
	return NotFoundResponse{Detail: "No receipt found for that ID."}
}
