package api

import (
	"net/http"

	reqdto "receipt-points/internal/handler/dto/request"
	resdto "receipt-points/internal/handler/dto/response"
	"receipt-points/internal/handler/httperr"
	"receipt-points/internal/pkg/errs"
	"receipt-points/internal/usecase/commands"
	"receipt-points/internal/usecase/queries"

	errors "github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReceiptHandler struct {
	cmds commands.ReceiptCommands
	q    queries.ReceiptQueries
}

func NewReceiptHandler(cmds commands.ReceiptCommands, q queries.ReceiptQueries) *ReceiptHandler {
	return &ReceiptHandler{cmds: cmds, q: q}
}

// @Summary Process receipt
// @Description Validate a receipt, score it, and return its identifier
// @Tags receipts
// @Accept json
// @Produce json
// @Param request body reqdto.ProcessReceiptRequest true "Receipt to process"
// @Success 200 {object} resdto.ProcessReceiptResponse
// @Failure 400 {string} string "comma-joined validation messages"
// @Failure 500 {object} map[string]string
// @Router /receipts/process [post]
func (h *ReceiptHandler) Process(c *gin.Context) {
	var req reqdto.ProcessReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithText(c, http.StatusBadRequest, err, err.Error())
		return
	}
	result, err := h.cmds.Process(c.Request.Context(), req.ToCommand())
	if err != nil {
		if errors.Is(err, errs.ErrInvalidReceipt) {
			httperr.AbortWithText(c, http.StatusBadRequest, err, err.Error())
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to process receipt", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProcessResult(result))
}

// @Summary Get receipt points
// @Description Return the points awarded to a previously processed receipt
// @Tags receipts
// @Produce json
// @Param id path string true "Receipt ID"
// @Success 200 {object} resdto.PointsResponse
// @Failure 404 {object} resdto.NotFoundResponse
// @Router /receipts/{id}/points [get]
func (h *ReceiptHandler) GetPoints(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// a malformed id was necessarily never issued
		httperr.AbortWithJSON(c, http.StatusNotFound, err, resdto.ReceiptNotFound())
		return
	}
	view, err := h.q.GetPoints(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrReceiptNotFound) {
			httperr.AbortWithJSON(c, http.StatusNotFound, err, resdto.ReceiptNotFound())
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load receipt points", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPointsView(view))
}
