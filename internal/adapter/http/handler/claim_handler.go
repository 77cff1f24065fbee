package handler

import (
	"github.com/EthGlobal-BA-Builders/gotagota/internal/adapter/http/dto"
	"github.com/EthGlobal-BA-Builders/gotagota/internal/core/ports"
	"github.com/EthGlobal-BA-Builders/gotagota/pkg/apperror"
	"github.com/EthGlobal-BA-Builders/gotagota/pkg/response"

	"github.com/gin-gonic/gin"
)

// ClaimHandler handles the public claim-link endpoints.
type ClaimHandler struct {
	claimSvc ports.ClaimService
}

// NewClaimHandler creates a new ClaimHandler.
func NewClaimHandler(claimSvc ports.ClaimService) *ClaimHandler {
	return &ClaimHandler{claimSvc: claimSvc}
}

// Preview handles GET /api/v1/claims/:token.
func (h *ClaimHandler) Preview(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		response.Error(c, apperror.ErrInvalidClaimToken())
		return
	}

	preview, err := h.claimSvc.Preview(c.Request.Context(), token)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ClaimPreviewResponse{
		PayrollID: preview.PayrollID.String(),
		EntryID:   preview.EntryID.String(),
		Recipient: preview.Recipient.String(),
		Period:    preview.Period.Format(preview.Cadence),
		Cadence:   string(preview.Cadence),
		Amount:    preview.Amount,
		Claimable: preview.Claimable,
	})
}

// Execute handles POST /api/v1/claims/:token.
func (h *ClaimHandler) Execute(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		response.Error(c, apperror.ErrInvalidClaimToken())
		return
	}

	receipt, err := h.claimSvc.Execute(c.Request.Context(), token)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ClaimReceiptResponse{
		EntryID:   receipt.EntryID.String(),
		Period:    receipt.Period.String(),
		TxRef:     receipt.TxRef,
		ClaimedAt: receipt.ClaimedAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}
