package handler

import (
	"encoding/hex"
	"strings"

	"github.com/EthGlobal-BA-Builders/gotagota/internal/adapter/http/dto"
	"github.com/EthGlobal-BA-Builders/gotagota/internal/core/domain"
	"github.com/EthGlobal-BA-Builders/gotagota/internal/core/ports"
	"github.com/EthGlobal-BA-Builders/gotagota/pkg/apperror"
	"github.com/EthGlobal-BA-Builders/gotagota/pkg/response"

	"github.com/gin-gonic/gin"
)

// TransferHandler handles relayed (gasless) transfer endpoints.
type TransferHandler struct {
	relaySvc ports.RelayService
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(relaySvc ports.RelayService) *TransferHandler {
	return &TransferHandler{relaySvc: relaySvc}
}

// Relay handles POST /api/v1/transfers/relay.
func (h *TransferHandler) Relay(c *gin.Context) {
	var req dto.RelayTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	amount, err := domain.ToBaseUnits(req.Amount, domain.StableTokenDecimals)
	if err != nil {
		response.Error(c, apperror.ErrInvalidAmount())
		return
	}

	auth := domain.RelayAuthorization{
		UserAddress: domain.NormalizeAddress(req.UserAddress),
		ToAddress:   domain.NormalizeAddress(req.ToAddress),
		Amount:      amount,
		Nonce:       req.Nonce,
		Deadline:    req.Deadline,
		V:           req.V,
	}
	if err := decodeSignatureWord(req.R, &auth.R); err != nil {
		response.Error(c, apperror.Validation("r must be a 32-byte hex value"))
		return
	}
	if err := decodeSignatureWord(req.S, &auth.S); err != nil {
		response.Error(c, apperror.Validation("s must be a 32-byte hex value"))
		return
	}

	txRef, err := h.relaySvc.RelayTransfer(c.Request.Context(), auth)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.RelayTransferResponse{TxRef: txRef})
}

// decodeSignatureWord parses a 32-byte hex string, with or without 0x prefix.
func decodeSignatureWord(s string, out *[32]byte) error {
	raw, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return err
	}
	copy(out[:], raw)
	return nil
}
