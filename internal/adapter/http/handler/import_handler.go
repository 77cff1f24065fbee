package handler

import (
	"fmt"
	"io"

	"github.com/EthGlobal-BA-Builders/gotagota/internal/adapter/http/dto"
	"github.com/EthGlobal-BA-Builders/gotagota/internal/core/domain"
	"github.com/EthGlobal-BA-Builders/gotagota/internal/core/ports"
	"github.com/EthGlobal-BA-Builders/gotagota/pkg/apperror"
	"github.com/EthGlobal-BA-Builders/gotagota/pkg/response"

	"github.com/gin-gonic/gin"
)

// ImportHandler handles payroll file import endpoints.
type ImportHandler struct {
	ingestSvc ports.FileIngestor
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(ingestSvc ports.FileIngestor) *ImportHandler {
	return &ImportHandler{ingestSvc: ingestSvc}
}

// Import handles POST /api/v1/payrolls/import. It accepts a multipart upload
// with a "file" part (CSV or spreadsheet) and an optional "network" field.
func (h *ImportHandler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, apperror.Validation("missing file upload"))
		return
	}

	network, err := parseNetwork(c.DefaultPostForm("network", string(domain.NetworkCelo)))
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	format, err := h.ingestSvc.FormatForFilename(fileHeader.Filename)
	if err != nil {
		response.Error(c, err)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, apperror.Validation("unreadable file upload"))
		return
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		response.Error(c, apperror.Validation("unreadable file upload"))
		return
	}

	result, err := h.ingestSvc.Ingest(c.Request.Context(), fileBytes, format, network)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toImportResponse(result))
}

// parseNetwork validates the target network name from the request.
func parseNetwork(s string) (domain.Network, error) {
	switch domain.Network(s) {
	case domain.NetworkCelo, domain.NetworkCeloAlfajores:
		return domain.Network(s), nil
	}
	return "", fmt.Errorf("unsupported network %q", s)
}

// toImportResponse converts an ingest result to its DTO.
func toImportResponse(result *ports.IngestResult) dto.ImportResponse {
	records := make([]dto.PaymentRecordDTO, 0, len(result.Records))
	for _, rec := range result.Records {
		records = append(records, dto.PaymentRecordDTO{
			Name:                rec.Name,
			Email:               rec.Email,
			RecipientIdentifier: rec.RecipientIdentifier,
			ResolvedAddress:     rec.ResolvedAddress.String(),
			Amount:              rec.Amount,
			Monthly:             rec.Cadence == domain.CadenceMonthly,
		})
	}
	return dto.ImportResponse{
		Records:     records,
		SkippedRows: result.SkippedRows,
		Unresolved:  result.Unresolved,
	}
}
