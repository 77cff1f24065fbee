package handler

import (
	"github.com/EthGlobal-BA-Builders/gotagota/internal/adapter/http/dto"
	"github.com/EthGlobal-BA-Builders/gotagota/internal/core/domain"
	"github.com/EthGlobal-BA-Builders/gotagota/internal/core/ports"
	"github.com/EthGlobal-BA-Builders/gotagota/pkg/apperror"
	"github.com/EthGlobal-BA-Builders/gotagota/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PayrollHandler handles payroll setup and query endpoints.
type PayrollHandler struct {
	payrollSvc ports.PayrollService
	ledger     ports.ClaimLedger
	codec      ports.ClaimTokenCodec
}

// NewPayrollHandler creates a new PayrollHandler.
func NewPayrollHandler(payrollSvc ports.PayrollService, ledger ports.ClaimLedger, codec ports.ClaimTokenCodec) *PayrollHandler {
	return &PayrollHandler{payrollSvc: payrollSvc, ledger: ledger, codec: codec}
}

// Create handles POST /api/v1/payrolls.
func (h *PayrollHandler) Create(c *gin.Context) {
	var req dto.CreatePayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	records := make([]domain.PaymentRecord, 0, len(req.Records))
	for _, rec := range req.Records {
		cadence := domain.CadenceWeekly
		if rec.Monthly {
			cadence = domain.CadenceMonthly
		}
		records = append(records, domain.PaymentRecord{
			Name:                rec.Name,
			Email:               rec.Email,
			RecipientIdentifier: rec.RecipientIdentifier,
			ResolvedAddress:     domain.NormalizeAddress(rec.ResolvedAddress),
			Amount:              rec.Amount,
			Cadence:             cadence,
		})
	}

	result, err := h.payrollSvc.CreatePayroll(c.Request.Context(), ports.CreatePayrollRequest{
		EmployerAddress: domain.NormalizeAddress(req.EmployerAddress),
		PaymentDay:      req.PaymentDay,
		PeriodCount:     req.PeriodCount,
		Records:         records,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.CreatePayrollResponse{
		Payroll: toPayrollResponse(result.Payroll),
		Entries: toEntryResponses(result.Entries, result.ClaimLinks),
	})
}

// Get handles GET /api/v1/payrolls/:id.
func (h *PayrollHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid payroll id"))
		return
	}

	payroll, entries, err := h.payrollSvc.GetPayroll(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.PayrollDetailResponse{
		Payroll: toPayrollResponse(payroll),
		Entries: toEntryResponses(entries, nil),
	})
}

// List handles GET /api/v1/payrolls?employer=0x...
func (h *PayrollHandler) List(c *gin.Context) {
	employer := c.Query("employer")
	if !domain.IsHexAddress(employer) {
		response.Error(c, apperror.Validation("employer query parameter must be a hex address"))
		return
	}

	payrolls, err := h.payrollSvc.ListPayrolls(c.Request.Context(), domain.NormalizeAddress(employer))
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := make([]dto.PayrollResponse, 0, len(payrolls))
	for i := range payrolls {
		resp = append(resp, toPayrollResponse(&payrolls[i]))
	}
	response.OK(c, resp)
}

// Unclaimed handles GET /api/v1/payrolls/:id/entries/:entry_id/unclaimed.
// It lists the entry's claimable periods that have not been claimed yet,
// minting a shareable claim link for each so later periods stay reachable
// after the creation-time links are spent.
func (h *PayrollHandler) Unclaimed(c *gin.Context) {
	payrollID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid payroll id"))
		return
	}
	entryID, err := uuid.Parse(c.Param("entry_id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid entry id"))
		return
	}

	_, entries, err := h.payrollSvc.GetPayroll(c.Request.Context(), payrollID)
	if err != nil {
		response.Error(c, err)
		return
	}
	var entry *domain.PayrollEntry
	for i := range entries {
		if entries[i].ID == entryID {
			entry = &entries[i]
			break
		}
	}
	if entry == nil {
		response.Error(c, apperror.ErrNotFound("payroll entry"))
		return
	}

	periods, err := h.ledger.UnclaimedPeriods(c.Request.Context(), entryID)
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.UnclaimedPeriod, 0, len(periods))
	for _, p := range periods {
		token, err := h.codec.Mint(domain.ClaimBinding{
			PayrollID: payrollID,
			EntryID:   entryID,
			Period:    p,
			Cadence:   entry.Cadence,
		})
		if err != nil {
			response.Error(c, apperror.InternalError(err))
			return
		}
		out = append(out, dto.UnclaimedPeriod{
			Period:    p.Format(entry.Cadence),
			ClaimLink: "/api/v1/claims/" + token,
		})
	}
	response.OK(c, dto.UnclaimedPeriodsResponse{
		EntryID: entryID.String(),
		Cadence: string(entry.Cadence),
		Periods: out,
	})
}

// toPayrollResponse converts a domain.Payroll to its DTO.
func toPayrollResponse(p *domain.Payroll) dto.PayrollResponse {
	resp := dto.PayrollResponse{
		ID:              p.ID.String(),
		OnChainID:       p.OnChainID,
		EmployerAddress: p.EmployerAddress.String(),
		PaymentDay:      p.PaymentDay,
		PeriodCount:     p.PeriodCount,
		Status:          string(p.Status),
		CreatedAt:       p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if p.ActivatedAt != nil {
		s := p.ActivatedAt.Format("2006-01-02T15:04:05Z07:00")
		resp.ActivatedAt = &s
	}
	return resp
}

// toEntryResponses converts payroll entries, attaching claim links when minted.
func toEntryResponses(entries []domain.PayrollEntry, links map[uuid.UUID]string) []dto.PayrollEntryResponse {
	resp := make([]dto.PayrollEntryResponse, 0, len(entries))
	for _, e := range entries {
		er := dto.PayrollEntryResponse{
			ID:               e.ID.String(),
			RecipientAddress: e.RecipientAddress.String(),
			Name:             e.Name,
			Email:            e.Email,
			AmountPerPeriod:  e.AmountPerPeriod,
			Cadence:          string(e.Cadence),
		}
		if token, ok := links[e.ID]; ok {
			er.ClaimLink = "/api/v1/claims/" + token
		}
		resp = append(resp, er)
	}
	return resp
}
