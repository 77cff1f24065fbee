package service

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/EthGlobal-BA-Builders/gotagota/internal/core/domain"
	"github.com/EthGlobal-BA-Builders/gotagota/internal/core/ports"
	"github.com/EthGlobal-BA-Builders/gotagota/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// PayrollServiceImpl implements ports.PayrollService.
type PayrollServiceImpl struct {
	payrollRepo ports.PayrollRepository
	transactor  ports.DBTransactor
	custody     ports.CustodyClient
	tokenCodec  ports.ClaimTokenCodec
	log         zerolog.Logger
	now         func() time.Time
}

// NewPayrollService creates a new PayrollServiceImpl.
func NewPayrollService(
	payrollRepo ports.PayrollRepository,
	transactor ports.DBTransactor,
	custody ports.CustodyClient,
	tokenCodec ports.ClaimTokenCodec,
	log zerolog.Logger,
) *PayrollServiceImpl {
	return &PayrollServiceImpl{
		payrollRepo: payrollRepo,
		transactor:  transactor,
		custody:     custody,
		tokenCodec:  tokenCodec,
		log:         log,
		now:         time.Now,
	}
}

// CreatePayroll persists a draft payroll with its entries, registers it with
// the custody layer, then activates it. Every record must carry a resolved
// address by this point: an unresolved record is an import error, not
// something to pass through silently.
func (s *PayrollServiceImpl) CreatePayroll(ctx context.Context, req ports.CreatePayrollRequest) (*ports.CreatePayrollResult, error) {
	if req.PaymentDay < 1 || req.PaymentDay > 31 {
		return nil, apperror.Validation("payment day must be between 1 and 31")
	}
	if req.PeriodCount < 1 {
		return nil, apperror.Validation("period count must be at least 1")
	}
	if len(req.Records) == 0 {
		return nil, apperror.ErrNoValidRows()
	}

	employees := make([]domain.Address, len(req.Records))
	amounts := make([]*big.Int, len(req.Records))
	for i, r := range req.Records {
		if !r.Resolved() {
			return nil, apperror.Validation(fmt.Sprintf("recipient %q is unresolved", r.RecipientIdentifier))
		}
		wei, err := domain.FloatToBaseUnits(r.Amount, domain.StableTokenDecimals)
		if err != nil {
			return nil, apperror.ErrInvalidAmount()
		}
		employees[i] = r.ResolvedAddress
		amounts[i] = wei
	}

	now := s.now().UTC()
	payroll := &domain.Payroll{
		ID:              uuid.New(),
		EmployerAddress: req.EmployerAddress,
		PaymentDay:      req.PaymentDay,
		PeriodCount:     req.PeriodCount,
		Status:          domain.PayrollStatusDraft,
		CreatedAt:       now,
	}

	entries := make([]domain.PayrollEntry, len(req.Records))
	for i, r := range req.Records {
		entries[i] = domain.PayrollEntry{
			ID:               uuid.New(),
			PayrollID:        payroll.ID,
			RecipientAddress: r.ResolvedAddress,
			Name:             r.Name,
			Email:            r.Email,
			AmountPerPeriod:  r.Amount,
			Cadence:          r.Cadence,
			CreatedAt:        now,
		}
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.payrollRepo.Create(ctx, dbTx, payroll); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("create payroll: %w", err))
	}
	for i := range entries {
		if err := s.payrollRepo.CreateEntry(ctx, dbTx, &entries[i]); err != nil {
			return nil, apperror.ErrDatabaseError(fmt.Errorf("create entry: %w", err))
		}
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	// On-chain registration. employees and amounts line up index-for-index.
	onChainID, err := s.custody.SetupPayroll(ctx, req.PaymentDay, req.PeriodCount, employees, amounts)
	if err != nil {
		s.log.Error().Err(err).Str("payroll_id", payroll.ID.String()).Msg("custody setup failed, payroll stays draft")
		return nil, apperror.ErrNetwork(err)
	}

	activatedAt := s.now().UTC()
	if err := s.payrollRepo.Activate(ctx, payroll.ID, onChainID, activatedAt); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("activate payroll: %w", err))
	}
	payroll.OnChainID = onChainID
	payroll.Status = domain.PayrollStatusActive
	payroll.ActivatedAt = &activatedAt

	// Share links for the first claimable period of each entry.
	links := make(map[uuid.UUID]string, len(entries))
	for _, entry := range entries {
		token, err := s.tokenCodec.Mint(domain.ClaimBinding{
			PayrollID: payroll.ID,
			EntryID:   entry.ID,
			Period:    domain.PeriodOf(entry.Cadence, activatedAt),
			Cadence:   entry.Cadence,
		})
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("mint claim token: %w", err))
		}
		links[entry.ID] = token
	}

	s.log.Info().
		Str("payroll_id", payroll.ID.String()).
		Int64("onchain_id", onChainID).
		Int("entries", len(entries)).
		Msg("payroll created and activated")

	return &ports.CreatePayrollResult{
		Payroll:    payroll,
		Entries:    entries,
		ClaimLinks: links,
	}, nil
}

// GetPayroll fetches a payroll with its entries.
func (s *PayrollServiceImpl) GetPayroll(ctx context.Context, id uuid.UUID) (*domain.Payroll, []domain.PayrollEntry, error) {
	payroll, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, apperror.ErrDatabaseError(fmt.Errorf("get payroll: %w", err))
	}
	if payroll == nil {
		return nil, nil, apperror.ErrNotFound("payroll")
	}

	entries, err := s.payrollRepo.ListEntries(ctx, id)
	if err != nil {
		return nil, nil, apperror.ErrDatabaseError(fmt.Errorf("list entries: %w", err))
	}
	return payroll, entries, nil
}

// ListPayrolls lists an employer's payrolls.
func (s *PayrollServiceImpl) ListPayrolls(ctx context.Context, employer domain.Address) ([]domain.Payroll, error) {
	payrolls, err := s.payrollRepo.ListByEmployer(ctx, employer)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list payrolls: %w", err))
	}
	return payrolls, nil
}
