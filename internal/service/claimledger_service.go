package service

import (
	"context"
	"fmt"
	"time"

	"github.com/EthGlobal-BA-Builders/gotagota/internal/core/domain"
	"github.com/EthGlobal-BA-Builders/gotagota/internal/core/ports"
	"github.com/EthGlobal-BA-Builders/gotagota/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ClaimLedgerService implements ports.ClaimLedger. Claim records materialize
// lazily on the first claim attempt; the Unclaimed -> Claimed transition is a
// repository-level compare-and-set, so racing claims for the same (entry,
// period) settle as exactly one success and one AlreadyClaimed.
type ClaimLedgerService struct {
	payrollRepo ports.PayrollRepository
	claimRepo   ports.ClaimRepository
	log         zerolog.Logger
	now         func() time.Time
}

// NewClaimLedgerService creates a new ClaimLedgerService.
func NewClaimLedgerService(payrollRepo ports.PayrollRepository, claimRepo ports.ClaimRepository, log zerolog.Logger) *ClaimLedgerService {
	return &ClaimLedgerService{
		payrollRepo: payrollRepo,
		claimRepo:   claimRepo,
		log:         log,
		now:         time.Now,
	}
}

// UnclaimedPeriods lists the entry's cadence-aligned periods from payroll
// activation through now, capped at the payroll's period count, minus those
// already claimed.
func (s *ClaimLedgerService) UnclaimedPeriods(ctx context.Context, entryID uuid.UUID) ([]domain.Period, error) {
	entry, payroll, err := s.loadEntry(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if payroll.ActivatedAt == nil {
		return nil, nil // Draft payroll has nothing claimable yet
	}

	eligible := s.eligiblePeriods(entry, payroll)
	if len(eligible) == 0 {
		return nil, nil
	}

	claimed, err := s.claimRepo.ListClaimed(ctx, entryID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list claimed periods: %w", err))
	}
	claimedSet := make(map[domain.Period]struct{}, len(claimed))
	for _, p := range claimed {
		claimedSet[p] = struct{}{}
	}

	var unclaimed []domain.Period
	for _, p := range eligible {
		if _, ok := claimedSet[p]; !ok {
			unclaimed = append(unclaimed, p)
		}
	}
	return unclaimed, nil
}

// MarkClaimed transitions (entry, period) to claimed. Claimed is terminal:
// there is no path back to unclaimed.
func (s *ClaimLedgerService) MarkClaimed(ctx context.Context, entryID uuid.UUID, period domain.Period) error {
	entry, payroll, err := s.loadEntry(ctx, entryID)
	if err != nil {
		return err
	}
	if payroll.ActivatedAt == nil {
		return apperror.ErrNotEligible()
	}

	if !s.isEligible(entry, payroll, period) {
		return apperror.ErrNotEligible()
	}

	// Materialize the record lazily; an existing record is untouched.
	if err := s.claimRepo.Upsert(ctx, &domain.PeriodClaim{
		ID:             uuid.New(),
		PayrollEntryID: entryID,
		Period:         period,
	}); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("materialize claim record: %w", err))
	}

	ok, err := s.claimRepo.MarkClaimed(ctx, entryID, period)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("mark claimed: %w", err))
	}
	if !ok {
		return apperror.ErrAlreadyClaimed()
	}

	s.log.Info().
		Str("entry_id", entryID.String()).
		Str("period", period.Format(entry.Cadence)).
		Msg("period claimed")

	// The claim itself has succeeded; a failed completion sweep only delays
	// the status flip until a later claim retriggers it.
	if err := s.maybeCompletePayroll(ctx, payroll); err != nil {
		s.log.Warn().Err(err).Str("payroll_id", payroll.ID.String()).Msg("payroll completion sweep failed")
	}
	return nil
}

// maybeCompletePayroll flips an active payroll to completed once every entry
// has claimed all of the payroll's periods.
func (s *ClaimLedgerService) maybeCompletePayroll(ctx context.Context, payroll *domain.Payroll) error {
	if payroll.Status != domain.PayrollStatusActive {
		return nil
	}

	entries, err := s.payrollRepo.ListEntries(ctx, payroll.ID)
	if err != nil {
		return fmt.Errorf("list entries: %w", err)
	}
	for i := range entries {
		claimed, err := s.claimRepo.ListClaimed(ctx, entries[i].ID)
		if err != nil {
			return fmt.Errorf("list claimed: %w", err)
		}
		if len(claimed) < payroll.PeriodCount {
			return nil
		}
	}

	if err := s.payrollRepo.UpdateStatus(ctx, payroll.ID, domain.PayrollStatusCompleted); err != nil {
		return fmt.Errorf("mark completed: %w", err)
	}
	s.log.Info().Str("payroll_id", payroll.ID.String()).Msg("all periods claimed, payroll completed")
	return nil
}

// eligiblePeriods enumerates the entry's claimable periods as of now.
func (s *ClaimLedgerService) eligiblePeriods(entry *domain.PayrollEntry, payroll *domain.Payroll) []domain.Period {
	periods := domain.PeriodsBetween(entry.Cadence, *payroll.ActivatedAt, s.now())
	if payroll.PeriodCount > 0 && len(periods) > payroll.PeriodCount {
		periods = periods[:payroll.PeriodCount]
	}
	return periods
}

func (s *ClaimLedgerService) isEligible(entry *domain.PayrollEntry, payroll *domain.Payroll, period domain.Period) bool {
	for _, p := range s.eligiblePeriods(entry, payroll) {
		if p == period {
			return true
		}
	}
	return false
}

func (s *ClaimLedgerService) loadEntry(ctx context.Context, entryID uuid.UUID) (*domain.PayrollEntry, *domain.Payroll, error) {
	entry, err := s.payrollRepo.GetEntry(ctx, entryID)
	if err != nil {
		return nil, nil, apperror.ErrDatabaseError(fmt.Errorf("get entry: %w", err))
	}
	if entry == nil {
		return nil, nil, apperror.ErrNotFound("payroll entry")
	}

	payroll, err := s.payrollRepo.GetByID(ctx, entry.PayrollID)
	if err != nil {
		return nil, nil, apperror.ErrDatabaseError(fmt.Errorf("get payroll: %w", err))
	}
	if payroll == nil {
		return nil, nil, apperror.ErrNotFound("payroll")
	}
	return entry, payroll, nil
}
