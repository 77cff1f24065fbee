package service

import (
	"context"
	"fmt"
	"time"

	"github.com/EthGlobal-BA-Builders/gotagota/internal/core/domain"
	"github.com/EthGlobal-BA-Builders/gotagota/internal/core/ports"
	"github.com/EthGlobal-BA-Builders/gotagota/pkg/apperror"

	"github.com/rs/zerolog"
)

// ClaimServiceImpl implements ports.ClaimService: the glue between a claim
// link's token, the ledger, and the custody layer.
type ClaimServiceImpl struct {
	codec       ports.ClaimTokenCodec
	ledger      ports.ClaimLedger
	payrollRepo ports.PayrollRepository
	custody     ports.CustodyClient
	log         zerolog.Logger
}

// NewClaimService creates a new ClaimServiceImpl.
func NewClaimService(
	codec ports.ClaimTokenCodec,
	ledger ports.ClaimLedger,
	payrollRepo ports.PayrollRepository,
	custody ports.CustodyClient,
	log zerolog.Logger,
) *ClaimServiceImpl {
	return &ClaimServiceImpl{
		codec:       codec,
		ledger:      ledger,
		payrollRepo: payrollRepo,
		custody:     custody,
		log:         log,
	}
}

// Preview decodes a claim token and reports what the link would claim,
// without mutating anything.
func (s *ClaimServiceImpl) Preview(ctx context.Context, token string) (*ports.ClaimPreview, error) {
	binding, entry, _, err := s.resolveBinding(ctx, token)
	if err != nil {
		return nil, err
	}

	unclaimed, err := s.ledger.UnclaimedPeriods(ctx, entry.ID)
	if err != nil {
		return nil, err
	}
	claimable := false
	for _, p := range unclaimed {
		if p == binding.Period {
			claimable = true
			break
		}
	}

	return &ports.ClaimPreview{
		PayrollID: binding.PayrollID,
		EntryID:   entry.ID,
		Recipient: entry.RecipientAddress,
		Period:    binding.Period,
		Cadence:   entry.Cadence,
		Amount:    entry.AmountPerPeriod,
		Claimable: claimable,
	}, nil
}

// Execute claims the period the token binds. The ledger's compare-and-set is
// the local gate (exactly one of two racing claims wins); the custody layer
// remains the final authority and releases the funds.
func (s *ClaimServiceImpl) Execute(ctx context.Context, token string) (*ports.ClaimReceipt, error) {
	binding, entry, payroll, err := s.resolveBinding(ctx, token)
	if err != nil {
		return nil, err
	}

	// Reconcile with the chain's view first: if the custody layer already
	// has this period claimed, the local record must catch up, never diverge.
	chainClaimed, err := s.custody.HasClaimedMonth(ctx, payroll.OnChainID, entry.RecipientAddress, binding.Period)
	if err != nil {
		s.log.Warn().Err(err).Msg("custody claim check failed, trusting local ledger")
	} else if chainClaimed {
		_ = s.ledger.MarkClaimed(ctx, entry.ID, binding.Period)
		return nil, apperror.ErrAlreadyClaimed()
	}

	if err := s.ledger.MarkClaimed(ctx, entry.ID, binding.Period); err != nil {
		return nil, err
	}

	txRef, err := s.custody.ClaimPayroll(ctx, payroll.OnChainID, entry.RecipientAddress, binding.Period)
	if err != nil {
		// The local record is already claimed and will not revert; surface
		// the chain failure with its cause so the caller can escalate.
		s.log.Error().Err(err).
			Str("entry_id", entry.ID.String()).
			Str("period", binding.Period.Format(entry.Cadence)).
			Msg("custody claim failed after local mark, needs reconciliation")
		return nil, apperror.ErrNetwork(err)
	}

	s.log.Info().
		Str("entry_id", entry.ID.String()).
		Str("period", binding.Period.Format(entry.Cadence)).
		Str("tx_ref", txRef).
		Msg("claim executed")

	return &ports.ClaimReceipt{
		EntryID:   entry.ID,
		Period:    binding.Period,
		TxRef:     txRef,
		ClaimedAt: time.Now().UTC(),
	}, nil
}

// resolveBinding decodes the token and loads the entities it references,
// rejecting tokens whose payroll/entry pairing does not hold.
func (s *ClaimServiceImpl) resolveBinding(ctx context.Context, token string) (*domain.ClaimBinding, *domain.PayrollEntry, *domain.Payroll, error) {
	binding, err := s.codec.Decode(token)
	if err != nil {
		return nil, nil, nil, err
	}

	entry, err := s.payrollRepo.GetEntry(ctx, binding.EntryID)
	if err != nil {
		return nil, nil, nil, apperror.ErrDatabaseError(fmt.Errorf("get entry: %w", err))
	}
	if entry == nil {
		return nil, nil, nil, apperror.ErrNotFound("payroll entry")
	}
	if entry.PayrollID != binding.PayrollID {
		// A validly-signed token can still go stale if data moved underneath
		// it; treat the mismatch as a bad token, not a server fault.
		return nil, nil, nil, apperror.ErrInvalidClaimToken()
	}

	payroll, err := s.payrollRepo.GetByID(ctx, binding.PayrollID)
	if err != nil {
		return nil, nil, nil, apperror.ErrDatabaseError(fmt.Errorf("get payroll: %w", err))
	}
	if payroll == nil {
		return nil, nil, nil, apperror.ErrNotFound("payroll")
	}
	return binding, entry, payroll, nil
}
