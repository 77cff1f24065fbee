package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/EthGlobal-BA-Builders/gotagota/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ClaimRepo implements ports.ClaimRepository. The Unclaimed -> Claimed
// transition is a single UPDATE guarded by `claimed = FALSE`, so concurrent
// claimers settle on exactly one winner at the database.
type ClaimRepo struct {
	pool Pool
}

// NewClaimRepo creates a new ClaimRepo.
func NewClaimRepo(pool Pool) *ClaimRepo {
	return &ClaimRepo{pool: pool}
}

// Upsert creates the claim record if absent. An existing record is left
// untouched: claim state never regresses through this path.
func (r *ClaimRepo) Upsert(ctx context.Context, c *domain.PeriodClaim) error {
	query := `INSERT INTO period_claims (id, payroll_entry_id, period_year, period_seq, claimed, claimed_at, claim_token)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (payroll_entry_id, period_year, period_seq) DO NOTHING`

	_, err := r.pool.Exec(ctx, query,
		c.ID, c.PayrollEntryID, c.Period.Year, c.Period.Seq,
		c.Claimed, c.ClaimedAt, c.ClaimToken,
	)
	if err != nil {
		return fmt.Errorf("upsert period claim: %w", err)
	}
	return nil
}

// Get fetches one claim record, or nil if it was never materialized.
func (r *ClaimRepo) Get(ctx context.Context, entryID uuid.UUID, period domain.Period) (*domain.PeriodClaim, error) {
	query := `SELECT id, payroll_entry_id, period_year, period_seq, claimed, claimed_at, claim_token
		FROM period_claims WHERE payroll_entry_id = $1 AND period_year = $2 AND period_seq = $3`

	c := &domain.PeriodClaim{}
	err := r.pool.QueryRow(ctx, query, entryID, period.Year, period.Seq).Scan(
		&c.ID, &c.PayrollEntryID, &c.Period.Year, &c.Period.Seq,
		&c.Claimed, &c.ClaimedAt, &c.ClaimToken,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get period claim: %w", err)
	}
	return c, nil
}

// ListClaimed returns the periods an entry has already claimed, in
// chronological order.
func (r *ClaimRepo) ListClaimed(ctx context.Context, entryID uuid.UUID) ([]domain.Period, error) {
	query := `SELECT period_year, period_seq FROM period_claims
		WHERE payroll_entry_id = $1 AND claimed = TRUE
		ORDER BY period_year, period_seq`

	rows, err := r.pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, fmt.Errorf("list claimed periods: %w", err)
	}
	defer rows.Close()

	var periods []domain.Period
	for rows.Next() {
		var p domain.Period
		if err := rows.Scan(&p.Year, &p.Seq); err != nil {
			return nil, fmt.Errorf("scan claimed period: %w", err)
		}
		periods = append(periods, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate claimed periods: %w", err)
	}
	return periods, nil
}

// MarkClaimed flips claimed to true iff it is currently false.
// Returns (false, nil) when the record was already claimed.
func (r *ClaimRepo) MarkClaimed(ctx context.Context, entryID uuid.UUID, period domain.Period) (bool, error) {
	query := `UPDATE period_claims SET claimed = TRUE, claimed_at = $1
		WHERE payroll_entry_id = $2 AND period_year = $3 AND period_seq = $4 AND claimed = FALSE`

	tag, err := r.pool.Exec(ctx, query, time.Now().UTC(), entryID, period.Year, period.Seq)
	if err != nil {
		return false, fmt.Errorf("mark claimed: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
