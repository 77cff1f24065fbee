package ports

import (
	"context"
	"time"

	"github.com/EthGlobal-BA-Builders/gotagota/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

//go:generate mockgen -source=repositories.go -destination=mocks/repositories_mock.go -package=mocks

// PayrollRepository defines persistence operations for payrolls and their entries.
type PayrollRepository interface {
	Create(ctx context.Context, tx pgx.Tx, payroll *domain.Payroll) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Payroll, error)
	ListByEmployer(ctx context.Context, employer domain.Address) ([]domain.Payroll, error)
	// UpdateStatus sets the payroll's lifecycle status. Runs outside any
	// transaction; the active to completed sweep calls it after claims land.
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.PayrollStatus) error
	// Activate records the custody layer's payroll id and flips the payroll
	// from draft to active.
	Activate(ctx context.Context, id uuid.UUID, onChainID int64, at time.Time) error
	CreateEntry(ctx context.Context, tx pgx.Tx, entry *domain.PayrollEntry) error
	GetEntry(ctx context.Context, id uuid.UUID) (*domain.PayrollEntry, error)
	ListEntries(ctx context.Context, payrollID uuid.UUID) ([]domain.PayrollEntry, error)
}

// ClaimRepository defines persistence for per-period claim records.
// MarkClaimed must be a single compare-and-set so two racing callers for the
// same (entry, period) observe exactly one success.
type ClaimRepository interface {
	// Upsert creates the claim record if absent; an existing record is left
	// untouched (claimed state never reverts).
	Upsert(ctx context.Context, claim *domain.PeriodClaim) error
	Get(ctx context.Context, entryID uuid.UUID, period domain.Period) (*domain.PeriodClaim, error)
	ListClaimed(ctx context.Context, entryID uuid.UUID) ([]domain.Period, error)
	// MarkClaimed flips claimed to true iff it is currently false.
	// Returns (false, nil) when the record was already claimed.
	MarkClaimed(ctx context.Context, entryID uuid.UUID, period domain.Period) (bool, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
