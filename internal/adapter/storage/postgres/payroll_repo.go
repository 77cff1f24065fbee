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

// PayrollRepo implements ports.PayrollRepository.
type PayrollRepo struct {
	pool Pool
}

// NewPayrollRepo creates a new PayrollRepo.
func NewPayrollRepo(pool Pool) *PayrollRepo {
	return &PayrollRepo{pool: pool}
}

// Create inserts a new payroll within a database transaction.
func (r *PayrollRepo) Create(ctx context.Context, tx pgx.Tx, p *domain.Payroll) error {
	query := `INSERT INTO payrolls (id, onchain_id, employer_address, payment_day, period_count, status, created_at, activated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := tx.Exec(ctx, query,
		p.ID, p.OnChainID, p.EmployerAddress, p.PaymentDay,
		p.PeriodCount, p.Status, p.CreatedAt, p.ActivatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payroll: %w", err)
	}
	return nil
}

// GetByID fetches a payroll by UUID.
func (r *PayrollRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Payroll, error) {
	query := `SELECT id, onchain_id, employer_address, payment_day, period_count, status, created_at, activated_at
		FROM payrolls WHERE id = $1`

	return scanPayroll(r.pool.QueryRow(ctx, query, id))
}

// ListByEmployer fetches an employer's payrolls, newest first.
func (r *PayrollRepo) ListByEmployer(ctx context.Context, employer domain.Address) ([]domain.Payroll, error) {
	query := `SELECT id, onchain_id, employer_address, payment_day, period_count, status, created_at, activated_at
		FROM payrolls WHERE employer_address = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, employer)
	if err != nil {
		return nil, fmt.Errorf("list payrolls: %w", err)
	}
	defer rows.Close()

	var payrolls []domain.Payroll
	for rows.Next() {
		var p domain.Payroll
		if err := rows.Scan(&p.ID, &p.OnChainID, &p.EmployerAddress, &p.PaymentDay,
			&p.PeriodCount, &p.Status, &p.CreatedAt, &p.ActivatedAt); err != nil {
			return nil, fmt.Errorf("scan payroll row: %w", err)
		}
		payrolls = append(payrolls, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payroll rows: %w", err)
	}
	return payrolls, nil
}

// UpdateStatus sets a payroll's lifecycle status.
func (r *PayrollRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.PayrollStatus) error {
	query := `UPDATE payrolls SET status = $1 WHERE id = $2`

	tag, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("update payroll status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("payroll not found: %s", id)
	}
	return nil
}

// Activate records the on-chain payroll id and flips the payroll to active.
func (r *PayrollRepo) Activate(ctx context.Context, id uuid.UUID, onChainID int64, at time.Time) error {
	query := `UPDATE payrolls SET onchain_id = $1, status = $2, activated_at = $3 WHERE id = $4 AND status = $5`

	tag, err := r.pool.Exec(ctx, query, onChainID, domain.PayrollStatusActive, at, id, domain.PayrollStatusDraft)
	if err != nil {
		return fmt.Errorf("activate payroll: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("payroll not in draft state: %s", id)
	}
	return nil
}

// CreateEntry inserts a payroll entry within a database transaction.
func (r *PayrollRepo) CreateEntry(ctx context.Context, tx pgx.Tx, e *domain.PayrollEntry) error {
	query := `INSERT INTO payroll_entries (id, payroll_id, recipient_address, name, email, amount_per_period, cadence, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := tx.Exec(ctx, query,
		e.ID, e.PayrollID, e.RecipientAddress, e.Name,
		e.Email, e.AmountPerPeriod, e.Cadence, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payroll entry: %w", err)
	}
	return nil
}

// GetEntry fetches a payroll entry by UUID.
func (r *PayrollRepo) GetEntry(ctx context.Context, id uuid.UUID) (*domain.PayrollEntry, error) {
	query := `SELECT id, payroll_id, recipient_address, name, email, amount_per_period, cadence, created_at
		FROM payroll_entries WHERE id = $1`

	e := &domain.PayrollEntry{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.PayrollID, &e.RecipientAddress, &e.Name,
		&e.Email, &e.AmountPerPeriod, &e.Cadence, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payroll entry: %w", err)
	}
	return e, nil
}

// ListEntries fetches all entries of a payroll in insertion order.
func (r *PayrollRepo) ListEntries(ctx context.Context, payrollID uuid.UUID) ([]domain.PayrollEntry, error) {
	query := `SELECT id, payroll_id, recipient_address, name, email, amount_per_period, cadence, created_at
		FROM payroll_entries WHERE payroll_id = $1 ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query, payrollID)
	if err != nil {
		return nil, fmt.Errorf("list payroll entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.PayrollEntry
	for rows.Next() {
		var e domain.PayrollEntry
		if err := rows.Scan(&e.ID, &e.PayrollID, &e.RecipientAddress, &e.Name,
			&e.Email, &e.AmountPerPeriod, &e.Cadence, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan entry row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entry rows: %w", err)
	}
	return entries, nil
}

func scanPayroll(row pgx.Row) (*domain.Payroll, error) {
	p := &domain.Payroll{}
	err := row.Scan(&p.ID, &p.OnChainID, &p.EmployerAddress, &p.PaymentDay,
		&p.PeriodCount, &p.Status, &p.CreatedAt, &p.ActivatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan payroll: %w", err)
	}
	return p, nil
}
