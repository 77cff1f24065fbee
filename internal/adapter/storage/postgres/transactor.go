package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Transactor hands out transactions for multi-row payroll writes.
type Transactor struct {
	pool Pool
}

// NewTransactor creates a Transactor backed by the connection pool.
func NewTransactor(pool Pool) *Transactor {
	return &Transactor{pool: pool}
}

// Begin opens a read-committed transaction. Payroll creation persists the
// payroll row and all of its entries in one unit; catch-up claim rows ride
// the same path.
func (t *Transactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return t.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
}
