package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

func normalizeCell(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Cadence controls period granularity for an entry's claims.
type Cadence string

const (
	CadenceMonthly Cadence = "MONTHLY"
	CadenceWeekly  Cadence = "WEEKLY"
)

// ParseCadence maps the import file's monthly_weekly column to a Cadence.
// true/monthly/month/1 (case-insensitive) mean monthly; anything else weekly.
func ParseCadence(s string) Cadence {
	switch normalizeCell(s) {
	case "true", "monthly", "month", "1":
		return CadenceMonthly
	}
	return CadenceWeekly
}

// PayrollStatus is the lifecycle state of a payroll.
type PayrollStatus string

const (
	PayrollStatusDraft     PayrollStatus = "DRAFT"
	PayrollStatusActive    PayrollStatus = "ACTIVE"
	PayrollStatusCompleted PayrollStatus = "COMPLETED"
)

// PaymentRecord is one validated row from an imported payroll file.
// ResolvedAddress stays empty until the recipient identifier resolves; a
// record still unresolved at finalize time is an import error, never passed
// through silently.
type PaymentRecord struct {
	Name                string  `json:"name"`
	Email               string  `json:"email"`
	RecipientIdentifier string  `json:"recipient_identifier"` // Raw cell: address or name
	ResolvedAddress     Address `json:"resolved_address,omitempty"`
	Amount              float64 `json:"amount"` // Per-period amount in whole tokens
	Cadence             Cadence `json:"cadence"`
}

// Resolved reports whether the record carries a usable on-chain address.
func (r *PaymentRecord) Resolved() bool {
	return r.ResolvedAddress != ""
}

// Payroll is an employer's recurring payment schedule.
type Payroll struct {
	ID              uuid.UUID     `json:"id"`
	OnChainID       int64         `json:"onchain_id"` // Custody layer's payroll id
	EmployerAddress Address       `json:"employer_address"`
	PaymentDay      int           `json:"payment_day"` // Day of month, 1-31
	PeriodCount     int           `json:"period_count"`
	Status          PayrollStatus `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
	ActivatedAt     *time.Time    `json:"activated_at,omitempty"`
}

// PayrollEntry binds one recipient to a payroll for its full lifetime.
type PayrollEntry struct {
	ID               uuid.UUID `json:"id"`
	PayrollID        uuid.UUID `json:"payroll_id"`
	RecipientAddress Address   `json:"recipient_address"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	AmountPerPeriod  float64   `json:"amount_per_period"`
	Cadence          Cadence   `json:"cadence"`
	CreatedAt        time.Time `json:"created_at"`
}
