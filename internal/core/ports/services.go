package ports

import (
	"context"
	"math/big"
	"time"

	"github.com/EthGlobal-BA-Builders/gotagota/internal/core/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=services.go -destination=mocks/services_mock.go -package=mocks

// NameLookup resolves a naming-system name (e.g. "treasury.celo") to an
// on-chain address. Implementations talk to an external resolver; a nil
// address with nil error means the name is not registered.
type NameLookup interface {
	Lookup(ctx context.Context, name string, network domain.Network) (domain.Address, error)
}

// Resolution is the outcome of resolving one identifier.
type Resolution struct {
	Identifier string
	Address    domain.Address
	Resolved   bool
}

// RecipientResolver maps human-entered identifiers to canonical addresses.
type RecipientResolver interface {
	// Resolve returns the canonical address for identifier, or Resolved=false
	// when the identifier is neither an address nor a registered name.
	// Resolution failures never surface as errors; a batch with one bad name
	// must not lose the other entries.
	Resolve(ctx context.Context, identifier string, network domain.Network) Resolution
	// ResolveMany resolves all identifiers concurrently, preserving input
	// order in the returned slice.
	ResolveMany(ctx context.Context, identifiers []string, network domain.Network) []Resolution
}

// FileFormat is a supported payroll import format.
type FileFormat string

const (
	FormatCSV         FileFormat = "csv"
	FormatSpreadsheet FileFormat = "spreadsheet"
)

// IngestResult is the outcome of a payroll file ingestion.
type IngestResult struct {
	Records     []domain.PaymentRecord
	SkippedRows int // Rows dropped by the skip-invalid-rows policy
	Unresolved  int // Records whose identifier did not resolve
}

// FileIngestor parses a payroll file into validated payment records.
type FileIngestor interface {
	// Ingest fails only on file-level problems: unreadable bytes, missing
	// header columns, or zero surviving rows. Invalid data rows are skipped.
	Ingest(ctx context.Context, fileBytes []byte, format FileFormat, network domain.Network) (*IngestResult, error)
	// FormatForFilename maps a file extension to a FileFormat, rejecting
	// anything that is not .csv, .xls or .xlsx.
	FormatForFilename(filename string) (FileFormat, error)
}

// ClaimTokenCodec mints and validates the opaque tokens carried in shareable
// claim links. Decode is a pure function of the token value: it either
// recovers exactly the minted binding or fails.
type ClaimTokenCodec interface {
	Mint(binding domain.ClaimBinding) (string, error)
	Decode(token string) (*domain.ClaimBinding, error)
}

// ClaimLedger tracks claim state per (payroll entry, period).
type ClaimLedger interface {
	// UnclaimedPeriods lists cadence-aligned periods between payroll
	// activation and now for which no successful claim exists, in
	// chronological order.
	UnclaimedPeriods(ctx context.Context, entryID uuid.UUID) ([]domain.Period, error)
	// MarkClaimed transitions (entry, period) to claimed. A second call for
	// the same pair fails with AlreadyClaimed; a period outside the entry's
	// valid range fails with NotEligible.
	MarkClaimed(ctx context.Context, entryID uuid.UUID, period domain.Period) error
}

// ClaimService drives the full claim-link flow: decode token, check
// eligibility, mark claimed, release funds via the custody layer.
type ClaimService interface {
	Preview(ctx context.Context, token string) (*ClaimPreview, error)
	Execute(ctx context.Context, token string) (*ClaimReceipt, error)
}

// ClaimPreview is what the claim surface shows before the recipient commits.
type ClaimPreview struct {
	PayrollID uuid.UUID
	EntryID   uuid.UUID
	Recipient domain.Address
	Period    domain.Period
	Cadence   domain.Cadence
	Amount    float64
	Claimable bool
}

// ClaimReceipt is the result of a successful claim.
type ClaimReceipt struct {
	EntryID   uuid.UUID
	Period    domain.Period
	TxRef     string
	ClaimedAt time.Time
}

// RelayService verifies a signed authorization and submits the transfer on
// the user's behalf.
type RelayService interface {
	// RelayTransfer returns a transaction reference on successful submission
	// or a typed failure (Expired, InvalidSignature, NonceReused,
	// InsufficientFunds, Network) before submission.
	RelayTransfer(ctx context.Context, auth domain.RelayAuthorization) (string, error)
}

// PayrollService orchestrates payroll setup and queries.
type PayrollService interface {
	CreatePayroll(ctx context.Context, req CreatePayrollRequest) (*CreatePayrollResult, error)
	GetPayroll(ctx context.Context, id uuid.UUID) (*domain.Payroll, []domain.PayrollEntry, error)
	ListPayrolls(ctx context.Context, employer domain.Address) ([]domain.Payroll, error)
}

// CreatePayrollRequest holds validated input for payroll creation.
type CreatePayrollRequest struct {
	EmployerAddress domain.Address
	PaymentDay      int
	PeriodCount     int
	Records         []domain.PaymentRecord
}

// CreatePayrollResult is the creation outcome, including per-entry share
// links for the first claimable period.
type CreatePayrollResult struct {
	Payroll    *domain.Payroll
	Entries    []domain.PayrollEntry
	ClaimLinks map[uuid.UUID]string // entry id -> first-period claim token
}

// SignerRecovery recovers the signing address from an authorization digest
// and its signature components.
type SignerRecovery interface {
	Recover(auth domain.RelayAuthorization) (domain.Address, error)
}

// NonceStore tracks used relay nonces for replay prevention. The custody
// layer re-checks nonces on-chain; this is the relay's cheap local gate.
type NonceStore interface {
	// CheckAndSet atomically records the nonce if unseen.
	// Returns true if the nonce is new (valid), false if already used.
	CheckAndSet(ctx context.Context, user string, nonce uint64, ttl time.Duration) (bool, error)
	// Release forgets a recorded nonce. Called when a submission never
	// reached the chain, so the caller may retry the same authorization.
	Release(ctx context.Context, user string, nonce uint64) error
}

// CustodyClient is the gateway to the on-chain custody layer.
type CustodyClient interface {
	// SetupPayroll registers a payroll on-chain. employees and amounts must
	// have matching lengths; amounts are smallest-unit integers.
	SetupPayroll(ctx context.Context, paymentDay, periodCount int, employees []domain.Address, amounts []*big.Int) (int64, error)
	// ClaimPayroll releases one period's allotment. The custody layer is the
	// final authority and may itself reject.
	ClaimPayroll(ctx context.Context, payrollID int64, employee domain.Address, period domain.Period) (string, error)
	CheckBalance(ctx context.Context, payrollID int64, employee domain.Address, period domain.Period) (*big.Int, error)
	GetUnclaimedMonths(ctx context.Context, payrollID int64, employee domain.Address) ([]domain.Period, error)
	HasClaimedMonth(ctx context.Context, payrollID int64, employee domain.Address, period domain.Period) (bool, error)
	// GaslessTransfer submits a relayed transfer against the vault.
	GaslessTransfer(ctx context.Context, auth domain.RelayAuthorization) (string, error)
}
