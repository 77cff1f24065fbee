package dto

// PaymentRecordDTO is one validated payroll row, as returned by import and
// accepted by payroll creation.
type PaymentRecordDTO struct {
	Name                string  `json:"name" binding:"required,max=200"`
	Email               string  `json:"email" binding:"required,email"`
	RecipientIdentifier string  `json:"recipient_identifier" binding:"required,recipient"`
	ResolvedAddress     string  `json:"resolved_address,omitempty" binding:"omitempty,eth_address"`
	Amount              float64 `json:"amount" binding:"required,gt=0"`
	Monthly             bool    `json:"monthly"`
}

// ImportResponse is the outcome of a payroll file import.
type ImportResponse struct {
	Records     []PaymentRecordDTO `json:"records"`
	SkippedRows int                `json:"skipped_rows"`
	Unresolved  int                `json:"unresolved"`
}

// CreatePayrollRequest is the request body for payroll creation.
type CreatePayrollRequest struct {
	EmployerAddress string             `json:"employer_address" binding:"required,eth_address"`
	PaymentDay      int                `json:"payment_day" binding:"required,min=1,max=31"`
	PeriodCount     int                `json:"period_count" binding:"required,min=1"`
	Records         []PaymentRecordDTO `json:"records" binding:"required,min=1,dive"`
}

// PayrollResponse is the response body for payroll queries.
type PayrollResponse struct {
	ID              string  `json:"id"`
	OnChainID       int64   `json:"onchain_id"`
	EmployerAddress string  `json:"employer_address"`
	PaymentDay      int     `json:"payment_day"`
	PeriodCount     int     `json:"period_count"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"created_at"`
	ActivatedAt     *string `json:"activated_at,omitempty"`
}

// PayrollEntryResponse is one recipient's entry in a payroll.
type PayrollEntryResponse struct {
	ID               string  `json:"id"`
	RecipientAddress string  `json:"recipient_address"`
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	AmountPerPeriod  float64 `json:"amount_per_period"`
	Cadence          string  `json:"cadence"`
	ClaimLink        string  `json:"claim_link,omitempty"`
}

// CreatePayrollResponse is the creation outcome, including per-entry claim
// links for the first claimable period.
type CreatePayrollResponse struct {
	Payroll PayrollResponse        `json:"payroll"`
	Entries []PayrollEntryResponse `json:"entries"`
}

// PayrollDetailResponse is a payroll with its entries.
type PayrollDetailResponse struct {
	Payroll PayrollResponse        `json:"payroll"`
	Entries []PayrollEntryResponse `json:"entries"`
}

// UnclaimedPeriod is one claimable-but-unclaimed period with its share link.
type UnclaimedPeriod struct {
	Period    string `json:"period"`
	ClaimLink string `json:"claim_link"`
}

// UnclaimedPeriodsResponse lists an entry's claimable-but-unclaimed periods.
// Each period carries a freshly minted claim link, so recipients can obtain
// links for periods after the first without employer involvement.
type UnclaimedPeriodsResponse struct {
	EntryID string            `json:"entry_id"`
	Cadence string            `json:"cadence"`
	Periods []UnclaimedPeriod `json:"periods"`
}

// ClaimPreviewResponse is what a claim link shows before the recipient commits.
type ClaimPreviewResponse struct {
	PayrollID string  `json:"payroll_id"`
	EntryID   string  `json:"entry_id"`
	Recipient string  `json:"recipient"`
	Period    string  `json:"period"`
	Cadence   string  `json:"cadence"`
	Amount    float64 `json:"amount"`
	Claimable bool    `json:"claimable"`
}

// ClaimReceiptResponse is the result of a successful claim.
type ClaimReceiptResponse struct {
	EntryID   string `json:"entry_id"`
	Period    string `json:"period"`
	TxRef     string `json:"tx_ref"`
	ClaimedAt string `json:"claimed_at"`
}

// RelayTransferRequest is the request body for a relayed (gasless) transfer.
// Amount is a decimal token amount string; r and s are 32-byte hex values.
type RelayTransferRequest struct {
	UserAddress string `json:"user_address" binding:"required,eth_address"`
	ToAddress   string `json:"to_address" binding:"required,eth_address"`
	Amount      string `json:"amount" binding:"required"`
	Nonce       uint64 `json:"nonce"`
	Deadline    int64  `json:"deadline" binding:"required"`
	V           uint8  `json:"v"`
	R           string `json:"r" binding:"required,hex32"`
	S           string `json:"s" binding:"required,hex32"`
}

// RelayTransferResponse is the response body for a relayed transfer.
type RelayTransferResponse struct {
	TxRef string `json:"tx_ref"`
}
