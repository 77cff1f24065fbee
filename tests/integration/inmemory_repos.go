package integration

import (
	"context"
	"fmt"
	"math/big"
	"sort"
	"sync"
	"time"

	"github.com/EthGlobal-BA-Builders/gotagota/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// fakeTx satisfies pgx.Tx for the in-memory repos, which apply writes
// immediately rather than buffering them.
type fakeTx struct {
	pgx.Tx
}

func (fakeTx) Commit(ctx context.Context) error   { return nil }
func (fakeTx) Rollback(ctx context.Context) error { return nil }

type inMemoryTransactor struct{}

func (inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return fakeTx{}, nil
}

// --- In-Memory Payroll Repo ---

type inMemoryPayrollRepo struct {
	mu       sync.RWMutex
	payrolls map[uuid.UUID]domain.Payroll
	entries  map[uuid.UUID]domain.PayrollEntry
}

func newInMemoryPayrollRepo() *inMemoryPayrollRepo {
	return &inMemoryPayrollRepo{
		payrolls: make(map[uuid.UUID]domain.Payroll),
		entries:  make(map[uuid.UUID]domain.PayrollEntry),
	}
}

func (r *inMemoryPayrollRepo) Create(ctx context.Context, tx pgx.Tx, payroll *domain.Payroll) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.payrolls[payroll.ID]; ok {
		return fmt.Errorf("payroll already exists")
	}
	r.payrolls[payroll.ID] = *payroll
	return nil
}

func (r *inMemoryPayrollRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Payroll, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.payrolls[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *inMemoryPayrollRepo) ListByEmployer(ctx context.Context, employer domain.Address) ([]domain.Payroll, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Payroll
	for _, p := range r.payrolls {
		if p.EmployerAddress.Equal(employer) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *inMemoryPayrollRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.PayrollStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.payrolls[id]
	if !ok {
		return fmt.Errorf("payroll not found")
	}
	p.Status = status
	r.payrolls[id] = p
	return nil
}

func (r *inMemoryPayrollRepo) Activate(ctx context.Context, id uuid.UUID, onChainID int64, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.payrolls[id]
	if !ok {
		return fmt.Errorf("payroll not found")
	}
	if p.Status != domain.PayrollStatusDraft {
		return fmt.Errorf("payroll %s not in draft state", id)
	}
	p.OnChainID = onChainID
	p.Status = domain.PayrollStatusActive
	p.ActivatedAt = &at
	r.payrolls[id] = p
	return nil
}

func (r *inMemoryPayrollRepo) CreateEntry(ctx context.Context, tx pgx.Tx, entry *domain.PayrollEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[entry.ID] = *entry
	return nil
}

func (r *inMemoryPayrollRepo) GetEntry(ctx context.Context, id uuid.UUID) (*domain.PayrollEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (r *inMemoryPayrollRepo) ListEntries(ctx context.Context, payrollID uuid.UUID) ([]domain.PayrollEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.PayrollEntry
	for _, e := range r.entries {
		if e.PayrollID == payrollID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// backdateActivation rewinds a payroll's activation time so tests can make
// several periods eligible without waiting for the calendar.
func (r *inMemoryPayrollRepo) backdateActivation(id uuid.UUID, to time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.payrolls[id]
	if !ok {
		return
	}
	p.ActivatedAt = &to
	r.payrolls[id] = p
}

// --- In-Memory Claim Repo ---

type claimKey struct {
	entryID uuid.UUID
	period  domain.Period
}

type inMemoryClaimRepo struct {
	mu     sync.Mutex
	claims map[claimKey]domain.PeriodClaim
}

func newInMemoryClaimRepo() *inMemoryClaimRepo {
	return &inMemoryClaimRepo{claims: make(map[claimKey]domain.PeriodClaim)}
}

func (r *inMemoryClaimRepo) Upsert(ctx context.Context, claim *domain.PeriodClaim) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := claimKey{entryID: claim.PayrollEntryID, period: claim.Period}
	if _, ok := r.claims[key]; ok {
		return nil
	}
	r.claims[key] = *claim
	return nil
}

func (r *inMemoryClaimRepo) Get(ctx context.Context, entryID uuid.UUID, period domain.Period) (*domain.PeriodClaim, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.claims[claimKey{entryID: entryID, period: period}]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *inMemoryClaimRepo) ListClaimed(ctx context.Context, entryID uuid.UUID) ([]domain.Period, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Period
	for key, c := range r.claims {
		if key.entryID == entryID && c.Claimed {
			out = append(out, key.period)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out, nil
}

// MarkClaimed mirrors the SQL compare-and-set: the flip succeeds for exactly
// one caller per (entry, period).
func (r *inMemoryClaimRepo) MarkClaimed(ctx context.Context, entryID uuid.UUID, period domain.Period) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := claimKey{entryID: entryID, period: period}
	c, ok := r.claims[key]
	if !ok || c.Claimed {
		return false, nil
	}
	now := time.Now().UTC()
	c.Claimed = true
	c.ClaimedAt = &now
	r.claims[key] = c
	return true, nil
}

// --- Fake Custody Client ---

type custodyClaimKey struct {
	payrollID int64
	employee  domain.Address
	period    domain.Period
}

type fakeCustodyClient struct {
	mu               sync.Mutex
	nextID           int64
	claimed          map[custodyClaimKey]bool
	transfers        int
	claimCalls       int
	failNextTransfer bool
}

func newFakeCustodyClient() *fakeCustodyClient {
	return &fakeCustodyClient{nextID: 100, claimed: make(map[custodyClaimKey]bool)}
}

func (f *fakeCustodyClient) SetupPayroll(ctx context.Context, paymentDay, periodCount int, employees []domain.Address, amounts []*big.Int) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(employees) != len(amounts) {
		return 0, fmt.Errorf("length mismatch")
	}
	f.nextID++
	return f.nextID, nil
}

func (f *fakeCustodyClient) ClaimPayroll(ctx context.Context, payrollID int64, employee domain.Address, period domain.Period) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := custodyClaimKey{payrollID: payrollID, employee: domain.NormalizeAddress(string(employee)), period: period}
	if f.claimed[key] {
		return "", fmt.Errorf("period already claimed on-chain")
	}
	f.claimed[key] = true
	f.claimCalls++
	return fmt.Sprintf("0xclaim%d", f.claimCalls), nil
}

func (f *fakeCustodyClient) CheckBalance(ctx context.Context, payrollID int64, employee domain.Address, period domain.Period) (*big.Int, error) {
	return big.NewInt(0), nil
}

func (f *fakeCustodyClient) GetUnclaimedMonths(ctx context.Context, payrollID int64, employee domain.Address) ([]domain.Period, error) {
	return nil, nil
}

func (f *fakeCustodyClient) HasClaimedMonth(ctx context.Context, payrollID int64, employee domain.Address, period domain.Period) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := custodyClaimKey{payrollID: payrollID, employee: domain.NormalizeAddress(string(employee)), period: period}
	return f.claimed[key], nil
}

func (f *fakeCustodyClient) GaslessTransfer(ctx context.Context, auth domain.RelayAuthorization) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failNextTransfer {
		f.failNextTransfer = false
		return "", fmt.Errorf("gateway timeout")
	}
	f.transfers++
	return fmt.Sprintf("0xtransfer%d", f.transfers), nil
}

// --- Fake Name Lookup ---

type fakeNameLookup struct {
	names map[string]domain.Address
}

func (f *fakeNameLookup) Lookup(ctx context.Context, name string, network domain.Network) (domain.Address, error) {
	return f.names[name], nil
}
