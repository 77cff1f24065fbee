package chain

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/EthGlobal-BA-Builders/gotagota/internal/core/domain"
	"github.com/EthGlobal-BA-Builders/gotagota/pkg/apperror"

	"github.com/rs/zerolog"
)

const defaultRequestTimeout = 10 * time.Second

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// CustodyClient implements ports.CustodyClient against the custody gateway's
// HTTP API. The gateway holds the signing keys and submits the actual
// on-chain transactions; this client only shapes requests and maps failures.
type CustodyClient struct {
	baseURL    string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewCustodyClient creates a custody gateway client.
func NewCustodyClient(baseURL string, httpClient HTTPClient, log zerolog.Logger) *CustodyClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultRequestTimeout}
	}
	return &CustodyClient{
		baseURL:    baseURL,
		httpClient: httpClient,
		log:        log,
	}
}

type setupPayrollRequest struct {
	PaymentDay  int      `json:"payment_day"`
	PeriodCount int      `json:"period_count"`
	Employees   []string `json:"employees"`
	Amounts     []string `json:"amounts"`
}

type setupPayrollResponse struct {
	PayrollID int64 `json:"payroll_id"`
}

type claimRequest struct {
	Employee   string `json:"employee"`
	PeriodYear int    `json:"period_year"`
	PeriodSeq  int    `json:"period_seq"`
}

type txRefResponse struct {
	TxRef string `json:"tx_ref"`
}

type balanceResponse struct {
	Balance string `json:"balance"`
}

type periodsResponse struct {
	Periods []struct {
		Year int `json:"year"`
		Seq  int `json:"seq"`
	} `json:"periods"`
}

type claimedResponse struct {
	Claimed bool `json:"claimed"`
}

type gaslessTransferRequest struct {
	User     string `json:"user"`
	To       string `json:"to"`
	Amount   string `json:"amount"`
	Nonce    uint64 `json:"nonce"`
	Deadline int64  `json:"deadline"`
	V        uint8  `json:"v"`
	R        string `json:"r"`
	S        string `json:"s"`
}

type gatewayError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SetupPayroll registers a payroll on-chain and returns its numeric id.
func (c *CustodyClient) SetupPayroll(ctx context.Context, paymentDay, periodCount int, employees []domain.Address, amounts []*big.Int) (int64, error) {
	if len(employees) != len(amounts) {
		return 0, apperror.ErrEntryCountMismatch()
	}

	req := setupPayrollRequest{
		PaymentDay:  paymentDay,
		PeriodCount: periodCount,
		Employees:   make([]string, len(employees)),
		Amounts:     make([]string, len(amounts)),
	}
	for i := range employees {
		req.Employees[i] = string(employees[i])
		req.Amounts[i] = amounts[i].String()
	}

	var resp setupPayrollResponse
	if err := c.post(ctx, "/payrolls", req, &resp); err != nil {
		return 0, err
	}
	return resp.PayrollID, nil
}

// ClaimPayroll releases one period's allotment to the employee.
func (c *CustodyClient) ClaimPayroll(ctx context.Context, payrollID int64, employee domain.Address, period domain.Period) (string, error) {
	req := claimRequest{
		Employee:   string(employee),
		PeriodYear: period.Year,
		PeriodSeq:  period.Seq,
	}

	var resp txRefResponse
	path := fmt.Sprintf("/payrolls/%d/claims", payrollID)
	if err := c.post(ctx, path, req, &resp); err != nil {
		return "", err
	}
	return resp.TxRef, nil
}

// CheckBalance reports the claimable balance for one (employee, period).
func (c *CustodyClient) CheckBalance(ctx context.Context, payrollID int64, employee domain.Address, period domain.Period) (*big.Int, error) {
	q := url.Values{}
	q.Set("employee", string(employee))
	q.Set("year", strconv.Itoa(period.Year))
	q.Set("seq", strconv.Itoa(period.Seq))

	var resp balanceResponse
	path := fmt.Sprintf("/payrolls/%d/balance?%s", payrollID, q.Encode())
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}

	balance, ok := new(big.Int).SetString(resp.Balance, 10)
	if !ok {
		return nil, fmt.Errorf("custody gateway returned malformed balance %q", resp.Balance)
	}
	return balance, nil
}

// GetUnclaimedMonths lists the periods the chain still considers unclaimed.
func (c *CustodyClient) GetUnclaimedMonths(ctx context.Context, payrollID int64, employee domain.Address) ([]domain.Period, error) {
	q := url.Values{}
	q.Set("employee", string(employee))

	var resp periodsResponse
	path := fmt.Sprintf("/payrolls/%d/unclaimed?%s", payrollID, q.Encode())
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}

	periods := make([]domain.Period, len(resp.Periods))
	for i, p := range resp.Periods {
		periods[i] = domain.Period{Year: p.Year, Seq: p.Seq}
	}
	return periods, nil
}

// HasClaimedMonth reports whether the chain already recorded a claim for the
// given (employee, period).
func (c *CustodyClient) HasClaimedMonth(ctx context.Context, payrollID int64, employee domain.Address, period domain.Period) (bool, error) {
	q := url.Values{}
	q.Set("employee", string(employee))
	q.Set("year", strconv.Itoa(period.Year))
	q.Set("seq", strconv.Itoa(period.Seq))

	var resp claimedResponse
	path := fmt.Sprintf("/payrolls/%d/claimed?%s", payrollID, q.Encode())
	if err := c.get(ctx, path, &resp); err != nil {
		return false, err
	}
	return resp.Claimed, nil
}

// GaslessTransfer submits a relayed transfer with the user's signature.
func (c *CustodyClient) GaslessTransfer(ctx context.Context, auth domain.RelayAuthorization) (string, error) {
	req := gaslessTransferRequest{
		User:     string(auth.UserAddress),
		To:       string(auth.ToAddress),
		Amount:   auth.Amount.String(),
		Nonce:    auth.Nonce,
		Deadline: auth.Deadline,
		V:        auth.V,
		R:        hex.EncodeToString(auth.R[:]),
		S:        hex.EncodeToString(auth.S[:]),
	}

	var resp txRefResponse
	if err := c.post(ctx, "/transfers/gasless", req, &resp); err != nil {
		return "", err
	}
	return resp.TxRef, nil
}

func (c *CustodyClient) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal custody request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create custody request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *CustodyClient) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create custody request: %w", err)
	}
	return c.do(req, out)
}

func (c *CustodyClient) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("custody gateway unreachable: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read custody response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.mapError(req, resp.StatusCode, raw)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode custody response: %w", err)
	}
	return nil
}

// mapError translates a gateway rejection into a typed error where the code
// is recognized, and a plain error otherwise so callers wrap it as a
// network-level failure.
func (c *CustodyClient) mapError(req *http.Request, status int, raw []byte) error {
	var gwErr gatewayError
	if err := json.Unmarshal(raw, &gwErr); err == nil && gwErr.Code != "" {
		c.log.Warn().
			Str("path", req.URL.Path).
			Int("status", status).
			Str("code", gwErr.Code).
			Msg("custody gateway rejected request")

		switch gwErr.Code {
		case "INSUFFICIENT_FUNDS":
			return apperror.ErrInsufficientFunds()
		case "NONCE_USED":
			return apperror.ErrNonceReused()
		case "AUTHORIZATION_EXPIRED":
			return apperror.ErrExpiredAuthorization()
		case "INVALID_SIGNATURE":
			return apperror.ErrInvalidSignature()
		}
		return fmt.Errorf("custody gateway error %s: %s", gwErr.Code, gwErr.Message)
	}

	return fmt.Errorf("custody gateway returned status %d", status)
}
