package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/EthGlobal-BA-Builders/gotagota/internal/adapter/http/dto"
	"github.com/EthGlobal-BA-Builders/gotagota/internal/core/domain"
	"github.com/EthGlobal-BA-Builders/gotagota/internal/core/ports"
	"github.com/EthGlobal-BA-Builders/gotagota/internal/core/ports/mocks"
	"github.com/EthGlobal-BA-Builders/gotagota/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const (
	testEmployer  = "0x1111111111111111111111111111111111111111"
	testRecipient = "0x2222222222222222222222222222222222222222"
)

func jsonRequest(t *testing.T, method string, body interface{}) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, "/", bytes.NewReader(raw))
	c.Request.Header.Set("Content-Type", "application/json")
	return w, c
}

// --- Import Handler Tests ---

func multipartUpload(t *testing.T, filename string, content []byte, network string) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	if network != "" {
		require.NoError(t, mw.WriteField("network", network))
	}
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", &buf)
	c.Request.Header.Set("Content-Type", mw.FormDataContentType())
	return w, c
}

func TestImport_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIngest := mocks.NewMockFileIngestor(ctrl)
	h := NewImportHandler(mockIngest)

	fileBytes := []byte("name,email,address,amount,monthly_weekly\nAlice,a@x.co,0x22,1500,monthly\n")
	mockIngest.EXPECT().FormatForFilename("payroll.csv").Return(ports.FormatCSV, nil)
	mockIngest.EXPECT().Ingest(gomock.Any(), fileBytes, ports.FormatCSV, domain.NetworkCelo).Return(&ports.IngestResult{
		Records: []domain.PaymentRecord{
			{
				Name:                "Alice",
				Email:               "a@x.co",
				RecipientIdentifier: testRecipient,
				ResolvedAddress:     domain.Address(testRecipient),
				Amount:              1500,
				Cadence:             domain.CadenceMonthly,
			},
		},
		SkippedRows: 2,
	}, nil)

	w, c := multipartUpload(t, "payroll.csv", fileBytes, "")
	h.Import(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	records := data["records"].([]interface{})
	require.Len(t, records, 1)
	rec := records[0].(map[string]interface{})
	assert.Equal(t, "Alice", rec["name"])
	assert.Equal(t, true, rec["monthly"])
	assert.Equal(t, float64(2), data["skipped_rows"])
}

func TestImport_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewImportHandler(mocks.NewMockFileIngestor(ctrl))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

	h.Import(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestImport_UnsupportedFormat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIngest := mocks.NewMockFileIngestor(ctrl)
	h := NewImportHandler(mockIngest)

	mockIngest.EXPECT().FormatForFilename("payroll.pdf").Return(ports.FileFormat(""), apperror.ErrUnsupportedFormat(".pdf"))

	w, c := multipartUpload(t, "payroll.pdf", []byte("%PDF"), "")
	h.Import(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "IMP_001", resp["error_code"])
}

func TestImport_UnknownNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewImportHandler(mocks.NewMockFileIngestor(ctrl))

	w, c := multipartUpload(t, "payroll.csv", []byte("name\n"), "dogechain")
	h.Import(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Payroll Handler Tests ---

func validCreatePayrollRequest() dto.CreatePayrollRequest {
	return dto.CreatePayrollRequest{
		EmployerAddress: testEmployer,
		PaymentDay:      15,
		PeriodCount:     12,
		Records: []dto.PaymentRecordDTO{
			{
				Name:                "Alice",
				Email:               "a@x.co",
				RecipientIdentifier: testRecipient,
				ResolvedAddress:     testRecipient,
				Amount:              1500,
				Monthly:             true,
			},
		},
	}
}

func TestCreatePayroll_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPayroll := mocks.NewMockPayrollService(ctrl)
	h := NewPayrollHandler(mockPayroll, mocks.NewMockClaimLedger(ctrl), mocks.NewMockClaimTokenCodec(ctrl))

	payrollID := uuid.New()
	entryID := uuid.New()
	now := time.Now()

	mockPayroll.EXPECT().CreatePayroll(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.CreatePayrollRequest) (*ports.CreatePayrollResult, error) {
			assert.Equal(t, domain.Address(testEmployer), req.EmployerAddress)
			assert.Equal(t, 15, req.PaymentDay)
			require.Len(t, req.Records, 1)
			assert.Equal(t, domain.CadenceMonthly, req.Records[0].Cadence)
			return &ports.CreatePayrollResult{
				Payroll: &domain.Payroll{
					ID:              payrollID,
					OnChainID:       42,
					EmployerAddress: domain.Address(testEmployer),
					PaymentDay:      15,
					PeriodCount:     12,
					Status:          domain.PayrollStatusActive,
					CreatedAt:       now,
					ActivatedAt:     &now,
				},
				Entries: []domain.PayrollEntry{
					{
						ID:               entryID,
						PayrollID:        payrollID,
						RecipientAddress: domain.Address(testRecipient),
						Name:             "Alice",
						Email:            "a@x.co",
						AmountPerPeriod:  1500,
						Cadence:          domain.CadenceMonthly,
					},
				},
				ClaimLinks: map[uuid.UUID]string{entryID: "tok123"},
			}, nil
		})

	w, c := jsonRequest(t, http.MethodPost, validCreatePayrollRequest())
	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	payroll := data["payroll"].(map[string]interface{})
	assert.Equal(t, payrollID.String(), payroll["id"])
	assert.Equal(t, float64(42), payroll["onchain_id"])
	entries := data["entries"].([]interface{})
	require.Len(t, entries, 1)
	entry := entries[0].(map[string]interface{})
	assert.Equal(t, "/api/v1/claims/tok123", entry["claim_link"])
}

func TestCreatePayroll_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewPayrollHandler(mocks.NewMockPayrollService(ctrl), mocks.NewMockClaimLedger(ctrl), mocks.NewMockClaimTokenCodec(ctrl))

	req := validCreatePayrollRequest()
	req.EmployerAddress = "not-an-address"

	w, c := jsonRequest(t, http.MethodPost, req)
	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreatePayroll_PaymentDayOutOfRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewPayrollHandler(mocks.NewMockPayrollService(ctrl), mocks.NewMockClaimLedger(ctrl), mocks.NewMockClaimTokenCodec(ctrl))

	req := validCreatePayrollRequest()
	req.PaymentDay = 32

	w, c := jsonRequest(t, http.MethodPost, req)
	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreatePayroll_ServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPayroll := mocks.NewMockPayrollService(ctrl)
	h := NewPayrollHandler(mockPayroll, mocks.NewMockClaimLedger(ctrl), mocks.NewMockClaimTokenCodec(ctrl))

	mockPayroll.EXPECT().CreatePayroll(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrNoValidRows())

	w, c := jsonRequest(t, http.MethodPost, validCreatePayrollRequest())
	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "IMP_004", resp["error_code"])
}

func TestGetPayroll_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPayroll := mocks.NewMockPayrollService(ctrl)
	h := NewPayrollHandler(mockPayroll, mocks.NewMockClaimLedger(ctrl), mocks.NewMockClaimTokenCodec(ctrl))

	payrollID := uuid.New()
	mockPayroll.EXPECT().GetPayroll(gomock.Any(), payrollID).Return(&domain.Payroll{
		ID:              payrollID,
		EmployerAddress: domain.Address(testEmployer),
		PaymentDay:      1,
		PeriodCount:     6,
		Status:          domain.PayrollStatusDraft,
		CreatedAt:       time.Now(),
	}, []domain.PayrollEntry{}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "id", Value: payrollID.String()}}

	h.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	payroll := data["payroll"].(map[string]interface{})
	assert.Equal(t, "DRAFT", payroll["status"])
}

func TestGetPayroll_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewPayrollHandler(mocks.NewMockPayrollService(ctrl), mocks.NewMockClaimLedger(ctrl), mocks.NewMockClaimTokenCodec(ctrl))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	h.Get(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPayroll_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPayroll := mocks.NewMockPayrollService(ctrl)
	h := NewPayrollHandler(mockPayroll, mocks.NewMockClaimLedger(ctrl), mocks.NewMockClaimTokenCodec(ctrl))

	payrollID := uuid.New()
	mockPayroll.EXPECT().GetPayroll(gomock.Any(), payrollID).Return(nil, nil, apperror.ErrNotFound("payroll"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "id", Value: payrollID.String()}}

	h.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListPayrolls_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPayroll := mocks.NewMockPayrollService(ctrl)
	h := NewPayrollHandler(mockPayroll, mocks.NewMockClaimLedger(ctrl), mocks.NewMockClaimTokenCodec(ctrl))

	mockPayroll.EXPECT().ListPayrolls(gomock.Any(), domain.Address(testEmployer)).Return([]domain.Payroll{
		{ID: uuid.New(), EmployerAddress: domain.Address(testEmployer), Status: domain.PayrollStatusActive, CreatedAt: time.Now()},
		{ID: uuid.New(), EmployerAddress: domain.Address(testEmployer), Status: domain.PayrollStatusDraft, CreatedAt: time.Now()},
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?employer="+testEmployer, nil)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].([]interface{})
	assert.Len(t, data, 2)
}

func TestListPayrolls_MissingEmployer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewPayrollHandler(mocks.NewMockPayrollService(ctrl), mocks.NewMockClaimLedger(ctrl), mocks.NewMockClaimTokenCodec(ctrl))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	h.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUnclaimedPeriods_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPayroll := mocks.NewMockPayrollService(ctrl)
	mockLedger := mocks.NewMockClaimLedger(ctrl)
	mockCodec := mocks.NewMockClaimTokenCodec(ctrl)
	h := NewPayrollHandler(mockPayroll, mockLedger, mockCodec)

	payrollID := uuid.New()
	entryID := uuid.New()
	mockPayroll.EXPECT().GetPayroll(gomock.Any(), payrollID).Return(&domain.Payroll{
		ID:              payrollID,
		EmployerAddress: domain.Address(testEmployer),
		Status:          domain.PayrollStatusActive,
		CreatedAt:       time.Now(),
	}, []domain.PayrollEntry{
		{ID: entryID, RecipientAddress: domain.Address(testRecipient), Cadence: domain.CadenceMonthly},
	}, nil)
	mockLedger.EXPECT().UnclaimedPeriods(gomock.Any(), entryID).Return([]domain.Period{
		{Year: 2025, Seq: 3},
		{Year: 2025, Seq: 4},
	}, nil)
	mockCodec.EXPECT().Mint(domain.ClaimBinding{
		PayrollID: payrollID, EntryID: entryID, Period: domain.Period{Year: 2025, Seq: 3}, Cadence: domain.CadenceMonthly,
	}).Return("tok-march", nil)
	mockCodec.EXPECT().Mint(domain.ClaimBinding{
		PayrollID: payrollID, EntryID: entryID, Period: domain.Period{Year: 2025, Seq: 4}, Cadence: domain.CadenceMonthly,
	}).Return("tok-april", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Params = gin.Params{
		{Key: "id", Value: payrollID.String()},
		{Key: "entry_id", Value: entryID.String()},
	}

	h.Unclaimed(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, entryID.String(), data["entry_id"])
	assert.Equal(t, "MONTHLY", data["cadence"])
	periods := data["periods"].([]interface{})
	require.Len(t, periods, 2)
	first := periods[0].(map[string]interface{})
	assert.Equal(t, "2025-03", first["period"])
	assert.Equal(t, "/api/v1/claims/tok-march", first["claim_link"])
	second := periods[1].(map[string]interface{})
	assert.Equal(t, "2025-04", second["period"])
	assert.Equal(t, "/api/v1/claims/tok-april", second["claim_link"])
}

func TestUnclaimedPeriods_EntryNotInPayroll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPayroll := mocks.NewMockPayrollService(ctrl)
	h := NewPayrollHandler(mockPayroll, mocks.NewMockClaimLedger(ctrl), mocks.NewMockClaimTokenCodec(ctrl))

	payrollID := uuid.New()
	mockPayroll.EXPECT().GetPayroll(gomock.Any(), payrollID).Return(&domain.Payroll{
		ID:        payrollID,
		Status:    domain.PayrollStatusActive,
		CreatedAt: time.Now(),
	}, []domain.PayrollEntry{}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Params = gin.Params{
		{Key: "id", Value: payrollID.String()},
		{Key: "entry_id", Value: uuid.New().String()},
	}

	h.Unclaimed(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Claim Handler Tests ---

func TestClaimPreview_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClaim := mocks.NewMockClaimService(ctrl)
	h := NewClaimHandler(mockClaim)

	payrollID := uuid.New()
	entryID := uuid.New()
	mockClaim.EXPECT().Preview(gomock.Any(), "tok123").Return(&ports.ClaimPreview{
		PayrollID: payrollID,
		EntryID:   entryID,
		Recipient: domain.Address(testRecipient),
		Period:    domain.Period{Year: 2025, Seq: 3},
		Cadence:   domain.CadenceMonthly,
		Amount:    1500,
		Claimable: true,
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "token", Value: "tok123"}}

	h.Preview(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "2025-03", data["period"])
	assert.Equal(t, true, data["claimable"])
}

func TestClaimPreview_WeeklyPeriodForm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClaim := mocks.NewMockClaimService(ctrl)
	h := NewClaimHandler(mockClaim)

	mockClaim.EXPECT().Preview(gomock.Any(), "tok456").Return(&ports.ClaimPreview{
		PayrollID: uuid.New(),
		EntryID:   uuid.New(),
		Recipient: domain.Address(testRecipient),
		Period:    domain.Period{Year: 2025, Seq: 14},
		Cadence:   domain.CadenceWeekly,
		Amount:    250.5,
		Claimable: false,
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "token", Value: "tok456"}}

	h.Preview(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "2025-W14", data["period"])
	assert.Equal(t, false, data["claimable"])
}

func TestClaimPreview_InvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClaim := mocks.NewMockClaimService(ctrl)
	h := NewClaimHandler(mockClaim)

	mockClaim.EXPECT().Preview(gomock.Any(), "garbage").Return(nil, apperror.ErrInvalidClaimToken())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "token", Value: "garbage"}}

	h.Preview(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "CLM_001", resp["error_code"])
}

func TestClaimExecute_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClaim := mocks.NewMockClaimService(ctrl)
	h := NewClaimHandler(mockClaim)

	entryID := uuid.New()
	claimedAt := time.Date(2025, 3, 20, 10, 0, 0, 0, time.UTC)
	mockClaim.EXPECT().Execute(gomock.Any(), "tok123").Return(&ports.ClaimReceipt{
		EntryID:   entryID,
		Period:    domain.Period{Year: 2025, Seq: 3},
		TxRef:     "0xabc",
		ClaimedAt: claimedAt,
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	c.Params = gin.Params{{Key: "token", Value: "tok123"}}

	h.Execute(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, entryID.String(), data["entry_id"])
	assert.Equal(t, "0xabc", data["tx_ref"])
}

func TestClaimExecute_AlreadyClaimed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClaim := mocks.NewMockClaimService(ctrl)
	h := NewClaimHandler(mockClaim)

	mockClaim.EXPECT().Execute(gomock.Any(), "tok123").Return(nil, apperror.ErrAlreadyClaimed())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	c.Params = gin.Params{{Key: "token", Value: "tok123"}}

	h.Execute(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "CLM_002", resp["error_code"])
}

// --- Transfer Handler Tests ---

func validRelayRequest() dto.RelayTransferRequest {
	word := "a3f1b2c4d5e6f708192a3b4c5d6e7f8091a2b3c4d5e6f708192a3b4c5d6e7f80"
	return dto.RelayTransferRequest{
		UserAddress: testEmployer,
		ToAddress:   testRecipient,
		Amount:      "100.5",
		Nonce:       7,
		Deadline:    time.Now().Add(time.Hour).Unix(),
		V:           27,
		R:           word,
		S:           "0x" + word,
	}
}

func TestRelayTransfer_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRelay := mocks.NewMockRelayService(ctrl)
	h := NewTransferHandler(mockRelay)

	mockRelay.EXPECT().RelayTransfer(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, auth domain.RelayAuthorization) (string, error) {
			assert.Equal(t, domain.Address(testEmployer), auth.UserAddress)
			assert.Equal(t, "100500000000000000000", auth.Amount.String())
			assert.Equal(t, uint64(7), auth.Nonce)
			assert.Equal(t, uint8(27), auth.V)
			assert.Equal(t, byte(0xa3), auth.R[0])
			assert.Equal(t, byte(0x80), auth.S[31])
			return "0xdeadbeef", nil
		})

	w, c := jsonRequest(t, http.MethodPost, validRelayRequest())
	h.Relay(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "0xdeadbeef", data["tx_ref"])
}

func TestRelayTransfer_BadAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewTransferHandler(mocks.NewMockRelayService(ctrl))

	req := validRelayRequest()
	req.Amount = "-5"

	w, c := jsonRequest(t, http.MethodPost, req)
	h.Relay(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRelayTransfer_BadSignatureEncoding(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewTransferHandler(mocks.NewMockRelayService(ctrl))

	req := validRelayRequest()
	req.R = "zz" + req.R[2:]

	w, c := jsonRequest(t, http.MethodPost, req)
	h.Relay(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRelayTransfer_Expired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRelay := mocks.NewMockRelayService(ctrl)
	h := NewTransferHandler(mockRelay)

	mockRelay.EXPECT().RelayTransfer(gomock.Any(), gomock.Any()).Return("", apperror.ErrExpiredAuthorization())

	w, c := jsonRequest(t, http.MethodPost, validRelayRequest())
	h.Relay(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "RLY_002", resp["error_code"])
}

func TestRelayTransfer_NonceReused(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRelay := mocks.NewMockRelayService(ctrl)
	h := NewTransferHandler(mockRelay)

	mockRelay.EXPECT().RelayTransfer(gomock.Any(), gomock.Any()).Return("", apperror.ErrNonceReused())

	w, c := jsonRequest(t, http.MethodPost, validRelayRequest())
	h.Relay(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Health Check Test ---

func TestHealthCheck(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	HealthCheck()(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
}

// --- Router smoke test ---

func TestSetupRouter_Routes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClaim := mocks.NewMockClaimService(ctrl)
	mockClaim.EXPECT().Preview(gomock.Any(), "tok").Return(nil, apperror.ErrInvalidClaimToken())

	r := SetupRouter(RouterDeps{
		IngestSvc:  mocks.NewMockFileIngestor(ctrl),
		PayrollSvc: mocks.NewMockPayrollService(ctrl),
		ClaimSvc:   mockClaim,
		RelaySvc:   mocks.NewMockRelayService(ctrl),
		LedgerSvc:  mocks.NewMockClaimLedger(ctrl),
		TokenCodec: mocks.NewMockClaimTokenCodec(ctrl),
		Logger:     zerolog.Nop(),
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/claims/tok", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
