package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/EthGlobal-BA-Builders/gotagota/internal/core/domain"
	"github.com/EthGlobal-BA-Builders/gotagota/internal/core/ports"
	"github.com/EthGlobal-BA-Builders/gotagota/internal/core/ports/mocks"
	"github.com/EthGlobal-BA-Builders/gotagota/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

func setupIngest(t *testing.T) (*IngestService, *mocks.MockRecipientResolver, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockRecipientResolver(ctrl)
	svc := NewIngestService(resolver, zerolog.Nop())
	return svc, resolver, ctrl
}

// passthroughResolutions resolves every identifier to itself lowercased when
// it is already an address, and leaves names unresolved.
func passthroughResolutions(identifiers []string) []ports.Resolution {
	out := make([]ports.Resolution, len(identifiers))
	for i, id := range identifiers {
		out[i] = ports.Resolution{Identifier: id}
		if domain.IsHexAddress(id) {
			out[i].Address = domain.NormalizeAddress(id)
			out[i].Resolved = true
		}
	}
	return out
}

func TestIngest_FormatForFilename(t *testing.T) {
	svc, _, ctrl := setupIngest(t)
	defer ctrl.Finish()

	format, err := svc.FormatForFilename("payroll.csv")
	require.NoError(t, err)
	assert.Equal(t, ports.FormatCSV, format)

	format, err = svc.FormatForFilename("Q3 Payroll.XLSX")
	require.NoError(t, err)
	assert.Equal(t, ports.FormatSpreadsheet, format)

	format, err = svc.FormatForFilename("legacy.xls")
	require.NoError(t, err)
	assert.Equal(t, ports.FormatSpreadsheet, format)

	_, err = svc.FormatForFilename("payroll.pdf")
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "IMP_001", appErr.Code)
}

func TestIngest_CSV(t *testing.T) {
	svc, resolver, ctrl := setupIngest(t)
	defer ctrl.Finish()

	file := []byte(`Name,Email,Address,Amount,Monthly_Weekly
Alice Johnson,alice@company.com,0x1111111111111111111111111111111111111111,1500,true
Bob Smith,bob@company.com,bob.celo,250.50,false
`)

	resolver.EXPECT().
		ResolveMany(gomock.Any(), []string{"0x1111111111111111111111111111111111111111", "bob.celo"}, domain.NetworkCelo).
		Return([]ports.Resolution{
			{Identifier: "0x1111111111111111111111111111111111111111", Address: "0x1111111111111111111111111111111111111111", Resolved: true},
			{Identifier: "bob.celo", Address: "0x2222222222222222222222222222222222222222", Resolved: true},
		})

	result, err := svc.Ingest(context.Background(), file, ports.FormatCSV, domain.NetworkCelo)
	require.NoError(t, err)
	require.Len(t, result.Records, 2)
	assert.Zero(t, result.SkippedRows)
	assert.Zero(t, result.Unresolved)

	assert.Equal(t, "Alice Johnson", result.Records[0].Name)
	assert.Equal(t, domain.CadenceMonthly, result.Records[0].Cadence)
	assert.Equal(t, 1500.0, result.Records[0].Amount)

	assert.Equal(t, domain.CadenceWeekly, result.Records[1].Cadence)
	assert.Equal(t, 250.50, result.Records[1].Amount)
	assert.Equal(t, domain.Address("0x2222222222222222222222222222222222222222"), result.Records[1].ResolvedAddress)
}

func TestIngest_CSV_SkipsInvalidRows(t *testing.T) {
	svc, resolver, ctrl := setupIngest(t)
	defer ctrl.Finish()

	// Missing email, zero amount, unparseable amount; one good row survives.
	file := []byte(`name,email,address,amount,monthly weekly
Alice,,0x1111111111111111111111111111111111111111,100,true
Bob,bob@x.com,0x2222222222222222222222222222222222222222,0,true
Carol,carol@x.com,0x3333333333333333333333333333333333333333,not-a-number,true
Dave,dave@x.com,0x4444444444444444444444444444444444444444,75.25,
`)

	resolver.EXPECT().
		ResolveMany(gomock.Any(), gomock.Any(), domain.NetworkCelo).
		DoAndReturn(func(_ context.Context, ids []string, _ domain.Network) []ports.Resolution {
			return passthroughResolutions(ids)
		})

	result, err := svc.Ingest(context.Background(), file, ports.FormatCSV, domain.NetworkCelo)
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Equal(t, 3, result.SkippedRows)

	// Blank cadence defaults to monthly.
	assert.Equal(t, "Dave", result.Records[0].Name)
	assert.Equal(t, domain.CadenceMonthly, result.Records[0].Cadence)
}

func TestIngest_CSV_SkipsShortRows(t *testing.T) {
	svc, resolver, ctrl := setupIngest(t)
	defer ctrl.Finish()

	// The second data row stops after the amount cell; it is skipped rather
	// than padded out with empty cells.
	file := []byte(`name,email,address,amount,monthly_weekly
Alice,alice@x.com,0x1111111111111111111111111111111111111111,100,true
Bob,bob@x.com,0x2222222222222222222222222222222222222222,50
`)

	resolver.EXPECT().
		ResolveMany(gomock.Any(), gomock.Any(), domain.NetworkCelo).
		DoAndReturn(func(_ context.Context, ids []string, _ domain.Network) []ports.Resolution {
			return passthroughResolutions(ids)
		})

	result, err := svc.Ingest(context.Background(), file, ports.FormatCSV, domain.NetworkCelo)
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "Alice", result.Records[0].Name)
	assert.Equal(t, 1, result.SkippedRows)
}

func TestIngest_CSV_MissingColumn(t *testing.T) {
	svc, _, ctrl := setupIngest(t)
	defer ctrl.Finish()

	file := []byte(`name,email,amount,monthly_weekly
Alice,alice@x.com,100,true
`)

	_, err := svc.Ingest(context.Background(), file, ports.FormatCSV, domain.NetworkCelo)
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "IMP_003", appErr.Code)
	assert.Contains(t, appErr.Message, "address")
}

func TestIngest_CSV_HeaderOnly(t *testing.T) {
	svc, _, ctrl := setupIngest(t)
	defer ctrl.Finish()

	file := []byte("name,email,address,amount,monthly_weekly\n")

	_, err := svc.Ingest(context.Background(), file, ports.FormatCSV, domain.NetworkCelo)
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "IMP_002", appErr.Code)
}

func TestIngest_CSV_NoValidRows(t *testing.T) {
	svc, _, ctrl := setupIngest(t)
	defer ctrl.Finish()

	file := []byte(`name,email,address,amount,monthly_weekly
,missing@name.com,0x1111111111111111111111111111111111111111,100,true
Bob,,0x2222222222222222222222222222222222222222,100,true
`)

	_, err := svc.Ingest(context.Background(), file, ports.FormatCSV, domain.NetworkCelo)
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "IMP_004", appErr.Code)
}

func TestIngest_CSV_UnresolvedNamesCounted(t *testing.T) {
	svc, resolver, ctrl := setupIngest(t)
	defer ctrl.Finish()

	file := []byte(`name,email,address,amount,monthly_weekly
Alice,alice@x.com,unknown.celo,100,true
Bob,bob@x.com,0x2222222222222222222222222222222222222222,200,true
`)

	resolver.EXPECT().
		ResolveMany(gomock.Any(), gomock.Any(), domain.NetworkCelo).
		DoAndReturn(func(_ context.Context, ids []string, _ domain.Network) []ports.Resolution {
			return passthroughResolutions(ids)
		})

	result, err := svc.Ingest(context.Background(), file, ports.FormatCSV, domain.NetworkCelo)
	require.NoError(t, err)
	require.Len(t, result.Records, 2)
	assert.Equal(t, 1, result.Unresolved)
	assert.False(t, result.Records[0].Resolved())
	assert.True(t, result.Records[1].Resolved())
}

func TestIngest_Spreadsheet(t *testing.T) {
	svc, resolver, ctrl := setupIngest(t)
	defer ctrl.Finish()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]any{
		{"Name", "Email", "Address", "Amount", "Monthly_Weekly"},
		{"Alice Johnson", "alice@company.com", "0x1111111111111111111111111111111111111111", 1500, "true"},
		{"Bob Smith", "bob@company.com", "0x2222222222222222222222222222222222222222", 250.5, "false"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	resolver.EXPECT().
		ResolveMany(gomock.Any(), gomock.Any(), domain.NetworkCelo).
		DoAndReturn(func(_ context.Context, ids []string, _ domain.Network) []ports.Resolution {
			return passthroughResolutions(ids)
		})

	result, err := svc.Ingest(context.Background(), buf.Bytes(), ports.FormatSpreadsheet, domain.NetworkCelo)
	require.NoError(t, err)
	require.Len(t, result.Records, 2)
	assert.Equal(t, "Alice Johnson", result.Records[0].Name)
	assert.Equal(t, 1500.0, result.Records[0].Amount)
	assert.Equal(t, domain.CadenceWeekly, result.Records[1].Cadence)
}

func TestIngest_Spreadsheet_Malformed(t *testing.T) {
	svc, _, ctrl := setupIngest(t)
	defer ctrl.Finish()

	_, err := svc.Ingest(context.Background(), []byte("definitely not a zip archive"), ports.FormatSpreadsheet, domain.NetworkCelo)
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "IMP_002", appErr.Code)
}
