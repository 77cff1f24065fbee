package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/EthGlobal-BA-Builders/gotagota/internal/core/domain"
	"github.com/EthGlobal-BA-Builders/gotagota/internal/core/ports"
	"github.com/EthGlobal-BA-Builders/gotagota/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

// requiredColumns are matched by header name, case-insensitively, in any
// order. A space may stand in for the underscore ("monthly weekly").
var requiredColumns = []string{"name", "email", "address", "amount", "monthly_weekly"}

// IngestService implements ports.FileIngestor for CSV and Excel payroll files.
type IngestService struct {
	resolver ports.RecipientResolver
	log      zerolog.Logger
}

// NewIngestService creates a new IngestService.
func NewIngestService(resolver ports.RecipientResolver, log zerolog.Logger) *IngestService {
	return &IngestService{resolver: resolver, log: log}
}

// FormatForFilename maps a filename's extension to a FileFormat. Anything
// other than .csv, .xls or .xlsx is rejected before any bytes are parsed.
func (s *IngestService) FormatForFilename(filename string) (ports.FileFormat, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".csv":
		return ports.FormatCSV, nil
	case ".xls", ".xlsx":
		return ports.FormatSpreadsheet, nil
	default:
		return "", apperror.ErrUnsupportedFormat(ext)
	}
}

// Ingest parses fileBytes into payment records and batch-resolves recipient
// identifiers. Rows with fewer cells than the required column set, rows
// missing name, email or address, and rows with a non-positive or
// unparseable amount are skipped silently; that leniency is the component's
// contract, not an accident. Only file-level problems fail the ingestion.
func (s *IngestService) Ingest(ctx context.Context, fileBytes []byte, format ports.FileFormat, network domain.Network) (*ports.IngestResult, error) {
	var (
		rows [][]string
		err  error
	)
	switch format {
	case ports.FormatCSV:
		rows, err = readCSV(fileBytes)
	case ports.FormatSpreadsheet:
		rows, err = readSpreadsheet(fileBytes)
	default:
		return nil, apperror.ErrUnsupportedFormat(string(format))
	}
	if err != nil {
		return nil, err
	}

	if len(rows) < 2 {
		return nil, apperror.ErrParse(errors.New("file must have a header row and at least one data row"))
	}

	headerIdx, err := mapHeaders(rows[0])
	if err != nil {
		return nil, err
	}

	result := &ports.IngestResult{}
	for _, row := range rows[1:] {
		record, ok := rowToRecord(row, headerIdx)
		if !ok {
			result.SkippedRows++
			continue
		}
		result.Records = append(result.Records, record)
	}

	if len(result.Records) == 0 {
		return nil, apperror.ErrNoValidRows()
	}

	// One batched resolution pass; order of records is preserved, so the
	// i-th resolution belongs to the i-th record.
	identifiers := make([]string, len(result.Records))
	for i, r := range result.Records {
		identifiers[i] = r.RecipientIdentifier
	}
	resolutions := s.resolver.ResolveMany(ctx, identifiers, network)
	for i, res := range resolutions {
		if res.Resolved {
			result.Records[i].ResolvedAddress = res.Address
		} else {
			result.Unresolved++
		}
	}

	s.log.Info().
		Int("records", len(result.Records)).
		Int("skipped", result.SkippedRows).
		Int("unresolved", result.Unresolved).
		Msg("payroll file ingested")

	return result, nil
}

func readCSV(fileBytes []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(fileBytes))
	reader.FieldsPerRecord = -1 // Ragged rows are handled per-row, not fatally
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, apperror.ErrParse(fmt.Errorf("reading csv: %w", err))
	}
	return rows, nil
}

func readSpreadsheet(fileBytes []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(fileBytes))
	if err != nil {
		return nil, apperror.ErrParse(fmt.Errorf("opening spreadsheet: %w", err))
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperror.ErrParse(errors.New("spreadsheet has no sheets"))
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, apperror.ErrParse(fmt.Errorf("reading sheet %q: %w", sheets[0], err))
	}
	return rows, nil
}

// mapHeaders locates each required column in the header row. Missing any
// required column fails the whole file.
func mapHeaders(header []string) (map[string]int, error) {
	normalized := make([]string, len(header))
	for i, h := range header {
		normalized[i] = strings.ToLower(strings.TrimSpace(h))
	}

	idx := make(map[string]int, len(requiredColumns))
	for _, want := range requiredColumns {
		found := -1
		for i, h := range normalized {
			if h == want || h == strings.ReplaceAll(want, "_", " ") {
				found = i
				break
			}
		}
		if found == -1 {
			return nil, apperror.ErrMissingColumn(want)
		}
		idx[want] = found
	}
	return idx, nil
}

// rowToRecord applies the skip-invalid-rows policy to one data row.
func rowToRecord(row []string, idx map[string]int) (domain.PaymentRecord, bool) {
	// A row shorter than the required column set is malformed, not sparse.
	if len(row) < len(requiredColumns) {
		return domain.PaymentRecord{}, false
	}

	cell := func(col string) string {
		i := idx[col]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	name := cell("name")
	email := cell("email")
	identifier := cell("address")
	if name == "" || email == "" || identifier == "" {
		return domain.PaymentRecord{}, false
	}

	amount, err := strconv.ParseFloat(cell("amount"), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return domain.PaymentRecord{}, false
	}

	cadenceCell := cell("monthly_weekly")
	if cadenceCell == "" {
		cadenceCell = "true" // Blank cadence defaults to monthly
	}

	return domain.PaymentRecord{
		Name:                name,
		Email:               email,
		RecipientIdentifier: identifier,
		Amount:              amount,
		Cadence:             domain.ParseCadence(cadenceCell),
	}, true
}
