package ingest

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/Sebitas13/Sistema-Contable-NEXUS-sub003/internal/model"
)

// XLSXParser reads the first sheet of a workbook laid out like the
// snapshot CSV: code, name, kind, total_debit, total_credit, parent_code.
// The first row is assumed to be a header.
type XLSXParser struct{}

// Format returns "xlsx".
func (p *XLSXParser) Format() string { return "xlsx" }

// Parse reads accounts from an XLSX stream.
func (p *XLSXParser) Parse(r io.Reader) ([]model.Account, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}

	var accts []model.Account
	for i, row := range rows[1:] {
		acct, err := rowToAccount(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if acct.Code == "" {
			continue // blank padding rows are common in exports
		}
		accts = append(accts, acct)
	}
	return accts, nil
}

func rowToAccount(row []string) (model.Account, error) {
	debit, err := cellAmount(cell(row, 3))
	if err != nil {
		return model.Account{}, fmt.Errorf("parsing debit: %w", err)
	}
	credit, err := cellAmount(cell(row, 4))
	if err != nil {
		return model.Account{}, fmt.Errorf("parsing credit: %w", err)
	}
	return model.Account{
		Code:       strings.TrimSpace(cell(row, 0)),
		Name:       strings.TrimSpace(cell(row, 1)),
		Kind:       strings.TrimSpace(cell(row, 2)),
		Debit:      debit,
		Credit:     credit,
		ParentCode: strings.TrimSpace(cell(row, 5)),
	}, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}

func cellAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	// Exports frequently use thousands separators.
	s = strings.ReplaceAll(s, ",", "")
	return decimal.NewFromString(s)
}
