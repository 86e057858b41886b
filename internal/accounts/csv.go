package accounts

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Sebitas13/Sistema-Contable-NEXUS-sub003/internal/model"
)

const (
	numFields = 6
	colCode   = 0
	colName   = 1
	colKind   = 2
	colDebit  = 3
	colCredit = 4
	colParent = 5
)

// ReadAccounts reads an account snapshot CSV:
// code,name,kind,total_debit,total_credit,parent_code.
func ReadAccounts(r io.Reader) ([]model.Account, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var accounts []model.Account
	for i, rec := range records[1:] {
		acct, err := UnmarshalAccount(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		accounts = append(accounts, acct)
	}
	return accounts, nil
}

// WriteAccounts writes an account snapshot CSV.
func WriteAccounts(w io.Writer, accounts []model.Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"code", "name", "kind", "total_debit", "total_credit", "parent_code"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, acct := range accounts {
		if err := cw.Write(MarshalAccount(acct)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalAccount converts an Account to a CSV row.
func MarshalAccount(acct model.Account) []string {
	row := make([]string, numFields)
	row[colCode] = acct.Code
	row[colName] = acct.Name
	row[colKind] = acct.Kind
	row[colDebit] = acct.Debit.String()
	row[colCredit] = acct.Credit.String()
	row[colParent] = acct.ParentCode
	return row
}

// UnmarshalAccount converts a CSV row to an Account. Empty amount cells
// read as zero.
func UnmarshalAccount(record []string) (model.Account, error) {
	if len(record) != numFields {
		return model.Account{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	debit, err := parseAmount(record[colDebit])
	if err != nil {
		return model.Account{}, fmt.Errorf("parsing debit %q: %w", record[colDebit], err)
	}
	credit, err := parseAmount(record[colCredit])
	if err != nil {
		return model.Account{}, fmt.Errorf("parsing credit %q: %w", record[colCredit], err)
	}

	return model.Account{
		Code:       strings.TrimSpace(record[colCode]),
		Name:       strings.TrimSpace(record[colName]),
		Kind:       strings.TrimSpace(record[colKind]),
		Debit:      debit,
		Credit:     credit,
		ParentCode: strings.TrimSpace(record[colParent]),
	}, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}
