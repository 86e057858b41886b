package accounts

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Sebitas13/Sistema-Contable-NEXUS-sub003/internal/model"
)

// ValidationError describes a single invalid input row. The engines
// tolerate degraded data; validation exists for callers that want to
// fail fast at the boundary instead.
type ValidationError struct {
	Row         int
	Code        string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("row %d [%s]: %s", e.Row, e.Code, e.Description)
}

// ValidateAccounts checks an account snapshot: codes must be present,
// debit/credit totals non-negative and at most two decimal places. Rows are
// numbered from 1.
func ValidateAccounts(accounts []model.Account) []ValidationError {
	var errs []ValidationError
	for i, a := range accounts {
		row := i + 1
		if a.Code == "" {
			errs = append(errs, ValidationError{
				Row:         row,
				Description: "missing account code",
			})
		}
		if a.Debit.Sign() < 0 {
			errs = append(errs, ValidationError{
				Row:         row,
				Code:        a.Code,
				Description: fmt.Sprintf("negative total debit %s", a.Debit),
			})
		}
		if a.Credit.Sign() < 0 {
			errs = append(errs, ValidationError{
				Row:         row,
				Code:        a.Code,
				Description: fmt.Sprintf("negative total credit %s", a.Credit),
			})
		}
		for _, amt := range []struct {
			label string
			value decimal.Decimal
		}{{"debit", a.Debit}, {"credit", a.Credit}} {
			if amt.value.Exponent() < -2 && !amt.value.Equal(amt.value.Round(2)) {
				errs = append(errs, ValidationError{
					Row:         row,
					Code:        a.Code,
					Description: fmt.Sprintf("total %s %s has more than 2 decimal places", amt.label, amt.value),
				})
			}
		}
	}
	return errs
}
