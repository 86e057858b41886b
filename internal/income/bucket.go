// Package income classifies accounts into income-statement buckets and runs
// the fixed cascade from net sales down to net liquid income.
package income

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Sebitas13/Sistema-Contable-NEXUS-sub003/internal/classify"
	"github.com/Sebitas13/Sistema-Contable-NEXUS-sub003/internal/model"
	"github.com/Sebitas13/Sistema-Contable-NEXUS-sub003/internal/textutil"
)

// Bucket names one income-statement line group.
type Bucket string

const (
	BucketRevenue            Bucket = "revenue"
	BucketContraRevenue      Bucket = "contra-revenue"
	BucketCostOfSales        Bucket = "cost-of-sales"
	BucketAdminExpense       Bucket = "admin-expense"
	BucketSellingExpense     Bucket = "selling-expense"
	BucketFinancialExpense   Bucket = "financial-expense"
	BucketOtherIncome        Bucket = "other-income"
	BucketOtherExpense       Bucket = "other-expense"
	BucketNonTaxableIncome   Bucket = "non-taxable-income"
	BucketAccumulatedResults Bucket = "accumulated-results"
)

// Line is one classified account inside a bucket. Amount is the absolute
// magnitude of the signed balance; the debit/credit convention is
// normalized away before the cascade sums anything.
type Line struct {
	Account model.Account
	Class   classify.Result
	Amount  decimal.Decimal
}

func sortLines(lines []Line) {
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Account.Code < lines[j].Account.Code
	})
}

// ruleSet matches accounts into a bucket by folded name keywords, declared
// type fragments, and code prefixes. Exclusions are checked before any
// positive signal.
type ruleSet struct {
	bucket     Bucket
	exclude    []string
	keywords   []string
	kinds      []string
	prefixes   []byte
	signNetted bool
}

// bucketRules are evaluated in priority order; the first match wins.
var bucketRules = []ruleSet{
	{
		bucket:   BucketNonTaxableIncome,
		keywords: []string{"NO IMPONIBLE", "NO GRAVADO", "EXENTO", "NON TAXABLE"},
	},
	{
		bucket: BucketContraRevenue,
		keywords: []string{
			"DEVOLUCIONES EN VENTAS", "DEVOLUCION EN VENTAS",
			"DESCUENTOS EN VENTAS", "DESCUENTO EN VENTAS",
			"REBAJAS EN VENTAS", "BONIFICACIONES SOBRE VENTAS",
			"SALES RETURNS", "SALES DISCOUNTS",
		},
	},
	{
		bucket:   BucketRevenue,
		exclude:  []string{"COSTO", "DEVOLUCION", "DESCUENTO", "GASTO"},
		keywords: []string{"VENTAS", "INGRESOS POR SERVICIOS", "INGRESOS OPERATIVOS", "SERVICE REVENUE"},
		kinds:    []string{"INGRESO", "VENTA", "REVENUE", "INCOME"},
		prefixes: []byte{'4'},
	},
	{
		bucket:   BucketCostOfSales,
		keywords: []string{"COSTO DE VENTAS", "COSTO DE SERVICIOS", "COSTO DE MERCADERIA", "COST OF SALES", "COST OF GOODS"},
		kinds:    []string{"COSTO", "COST"},
		prefixes: []byte{'5'},
	},
	{
		bucket:     BucketOtherIncome,
		keywords:   []string{"OTROS INGRESOS", "OTROS EGRESOS", "NO OPERACIONAL", "NO OPERATIVO", "EXTRAORDINARIO", "OTHER INCOME", "OTHER EXPENSE"},
		signNetted: true,
	},
	{
		bucket:   BucketSellingExpense,
		keywords: []string{"GASTOS DE COMERCIALIZACION", "GASTOS DE VENTA", "GASTO DE VENTAS", "SELLING EXPENSE", "PUBLICIDAD"},
	},
	{
		bucket:   BucketFinancialExpense,
		keywords: []string{"GASTOS FINANCIEROS", "GASTO FINANCIERO", "INTERESES PAGADOS", "COMISIONES BANCARIAS", "FINANCIAL EXPENSE", "INTEREST EXPENSE"},
	},
}

// classifyBucket places one account. The second return is false when the
// account does not belong on the income statement.
func classifyBucket(acc model.Account, class classify.Result) (Bucket, bool) {
	if class.IsOffBalance {
		return "", false
	}

	name := textutil.Fold(acc.Name)
	kind := textutil.Fold(acc.Kind)

	// Balance-sheet accounts stay out, except the accumulated-results and
	// non-taxable-income exceptions handled by the rule scan below.
	if class.IsAccumulatedResult {
		return BucketAccumulatedResults, true
	}

	for _, rule := range bucketRules {
		if textutil.ContainsAny(name, rule.exclude) {
			continue
		}
		if !matches(rule, acc.Code, name, kind) {
			continue
		}
		if class.BalanceSheetSide() && rule.bucket != BucketNonTaxableIncome {
			break
		}
		if rule.signNetted && acc.SignedBalance().Sign() >= 0 {
			return BucketOtherExpense, true
		}
		return rule.bucket, true
	}

	if class.BalanceSheetSide() {
		return "", false
	}
	switch class.Category {
	case classify.CategoryIncome:
		return BucketRevenue, true
	case classify.CategoryExpense:
		return BucketAdminExpense, true
	}
	return "", false
}

func matches(rule ruleSet, code, name, kind string) bool {
	if textutil.ContainsAny(name, rule.keywords) {
		return true
	}
	if kind != "" && textutil.ContainsAny(kind, rule.kinds) {
		return true
	}
	if code != "" {
		for _, p := range rule.prefixes {
			if code[0] == p {
				return true
			}
		}
	}
	return false
}
