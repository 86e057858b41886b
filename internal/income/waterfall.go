package income

import (
	"github.com/shopspring/decimal"

	"github.com/Sebitas13/Sistema-Contable-NEXUS-sub003/internal/audit"
	"github.com/Sebitas13/Sistema-Contable-NEXUS-sub003/internal/classify"
	"github.com/Sebitas13/Sistema-Contable-NEXUS-sub003/internal/model"
)

// Totals is the income-statement waterfall from net sales down to net
// liquid income. Intermediate figures keep their cascade meaning: a
// negative PreTaxIncome is a loss.
type Totals struct {
	Revenue          decimal.Decimal
	ContraRevenue    decimal.Decimal
	NetSales         decimal.Decimal
	CostOfSales      decimal.Decimal
	GrossMargin      decimal.Decimal
	AdminExpense     decimal.Decimal
	SellingExpense   decimal.Decimal
	FinancialExpense decimal.Decimal
	OtherIncome      decimal.Decimal
	OtherExpense     decimal.Decimal
	OperatingIncome  decimal.Decimal
	PreTaxIncome     decimal.Decimal
	LossCompensation decimal.Decimal
	TaxableBase      decimal.Decimal
	Tax              decimal.Decimal
	NonTaxableIncome decimal.Decimal
	NetIncome        decimal.Decimal
	LegalReserve     decimal.Decimal
	NetLiquidIncome  decimal.Decimal
}

// Statement is the finished income statement: bucketed line items, the
// waterfall totals, and the trail of applied rules.
type Statement struct {
	Lines  map[Bucket][]Line
	Totals Totals
	Trail  audit.Trail
}

// Options tune the cascade. Zero-valued rates fall back to the statutory
// defaults (25% tax, 5% legal reserve).
type Options struct {
	ApplyLegalReserve bool
	TaxRate           decimal.Decimal
	ReserveRate       decimal.Decimal
	Classify          classify.Options
}

var (
	defaultTaxRate     = decimal.NewFromFloat(0.25)
	defaultReserveRate = decimal.NewFromFloat(0.05)
)

// Build classifies accounts into buckets and runs the waterfall. Pure: the
// input is never mutated and identical input yields identical output.
func Build(accs []model.Account, opts Options) *Statement {
	if opts.TaxRate.IsZero() {
		opts.TaxRate = defaultTaxRate
	}
	if opts.ReserveRate.IsZero() {
		opts.ReserveRate = defaultReserveRate
	}
	if opts.Classify.PrefixCategories == nil {
		opts.Classify = classify.DefaultOptions()
	}

	st := &Statement{Lines: make(map[Bucket][]Line)}

	accumulatedLosses := decimal.Zero
	for _, acc := range accs {
		class := classify.ClassifyWith(acc, opts.Classify)
		bucket, ok := classifyBucket(acc, class)
		if !ok {
			continue
		}
		signed := acc.SignedBalance()
		st.Lines[bucket] = append(st.Lines[bucket], Line{
			Account: acc,
			Class:   class,
			Amount:  signed.Abs(),
		})
		if bucket == BucketAccumulatedResults && signed.Sign() > 0 {
			accumulatedLosses = accumulatedLosses.Add(signed)
		}
	}
	for _, lines := range st.Lines {
		sortLines(lines)
	}

	t := &st.Totals
	t.Revenue = bucketTotal(st.Lines, BucketRevenue)
	t.ContraRevenue = bucketTotal(st.Lines, BucketContraRevenue)
	t.CostOfSales = bucketTotal(st.Lines, BucketCostOfSales)
	t.AdminExpense = bucketTotal(st.Lines, BucketAdminExpense)
	t.SellingExpense = bucketTotal(st.Lines, BucketSellingExpense)
	t.FinancialExpense = bucketTotal(st.Lines, BucketFinancialExpense)
	t.OtherIncome = bucketTotal(st.Lines, BucketOtherIncome)
	t.OtherExpense = bucketTotal(st.Lines, BucketOtherExpense)
	t.NonTaxableIncome = bucketTotal(st.Lines, BucketNonTaxableIncome)

	t.NetSales = t.Revenue.Sub(t.ContraRevenue)
	t.GrossMargin = t.NetSales.Sub(t.CostOfSales)
	operatingBeforeOther := t.GrossMargin.
		Sub(t.AdminExpense).
		Sub(t.SellingExpense).
		Sub(t.FinancialExpense)
	t.OperatingIncome = operatingBeforeOther.Add(t.OtherIncome)
	t.PreTaxIncome = t.OperatingIncome.Sub(t.OtherExpense)

	if t.PreTaxIncome.Sign() > 0 {
		runTaxBranch(t, accumulatedLosses, opts, &st.Trail)
	} else {
		t.NetIncome = t.PreTaxIncome.Add(t.NonTaxableIncome)
		t.NetLiquidIncome = t.NetIncome
		st.Trail.Addf("tax", "pre-tax income %s not positive, no tax computed", t.PreTaxIncome)
	}

	return st
}

// runTaxBranch applies loss compensation, tax, and the optional legal
// reserve to a positive pre-tax income.
func runTaxBranch(t *Totals, accumulatedLosses decimal.Decimal, opts Options, trail *audit.Trail) {
	if accumulatedLosses.Sign() > 0 {
		t.LossCompensation = decimal.Min(accumulatedLosses, t.PreTaxIncome)
		trail.Addf("loss-compensation", "applied %s over %s accumulated losses",
			t.LossCompensation, accumulatedLosses)
	}
	t.TaxableBase = t.PreTaxIncome.Sub(t.LossCompensation)

	if t.TaxableBase.Sign() > 0 {
		t.Tax = t.TaxableBase.Mul(opts.TaxRate)
		trail.Addf("tax", "%s on taxable base %s", t.Tax, t.TaxableBase)
	}

	postTax := t.TaxableBase.Sub(t.Tax)
	t.NetIncome = postTax.Add(t.NonTaxableIncome)

	if opts.ApplyLegalReserve && t.NetIncome.Sign() > 0 {
		t.LegalReserve = t.NetIncome.Mul(opts.ReserveRate)
		trail.Addf("legal-reserve", "%s retained from net income %s", t.LegalReserve, t.NetIncome)
	}
	t.NetLiquidIncome = t.NetIncome.Sub(t.LegalReserve)
}

func bucketTotal(lines map[Bucket][]Line, bucket Bucket) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines[bucket] {
		total = total.Add(l.Amount)
	}
	return total
}
