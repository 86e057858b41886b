package income

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sebitas13/Sistema-Contable-NEXUS-sub003/internal/model"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func acc(code, name, kind, debit, credit string) model.Account {
	return model.Account{Code: code, Name: name, Kind: kind, Debit: dec(debit), Credit: dec(credit)}
}

func assertDec(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, got.Equal(dec(want)), "want %s, got %s", want, got)
}

func TestBuild_Cascade(t *testing.T) {
	accounts := []model.Account{
		acc("411", "Ventas", "Ingreso", "0", "1000"),
		acc("511", "Costo de Ventas", "Costo", "600", "0"),
		acc("611", "Gastos de Administración", "Gasto", "200", "0"),
	}

	st := Build(accounts, Options{ApplyLegalReserve: true})

	tot := st.Totals
	assertDec(t, "1000", tot.Revenue)
	assertDec(t, "1000", tot.NetSales)
	assertDec(t, "600", tot.CostOfSales)
	assertDec(t, "400", tot.GrossMargin)
	assertDec(t, "200", tot.AdminExpense)
	assertDec(t, "200", tot.OperatingIncome)
	assertDec(t, "200", tot.PreTaxIncome)
	assertDec(t, "200", tot.TaxableBase)
	assertDec(t, "50", tot.Tax)
	assertDec(t, "150", tot.NetIncome)
	assertDec(t, "7.5", tot.LegalReserve)
	assertDec(t, "142.5", tot.NetLiquidIncome)
}

func TestBuild_ContraRevenueNetsSales(t *testing.T) {
	accounts := []model.Account{
		acc("411", "Ventas", "Ingreso", "0", "1000"),
		acc("412", "Devoluciones en Ventas", "Ingreso", "100", "0"),
	}

	st := Build(accounts, Options{})

	require.Len(t, st.Lines[BucketContraRevenue], 1)
	assertDec(t, "1000", st.Totals.Revenue)
	assertDec(t, "100", st.Totals.ContraRevenue)
	assertDec(t, "900", st.Totals.NetSales)
}

func TestBuild_LossCompensation(t *testing.T) {
	accounts := []model.Account{
		acc("411", "Ventas", "Ingreso", "0", "1000"),
		acc("511", "Costo de Ventas", "Costo", "800", "0"),
		acc("371", "Resultados Acumulados", "Patrimonio", "80", "0"),
	}

	st := Build(accounts, Options{})

	require.Len(t, st.Lines[BucketAccumulatedResults], 1)
	assertDec(t, "200", st.Totals.PreTaxIncome)
	assertDec(t, "80", st.Totals.LossCompensation)
	assertDec(t, "120", st.Totals.TaxableBase)
	assertDec(t, "30", st.Totals.Tax)
	assertDec(t, "90", st.Totals.NetIncome)
}

func TestBuild_LossCompensationCapped(t *testing.T) {
	accounts := []model.Account{
		acc("411", "Ventas", "Ingreso", "0", "100"),
		acc("371", "Resultados Acumulados", "Patrimonio", "500", "0"),
	}

	st := Build(accounts, Options{})

	assertDec(t, "100", st.Totals.LossCompensation)
	assertDec(t, "0", st.Totals.TaxableBase)
	assertDec(t, "0", st.Totals.Tax)
}

func TestBuild_AccumulatedProfitDoesNotCompensate(t *testing.T) {
	accounts := []model.Account{
		acc("411", "Ventas", "Ingreso", "0", "200"),
		acc("371", "Resultados Acumulados", "Patrimonio", "0", "300"),
	}

	st := Build(accounts, Options{})

	assertDec(t, "0", st.Totals.LossCompensation)
	assertDec(t, "200", st.Totals.TaxableBase)
}

func TestBuild_NegativePreTax(t *testing.T) {
	accounts := []model.Account{
		acc("411", "Ventas", "Ingreso", "0", "100"),
		acc("611", "Sueldos y Salarios", "Gasto", "300", "0"),
		acc("431", "Ingresos No Gravados", "Ingreso", "0", "50"),
	}

	st := Build(accounts, Options{ApplyLegalReserve: true})

	assertDec(t, "-200", st.Totals.PreTaxIncome)
	assertDec(t, "0", st.Totals.Tax)
	assertDec(t, "50", st.Totals.NonTaxableIncome)
	assertDec(t, "-150", st.Totals.NetIncome)
	assertDec(t, "0", st.Totals.LegalReserve)
	assertDec(t, "-150", st.Totals.NetLiquidIncome)
}

func TestBuild_SignNettedOther(t *testing.T) {
	gain := Build([]model.Account{
		acc("461", "Otros Ingresos No Operacionales", "Ingreso", "0", "70"),
	}, Options{})
	require.Len(t, gain.Lines[BucketOtherIncome], 1)
	assertDec(t, "70", gain.Totals.OtherIncome)

	loss := Build([]model.Account{
		acc("661", "Otros Ingresos No Operacionales", "Gasto", "70", "0"),
	}, Options{})
	require.Len(t, loss.Lines[BucketOtherExpense], 1)
	assertDec(t, "70", loss.Totals.OtherExpense)
}

func TestBuild_OtherExpenseReducesPreTax(t *testing.T) {
	accounts := []model.Account{
		acc("411", "Ventas", "Ingreso", "0", "500"),
		acc("661", "Gastos Extraordinarios", "Gasto", "40", "0"),
	}

	st := Build(accounts, Options{})

	assertDec(t, "500", st.Totals.OperatingIncome)
	assertDec(t, "460", st.Totals.PreTaxIncome)
}

func TestBuild_ExpenseNamedAfterSalesStaysExpense(t *testing.T) {
	accounts := []model.Account{
		acc("411", "Ventas", "Ingreso", "0", "1000"),
		acc("621", "Gasto de Ventas", "Gasto", "150", "0"),
	}

	st := Build(accounts, Options{})

	require.Len(t, st.Lines[BucketRevenue], 1)
	require.Len(t, st.Lines[BucketSellingExpense], 1)
	assert.Equal(t, "621", st.Lines[BucketSellingExpense][0].Account.Code)

	assertDec(t, "1000", st.Totals.Revenue)
	assertDec(t, "1000", st.Totals.NetSales)
	assertDec(t, "150", st.Totals.SellingExpense)
	assertDec(t, "850", st.Totals.OperatingIncome)
}

func TestBuild_SellingAndFinancialExpense(t *testing.T) {
	accounts := []model.Account{
		acc("411", "Ventas", "Ingreso", "0", "1000"),
		acc("621", "Gastos de Comercialización", "Gasto", "150", "0"),
		acc("631", "Gastos Financieros", "Gasto", "50", "0"),
	}

	st := Build(accounts, Options{})

	assertDec(t, "150", st.Totals.SellingExpense)
	assertDec(t, "50", st.Totals.FinancialExpense)
	assertDec(t, "0", st.Totals.AdminExpense)
	assertDec(t, "800", st.Totals.OperatingIncome)
}

func TestBuild_BalanceSheetExcluded(t *testing.T) {
	accounts := []model.Account{
		acc("111", "Caja", "Activo", "500", "0"),
		acc("211", "Cuentas por Pagar", "Pasivo", "0", "300"),
		acc("811", "Mercaderías Recibidas en Consignación", "Orden Deudora", "100", "0"),
		acc("411", "Ventas", "Ingreso", "0", "1000"),
	}

	st := Build(accounts, Options{})

	total := 0
	for _, lines := range st.Lines {
		total += len(lines)
	}
	assert.Equal(t, 1, total)
	assertDec(t, "1000", st.Totals.Revenue)
}

func TestBuild_CustomRates(t *testing.T) {
	accounts := []model.Account{
		acc("411", "Ventas", "Ingreso", "0", "1000"),
	}

	st := Build(accounts, Options{
		ApplyLegalReserve: true,
		TaxRate:           dec("0.3"),
		ReserveRate:       dec("0.1"),
	})

	assertDec(t, "300", st.Totals.Tax)
	assertDec(t, "70", st.Totals.LegalReserve)
	assertDec(t, "630", st.Totals.NetLiquidIncome)
}

func TestBuild_InputNotMutated(t *testing.T) {
	accounts := []model.Account{
		acc("411", "Ventas", "Ingreso", "0", "1000"),
	}
	before := accounts[0]

	Build(accounts, Options{})

	assert.Equal(t, before, accounts[0])
}
