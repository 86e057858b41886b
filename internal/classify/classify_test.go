package classify

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Sebitas13/Sistema-Contable-NEXUS-sub003/internal/model"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestClassify_Contra(t *testing.T) {
	res := Classify(model.Account{
		Code:   "129",
		Name:   "Depreciación Acumulada Vehículos",
		Credit: dec("300"),
	})

	assert.True(t, res.IsContra)
	assert.Equal(t, CategoryAsset, res.Category, "prefix still decides the category")
}

func TestClassify_ContraByKind(t *testing.T) {
	res := Classify(model.Account{Code: "128", Name: "Cuenta Cualquiera", Kind: "Reguladora de Activo"})
	assert.True(t, res.IsContra)
}

func TestClassify_OffBalance(t *testing.T) {
	res := Classify(model.Account{Code: "910", Name: "Mercadería en Consignación", Kind: "Cuentas de Orden"})
	assert.True(t, res.IsOffBalance)
}

func TestClassify_VariableBySign(t *testing.T) {
	debit := Classify(model.Account{
		Code:  "630",
		Name:  "Diferencia de Cambio",
		Debit: dec("50"),
	})
	assert.True(t, debit.IsVariable)
	assert.Equal(t, CategoryExpense, debit.Category, "debit balance lands on the expense side")

	credit := Classify(model.Account{
		Code:   "630",
		Name:   "Diferencia de Cambio",
		Credit: dec("50"),
	})
	assert.True(t, credit.IsVariable)
	assert.Equal(t, CategoryIncome, credit.Category, "credit balance lands on the income side")
}

func TestClassify_VariableOverridesPrefix(t *testing.T) {
	// Prefix 1 says asset, but the variable rule wins on sign.
	res := Classify(model.Account{
		Code:   "180",
		Name:   "Ajuste por Inflación y Tenencia de Bienes",
		Credit: dec("10"),
	})
	assert.Equal(t, CategoryIncome, res.Category)
}

func TestClassify_ResultBySign(t *testing.T) {
	res := Classify(model.Account{
		Code:   "RSLT",
		Name:   "Cuenta de Cierre",
		Kind:   "Resultado",
		Credit: dec("100"),
	})
	assert.True(t, res.IsResult)
	assert.Equal(t, CategoryIncome, res.Category)
}

func TestClassify_PrefixMapping(t *testing.T) {
	tests := []struct {
		code string
		want Category
	}{
		{"110", CategoryAsset},
		{"210", CategoryLiability},
		{"310", CategoryEquity},
		{"410", CategoryIncome},
		{"510", CategoryExpense},
		{"610", CategoryExpense},
		{"910", CategoryUnknown},
	}
	for _, tt := range tests {
		res := Classify(model.Account{Code: tt.code, Name: "Cuenta"})
		assert.Equal(t, tt.want, res.Category, "code %s", tt.code)
	}
}

func TestClassify_KindBeatsName(t *testing.T) {
	// No usable prefix; the declared type outranks the name keyword.
	res := Classify(model.Account{Code: "X1", Name: "Gastos Varios", Kind: "Ingreso"})
	assert.Equal(t, CategoryIncome, res.Category)
}

func TestClassify_NameKeywordFallback(t *testing.T) {
	res := Classify(model.Account{Code: "X2", Name: "Banco Nacional Cta. 123"})
	assert.Equal(t, CategoryAsset, res.Category)
}

func TestClassify_StrictExclusion(t *testing.T) {
	// A balance-sheet account whose name collides with income keywords
	// stays on the balance sheet.
	res := Classify(model.Account{Code: "113", Name: "Cuentas por Cobrar por Ventas"})
	assert.Equal(t, CategoryAsset, res.Category)
	assert.False(t, res.IsVariable)
}

func TestClassify_AccumulatedResults(t *testing.T) {
	res := Classify(model.Account{Code: "370", Name: "Resultados Acumulados"})
	assert.True(t, res.IsAccumulatedResult)
	assert.Equal(t, CategoryEquity, res.Category)
}

func TestClassify_TotalOnMissingFields(t *testing.T) {
	assert.NotPanics(t, func() {
		res := Classify(model.Account{})
		assert.Equal(t, CategoryUnknown, res.Category)
	})
}

func TestClassify_CustomPrefixMapping(t *testing.T) {
	opts := Options{PrefixCategories: map[byte]Category{'7': CategoryExpense}}
	res := ClassifyWith(model.Account{Code: "710", Name: "Gastos"}, opts)
	assert.Equal(t, CategoryExpense, res.Category)
}
