package accounts

import (
	"bytes"
	"strings"
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

func TestReadAccounts(t *testing.T) {
	input := strings.Join([]string{
		"code,name,kind,total_debit,total_credit,parent_code",
		"111,Caja,Activo,1500.50,0,110",
		"211,Cuentas por Pagar,Pasivo,,300,",
	}, "\n")

	accs, err := ReadAccounts(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, accs, 2)

	assert.Equal(t, "111", accs[0].Code)
	assert.Equal(t, "Caja", accs[0].Name)
	assert.Equal(t, "Activo", accs[0].Kind)
	assert.True(t, accs[0].Debit.Equal(dec("1500.50")))
	assert.Equal(t, "110", accs[0].ParentCode)

	assert.True(t, accs[1].Debit.IsZero(), "empty amount cell reads as zero")
	assert.True(t, accs[1].Credit.Equal(dec("300")))
	assert.Empty(t, accs[1].ParentCode)
}

func TestReadAccounts_Empty(t *testing.T) {
	accs, err := ReadAccounts(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, accs)
}

func TestReadAccounts_BadAmount(t *testing.T) {
	input := strings.Join([]string{
		"code,name,kind,total_debit,total_credit,parent_code",
		"111,Caja,Activo,not-a-number,0,",
	}, "\n")

	_, err := ReadAccounts(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestReadAccounts_WrongFieldCount(t *testing.T) {
	input := strings.Join([]string{
		"code,name,kind,total_debit,total_credit,parent_code",
		"111,Caja,Activo,10",
	}, "\n")

	_, err := ReadAccounts(strings.NewReader(input))
	require.Error(t, err)
}

func TestWriteReadRoundTrip(t *testing.T) {
	accounts := []model.Account{
		{Code: "127", Name: "Equipos e Instalaciones", Kind: "Activo", Debit: dec("900"), Credit: dec("0")},
		{Code: "127.01", Name: "Equipos, Planta", Kind: "Activo", Debit: dec("600.25"), Credit: dec("0"), ParentCode: "127"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteAccounts(&buf, accounts))

	got, err := ReadAccounts(&buf)
	require.NoError(t, err)
	assert.Equal(t, accounts, got)
}

func TestValidateAccounts(t *testing.T) {
	accounts := []model.Account{
		{Code: "111", Name: "Caja", Debit: dec("100")},
		{Name: "Sin Código"},
		{Code: "211", Debit: dec("-5"), Credit: dec("-1")},
	}

	errs := ValidateAccounts(accounts)
	require.Len(t, errs, 3)

	assert.Equal(t, 2, errs[0].Row)
	assert.Contains(t, errs[0].Description, "missing account code")

	assert.Equal(t, 3, errs[1].Row)
	assert.Equal(t, "211", errs[1].Code)
	assert.Contains(t, errs[1].Description, "negative total debit")
	assert.Contains(t, errs[2].Description, "negative total credit")
}

func TestValidateAccounts_DecimalPlaces(t *testing.T) {
	errs := ValidateAccounts([]model.Account{
		{Code: "111", Debit: dec("10.001")},
	})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Description, "more than 2 decimal places")

	assert.Empty(t, ValidateAccounts([]model.Account{
		{Code: "111", Debit: dec("10.50")},
	}))
}

func TestValidateAccounts_Clean(t *testing.T) {
	accounts := []model.Account{
		{Code: "111", Debit: dec("10"), Credit: dec("0")},
	}
	assert.Empty(t, ValidateAccounts(accounts))
}

func TestService_Duplicates(t *testing.T) {
	accounts := []model.Account{
		{Code: "111", Name: "Caja"},
		{Code: "112", Name: "Bancos"},
		{Code: "111", Name: "Caja Chica"},
	}

	svc := NewService(accounts)

	assert.Equal(t, 1, svc.Duplicates())
	assert.Len(t, svc.All(), 3)
	assert.Equal(t, []string{"111", "112"}, svc.Codes())

	got, ok := svc.Get("111")
	require.True(t, ok)
	assert.Equal(t, "Caja", got.Name, "first occurrence wins")

	assert.True(t, svc.Exists("112"))
	assert.False(t, svc.Exists("999"))
}

func TestService_ByKind(t *testing.T) {
	svc := NewService([]model.Account{
		{Code: "111", Kind: "Activo"},
		{Code: "211", Kind: "Pasivo"},
		{Code: "112", Kind: "Activo"},
	})

	assert.Len(t, svc.ByKind("Activo"), 2)
	assert.Empty(t, svc.ByKind("Orden"))
}
