package classify

// Keyword tables are stored folded (upper case, no accents) to match
// textutil.Fold output. Spanish terms come first; English equivalents are
// kept for mixed charts.

var contraKeywords = []string{
	"DEPRECIACION ACUMULADA",
	"AMORTIZACION ACUMULADA",
	"PREVISION PARA",
	"PREVISION ACUMULADA",
	"PROVISION PARA INCOBRABLES",
	"DETERIORO",
	"ACCUMULATED DEPRECIATION",
	"ACCUMULATED AMORTIZATION",
	"IMPAIRMENT",
}

var variableKeywords = []string{
	"DIFERENCIA DE CAMBIO",
	"DIFERENCIAS DE CAMBIO",
	"AJUSTE POR INFLACION",
	"CORRECCION MONETARIA",
	"MANTENIMIENTO DE VALOR",
	"RESULTADO DEL EJERCICIO",
	"RESULTADO DE LA GESTION",
	"PERDIDAS Y GANANCIAS",
	"EXCHANGE DIFFERENCE",
	"INFLATION ADJUSTMENT",
	"PERIOD RESULT",
}

var accumulatedKeywords = []string{
	"RESULTADOS ACUMULADOS",
	"RESULTADOS DE GESTIONES ANTERIORES",
	"UTILIDADES RETENIDAS",
	"PERDIDAS ACUMULADAS",
	"ACCUMULATED RESULTS",
	"RETAINED EARNINGS",
}

type categoryTerm struct {
	term     string
	category Category
}

// kindTerms match the declared type hint. Order matters: more specific
// terms come before substrings they contain.
var kindTerms = []categoryTerm{
	{"PASIVO", CategoryLiability},
	{"ACTIVO", CategoryAsset},
	{"PATRIMONIO", CategoryEquity},
	{"CAPITAL", CategoryEquity},
	{"INGRESO", CategoryIncome},
	{"VENTA", CategoryIncome},
	{"COSTO", CategoryExpense},
	{"GASTO", CategoryExpense},
	{"EGRESO", CategoryExpense},
	{"LIABILIT", CategoryLiability},
	{"ASSET", CategoryAsset},
	{"EQUITY", CategoryEquity},
	{"REVENUE", CategoryIncome},
	{"INCOME", CategoryIncome},
	{"EXPENSE", CategoryExpense},
	{"COST", CategoryExpense},
}

// nameTerms are the weakest signal, consulted only when prefix and type
// give nothing.
var nameTerms = []categoryTerm{
	{"CUENTAS POR PAGAR", CategoryLiability},
	{"POR PAGAR", CategoryLiability},
	{"PRESTAMO", CategoryLiability},
	{"OBLIGACION", CategoryLiability},
	{"CAJA", CategoryAsset},
	{"BANCO", CategoryAsset},
	{"INVENTARIO", CategoryAsset},
	{"CUENTAS POR COBRAR", CategoryAsset},
	{"POR COBRAR", CategoryAsset},
	{"CAPITAL", CategoryEquity},
	{"RESERVA", CategoryEquity},
	{"PATRIMONIO", CategoryEquity},
	{"VENTAS", CategoryIncome},
	{"INGRESO", CategoryIncome},
	{"COSTO DE VENTAS", CategoryExpense},
	{"COSTO", CategoryExpense},
	{"GASTO", CategoryExpense},
	{"PASIVO", CategoryLiability},
	{"ACTIVO", CategoryAsset},
	{"PATRIMONIO", CategoryEquity},
}
