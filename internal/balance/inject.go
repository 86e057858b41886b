package balance

import (
	"github.com/shopspring/decimal"

	"github.com/Sebitas13/Sistema-Contable-NEXUS-sub003/internal/audit"
	"github.com/Sebitas13/Sistema-Contable-NEXUS-sub003/internal/classify"
	"github.com/Sebitas13/Sistema-Contable-NEXUS-sub003/internal/model"
)

// Attachment points for injected figures are found by an ordered strategy:
// an existing node located by classification flag or name keywords is
// augmented or given a synthetic child; otherwise a synthetic root is
// created. Injected magnitudes are credits, so they enter negative under
// the engine sign convention.

var (
	taxKeywords     = []string{"IUE POR PAGAR", "IMPUESTO A LAS UTILIDADES", "IMPUESTOS POR PAGAR", "INCOME TAX PAYABLE"}
	reserveKeywords = []string{"RESERVA LEGAL", "LEGAL RESERVE"}
)

func injectFigures(liabilities, equity *[]*Node, inj Injection, trail *audit.Trail) {
	if !inj.NetResult.IsZero() {
		injectNetResult(equity, inj.NetResult, trail)
	}
	if !inj.Tax.IsZero() {
		injectNamed(liabilities, taxKeywords, inj.Tax, trail,
			"tax-injection", "2", "IUE por Pagar", classify.CategoryLiability)
	}
	if !inj.LegalReserve.IsZero() {
		injectNamed(equity, reserveKeywords, inj.LegalReserve, trail,
			"reserve-injection", "3", "Reserva Legal", classify.CategoryEquity)
	}
}

// injectNetResult attaches the period result beneath the accumulated
// results account when one exists, beneath the first equity root otherwise,
// or as a new equity root when the forest is empty.
func injectNetResult(equity *[]*Node, net decimal.Decimal, trail *audit.Trail) {
	result := &Node{
		Account:   model.Account{Code: "3", Name: "Resultado de la Gestión"},
		Class:     classify.Result{Category: classify.CategoryEquity, IsResult: true},
		Own:       net.Neg(),
		Synthetic: true,
	}

	if target := findAccumulated(*equity); target != nil {
		result.Account.Code = target.Code()
		result.Level = target.Level + 1
		target.Children = append(target.Children, result)
		sortNodes(target.Children)
		trail.Addf("result-injection", "attached under %s (%s)", target.Code(), target.Name())
		return
	}
	if len(*equity) > 0 {
		target := (*equity)[0]
		result.Account.Code = target.Code()
		result.Level = target.Level + 1
		target.Children = append(target.Children, result)
		sortNodes(target.Children)
		trail.Addf("result-injection", "attached under first equity root %s", target.Code())
		return
	}
	result.Level = 1
	*equity = append(*equity, result)
	trail.Addf("result-injection", "created equity root")
}

func findAccumulated(roots []*Node) *Node {
	for _, root := range roots {
		if root.Class.IsAccumulatedResult {
			return root
		}
		if found := findAccumulated(root.Children); found != nil {
			return found
		}
	}
	return nil
}

// injectNamed augments an existing named account or creates a synthetic
// root carrying the figure.
func injectNamed(forest *[]*Node, keywords []string, amount decimal.Decimal, trail *audit.Trail, rule, code, name string, cat classify.Category) {
	if target := findByKeywords(*forest, keywords); target != nil {
		target.Own = target.Own.Sub(amount)
		trail.Addf(rule, "augmented %s (%s)", target.Code(), target.Name())
		return
	}
	*forest = append(*forest, &Node{
		Account:   model.Account{Code: code, Name: name},
		Class:     classify.Result{Category: cat},
		Level:     1,
		Own:       amount.Neg(),
		Synthetic: true,
	})
	sortNodes(*forest)
	trail.Addf(rule, "created synthetic node %q", name)
}
