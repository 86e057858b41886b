// Package balance builds the balance-sheet tree: it links accounts into a
// hierarchy using the inferred structure, nets regulators against their
// hosts, rolls totals up depth-first, and injects externally computed
// result, tax, and reserve figures as synthetic nodes.
//
// Sign convention: debit balances are positive, so assets aggregate
// positive and liabilities/equity aggregate negative. The balance equation
// holds when the three section totals sum to (nearly) zero.
package balance

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Sebitas13/Sistema-Contable-NEXUS-sub003/internal/audit"
	"github.com/Sebitas13/Sistema-Contable-NEXUS-sub003/internal/classify"
	"github.com/Sebitas13/Sistema-Contable-NEXUS-sub003/internal/model"
)

// Node is one account in the balance-sheet tree. Children are owned
// exclusively by their parent and sorted by code.
type Node struct {
	Account  model.Account
	Class    classify.Result
	Level    int
	Children []*Node

	// Own is the node's own signed balance; Total adds all descendant
	// totals.
	Own   decimal.Decimal
	Total decimal.Decimal

	// Synthetic marks computed nodes (injected result, tax, reserve,
	// gross-value splits) that never came from source data. Gross marks
	// the decomposed pre-netting value of a parent with children.
	Synthetic bool
	Gross     bool
}

// Code is a shorthand for the underlying account code.
func (n *Node) Code() string { return n.Account.Code }

// Name is a shorthand for the underlying account name.
func (n *Node) Name() string { return n.Account.Name }

func sortNodes(nodes []*Node) {
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].Account.Code < nodes[j].Account.Code
	})
}

// Injection carries the externally computed figures the caller wants
// surfaced on the balance sheet. All three are magnitudes: a positive
// NetResult is a profit.
type Injection struct {
	NetResult    decimal.Decimal
	Tax          decimal.Decimal
	LegalReserve decimal.Decimal
}

// Sheet is the finished balance sheet: three forests plus section totals
// and the balance-equation flag.
type Sheet struct {
	Assets      []*Node
	Liabilities []*Node
	Equity      []*Node

	AssetTotal     decimal.Decimal
	LiabilityTotal decimal.Decimal
	EquityTotal    decimal.Decimal

	// Difference is assets + liabilities + equity under the engine sign
	// convention; Balances is true when it stays inside the tolerance.
	Difference decimal.Decimal
	Balances   bool

	Trail audit.Trail
}
