package balance

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Sebitas13/Sistema-Contable-NEXUS-sub003/internal/audit"
	"github.com/Sebitas13/Sistema-Contable-NEXUS-sub003/internal/classify"
	"github.com/Sebitas13/Sistema-Contable-NEXUS-sub003/internal/model"
	"github.com/Sebitas13/Sistema-Contable-NEXUS-sub003/internal/structure"
	"github.com/Sebitas13/Sistema-Contable-NEXUS-sub003/internal/textutil"
)

var (
	// zeroTolerance drops subtrees whose total rounds to nothing.
	zeroTolerance = decimal.NewFromFloat(0.001)
	// balanceTolerance is the allowed absolute difference in the balance
	// equation before Balances flips to false.
	balanceTolerance = decimal.NewFromInt(1)
)

// Options tune the engine. The zero value defers to classifier defaults.
type Options struct {
	Classify classify.Options
}

// Build assembles the balance sheet from an account snapshot, the inferred
// structure profile, and externally computed injection figures. The input
// is never mutated; everything is built fresh per call.
func Build(accs []model.Account, prof structure.Profile, inj Injection) *Sheet {
	return BuildWith(accs, prof, inj, Options{Classify: classify.DefaultOptions()})
}

// BuildWith is Build with explicit options.
func BuildWith(accs []model.Account, prof structure.Profile, inj Injection, opts Options) *Sheet {
	if opts.Classify.PrefixCategories == nil {
		opts.Classify = classify.DefaultOptions()
	}

	sheet := &Sheet{}

	byCode := make(map[string]*Node, len(accs))
	var codes []string
	for _, acc := range accs {
		if _, dup := byCode[acc.Code]; dup {
			sheet.Trail.Addf("duplicate-code", "ignored duplicate of %s", acc.Code)
			continue
		}
		n := &Node{
			Account: acc,
			Class:   classify.ClassifyWith(acc, opts.Classify),
			Level:   prof.Level(acc.Code),
			Own:     acc.SignedBalance(),
		}
		byCode[acc.Code] = n
		codes = append(codes, acc.Code)
	}
	sort.Strings(codes)

	overrides := linkRegulators(byCode, codes, &sheet.Trail)
	parentOf := resolveParents(byCode, codes, prof, overrides)
	breakCycles(parentOf, codes, &sheet.Trail)

	roots := attach(byCode, codes, parentOf)

	for _, root := range roots {
		decomposeGross(root)
	}

	assets, liabilities, equity := partition(roots)
	injectFigures(&liabilities, &equity, inj, &sheet.Trail)

	for _, forest := range [][]*Node{assets, liabilities, equity} {
		for _, root := range forest {
			computeTotals(root)
		}
	}

	sheet.Assets = filterZero(assets)
	sheet.Liabilities = filterZero(liabilities)
	sheet.Equity = filterZero(equity)

	sheet.AssetTotal = forestTotal(sheet.Assets)
	sheet.LiabilityTotal = forestTotal(sheet.Liabilities)
	sheet.EquityTotal = forestTotal(sheet.Equity)
	sheet.Difference = sheet.AssetTotal.Add(sheet.LiabilityTotal).Add(sheet.EquityTotal)
	sheet.Balances = sheet.Difference.Abs().LessThan(balanceTolerance)

	return sheet
}

// linkRegulators rewrites each contra-account's parent to the asset it
// regulates, found by staged name matching on the cleaned regulator name.
func linkRegulators(byCode map[string]*Node, codes []string, trail *audit.Trail) map[string]string {
	var hosts []*Node
	for _, code := range codes {
		n := byCode[code]
		if n.Class.Category == classify.CategoryAsset && !n.Class.IsContra {
			hosts = append(hosts, n)
		}
	}
	if len(hosts) == 0 {
		return nil
	}
	resolver := newNameResolver(hosts)

	overrides := make(map[string]string)
	for _, code := range codes {
		n := byCode[code]
		if !n.Class.IsContra {
			continue
		}
		cleaned := cleanContraName(textutil.Fold(n.Name()))
		host, res := resolver.resolve(cleaned)
		if res == ResolutionNone || host.Code() == code {
			continue
		}
		overrides[code] = host.Code()
		trail.Addf("regulator-link", "%s -> %s (%s)", code, host.Code(), res)
	}
	return overrides
}

// resolveParents picks each node's parent: regulator override first, then
// the hierarchy-inferred parent, then the declared parent link. A parent
// that is unknown or self-referential leaves the node a root.
func resolveParents(byCode map[string]*Node, codes []string, prof structure.Profile, overrides map[string]string) map[string]string {
	parentOf := make(map[string]string)
	for _, code := range codes {
		if host, ok := overrides[code]; ok {
			parentOf[code] = host
			continue
		}
		if parent, ok := prof.Parent(code); ok && parent != code {
			if _, known := byCode[parent]; known {
				parentOf[code] = parent
				continue
			}
		}
		declared := byCode[code].Account.ParentCode
		if declared != "" && declared != code {
			if _, known := byCode[declared]; known {
				parentOf[code] = declared
			}
		}
	}
	return parentOf
}

// breakCycles promotes one node per parent cycle to root so the tree walk
// terminates. State: 0 unvisited, 1 on current chain, 2 settled.
func breakCycles(parentOf map[string]string, codes []string, trail *audit.Trail) {
	state := make(map[string]int, len(codes))
	for _, code := range codes {
		if state[code] != 0 {
			continue
		}
		var chain []string
		cur := code
		for {
			if state[cur] == 1 {
				delete(parentOf, cur)
				trail.Addf("cycle-break", "promoted %s to root", cur)
				break
			}
			if state[cur] == 2 {
				break
			}
			state[cur] = 1
			chain = append(chain, cur)
			next, ok := parentOf[cur]
			if !ok {
				break
			}
			cur = next
		}
		for _, c := range chain {
			state[c] = 2
		}
	}
}

// attach builds the forests, children sorted by code at every level.
func attach(byCode map[string]*Node, codes []string, parentOf map[string]string) []*Node {
	var roots []*Node
	for _, code := range codes {
		n := byCode[code]
		if parent, ok := parentOf[code]; ok {
			p := byCode[parent]
			p.Children = append(p.Children, n)
			continue
		}
		roots = append(roots, n)
	}
	sortNodes(roots)
	return roots
}

// decomposeGross moves the own balance of any internal node into a
// synthetic "(valor bruto)" leaf so netting by children (regulators) stays
// visible next to the original figure.
func decomposeGross(n *Node) {
	if !n.Own.IsZero() && len(n.Children) > 0 {
		gross := &Node{
			Account: model.Account{
				Code: n.Account.Code,
				Name: n.Account.Name + " (valor bruto)",
			},
			Class:     n.Class,
			Level:     n.Level + 1,
			Own:       n.Own,
			Synthetic: true,
			Gross:     true,
		}
		n.Own = decimal.Zero
		n.Children = append([]*Node{gross}, n.Children...)
	}
	for _, c := range n.Children {
		decomposeGross(c)
	}
	sortNodes(n.Children)
}

// computeTotals rolls balances up depth-first.
func computeTotals(n *Node) decimal.Decimal {
	total := n.Own
	for _, c := range n.Children {
		total = total.Add(computeTotals(c))
	}
	n.Total = total
	return total
}

// filterZero drops subtrees that net to nothing and carry no non-trivial
// descendants. Synthetic nodes always survive.
func filterZero(nodes []*Node) []*Node {
	var kept []*Node
	for _, n := range nodes {
		n.Children = filterZero(n.Children)
		if n.Synthetic || len(n.Children) > 0 || n.Total.Abs().GreaterThan(zeroTolerance) {
			kept = append(kept, n)
		}
	}
	return kept
}

// partition splits roots into the three balance-sheet forests. Off-balance,
// income/expense, and unknown roots are excluded; their effect reaches the
// sheet through the injected net result.
func partition(roots []*Node) (assets, liabilities, equity []*Node) {
	for _, root := range roots {
		if root.Class.IsOffBalance {
			continue
		}
		switch root.Class.Category {
		case classify.CategoryAsset:
			assets = append(assets, root)
		case classify.CategoryLiability:
			liabilities = append(liabilities, root)
		case classify.CategoryEquity:
			equity = append(equity, root)
		}
	}
	return assets, liabilities, equity
}

func forestTotal(nodes []*Node) decimal.Decimal {
	total := decimal.Zero
	for _, n := range nodes {
		total = total.Add(n.Total)
	}
	return total
}
