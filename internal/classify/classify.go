// Package classify labels accounts with semantic flags from declared type
// hints, code prefixes, and name keywords. Classification is pure and
// total: missing fields default to empty strings and every account ends up
// with exactly one primary category, possibly CategoryUnknown.
package classify

import (
	"strings"

	"github.com/Sebitas13/Sistema-Contable-NEXUS-sub003/internal/model"
	"github.com/Sebitas13/Sistema-Contable-NEXUS-sub003/internal/textutil"
)

// Category is the primary account category. Exactly one applies per
// account.
type Category string

const (
	CategoryAsset     Category = "asset"
	CategoryLiability Category = "liability"
	CategoryEquity    Category = "equity"
	CategoryIncome    Category = "income"
	CategoryExpense   Category = "expense"
	CategoryUnknown   Category = "unknown"
)

// Result carries the primary category plus independent flags that may
// co-occur with it.
type Result struct {
	Category Category

	// IsContra marks regulator accounts (accumulated depreciation,
	// amortization, impairment provisions) that net against a host.
	IsContra bool
	// IsOffBalance marks memorandum ("orden") accounts excluded from
	// both statements.
	IsOffBalance bool
	// IsResult marks result-bearing accounts whose side depends on the
	// balance sign.
	IsResult bool
	// IsVariable marks accounts (exchange difference, inflation
	// adjustment, period result) classified by balance sign rather than
	// by keyword or type.
	IsVariable bool
	// IsAccumulatedResult marks retained-earnings style accounts used
	// for loss compensation and result injection.
	IsAccumulatedResult bool
}

// BalanceSheetSide reports whether the primary category belongs on the
// balance sheet.
func (r Result) BalanceSheetSide() bool {
	switch r.Category {
	case CategoryAsset, CategoryLiability, CategoryEquity:
		return true
	}
	return false
}

// Options tune the classifier. The zero value is not useful; start from
// DefaultOptions.
type Options struct {
	// PrefixCategories maps the first digit of a code to a category.
	PrefixCategories map[byte]Category
}

// DefaultOptions uses the conventional 1=asset 2=liability 3=equity
// 4=income 5=cost 6=expense prefix mapping.
func DefaultOptions() Options {
	return Options{
		PrefixCategories: map[byte]Category{
			'1': CategoryAsset,
			'2': CategoryLiability,
			'3': CategoryEquity,
			'4': CategoryIncome,
			'5': CategoryExpense,
			'6': CategoryExpense,
		},
	}
}

// Classify labels acc using DefaultOptions.
func Classify(acc model.Account) Result {
	return ClassifyWith(acc, DefaultOptions())
}

// ClassifyWith labels acc. Flag rules run first, then the primary category
// is decided by the first matching rule in categoryRules; variable and
// result accounts resolve income/expense by the sign of the balance.
func ClassifyWith(acc model.Account, opts Options) Result {
	name := textutil.Fold(acc.Name)
	kind := textutil.Fold(acc.Kind)

	res := Result{Category: CategoryUnknown}

	res.IsContra = textutil.ContainsAny(name, contraKeywords) || strings.Contains(kind, "REGUL")
	res.IsOffBalance = strings.Contains(kind, "ORDEN")
	res.IsResult = strings.Contains(kind, "RESULTA")
	res.IsVariable = textutil.ContainsAny(name, variableKeywords)
	res.IsAccumulatedResult = textutil.ContainsAny(name, accumulatedKeywords)

	// Variable accounts are categorized by sign: a debit balance sits on
	// the expense side, a credit balance on the income side. This
	// overrides prefix and type for this category only.
	if res.IsVariable {
		res.Category = sideBySign(acc)
		return res
	}

	for _, rule := range categoryRules {
		if cat, ok := rule.match(acc, name, kind, opts); ok {
			res.Category = cat
			break
		}
	}

	// A result account with an ambiguous balance-sheet category resolves
	// to income or expense by sign.
	if res.IsResult && (res.Category == CategoryUnknown || res.Category == CategoryEquity) {
		res.Category = sideBySign(acc)
	}

	return res
}

func sideBySign(acc model.Account) Category {
	if acc.SignedBalance().Sign() < 0 {
		return CategoryIncome
	}
	return CategoryExpense
}

// categoryRule is one step of the primary-category decision. Rules are
// evaluated in order; the first match wins.
type categoryRule struct {
	name  string
	match func(acc model.Account, name, kind string, opts Options) (Category, bool)
}

var categoryRules = []categoryRule{
	{name: "code-prefix", match: matchPrefix},
	{name: "declared-type", match: matchKind},
	{name: "name-keyword", match: matchNameKeyword},
}

func matchPrefix(acc model.Account, _, _ string, opts Options) (Category, bool) {
	code := strings.TrimSpace(acc.Code)
	if code == "" {
		return CategoryUnknown, false
	}
	cat, ok := opts.PrefixCategories[code[0]]
	return cat, ok
}

func matchKind(_ model.Account, _, kind string, _ Options) (Category, bool) {
	if kind == "" {
		return CategoryUnknown, false
	}
	for _, kt := range kindTerms {
		if strings.Contains(kind, kt.term) {
			return kt.category, true
		}
	}
	return CategoryUnknown, false
}

func matchNameKeyword(_ model.Account, name, _ string, _ Options) (Category, bool) {
	if name == "" {
		return CategoryUnknown, false
	}
	for _, kt := range nameTerms {
		if strings.Contains(name, kt.term) {
			return kt.category, true
		}
	}
	return CategoryUnknown, false
}
