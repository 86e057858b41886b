package model

import "github.com/shopspring/decimal"

// Account is one row of a chart of accounts as delivered by the ingestion
// layer. Code is required; duplicates are tolerated and resolved downstream.
// Kind is a free-text classification hint ("activo", "pasivo", "regulador",
// "orden", ...) that may be empty or unreliable.
type Account struct {
	Code       string
	Name       string
	Kind       string
	Debit      decimal.Decimal
	Credit     decimal.Decimal
	ParentCode string // explicit parent link, usually empty
}

// SignedBalance returns debit minus credit. Positive means a debit
// balance (asset/expense side), negative a credit balance.
func (a Account) SignedBalance() decimal.Decimal {
	return a.Debit.Sub(a.Credit)
}
