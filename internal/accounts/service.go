package accounts

import (
	"github.com/Sebitas13/Sistema-Contable-NEXUS-sub003/internal/model"
)

// Service provides in-memory lookup over an account snapshot. Duplicate
// codes are tolerated: the first occurrence wins and the rest are counted.
type Service struct {
	accounts   []model.Account
	byCode     map[string]model.Account
	duplicates int
}

// NewService creates a Service from a slice of accounts.
func NewService(accounts []model.Account) *Service {
	byCode := make(map[string]model.Account, len(accounts))
	dups := 0
	for _, a := range accounts {
		if _, seen := byCode[a.Code]; seen {
			dups++
			continue
		}
		byCode[a.Code] = a
	}
	return &Service{accounts: accounts, byCode: byCode, duplicates: dups}
}

// All returns all accounts in input order, duplicates included.
func (s *Service) All() []model.Account {
	return s.accounts
}

// Get returns the first account registered under code.
func (s *Service) Get(code string) (model.Account, bool) {
	a, ok := s.byCode[code]
	return a, ok
}

// Exists reports whether an account code exists.
func (s *Service) Exists(code string) bool {
	_, ok := s.byCode[code]
	return ok
}

// Duplicates reports how many input rows repeated an earlier code.
func (s *Service) Duplicates() int {
	return s.duplicates
}

// Codes returns every distinct code in input order.
func (s *Service) Codes() []string {
	codes := make([]string, 0, len(s.byCode))
	seen := make(map[string]bool, len(s.byCode))
	for _, a := range s.accounts {
		if !seen[a.Code] {
			seen[a.Code] = true
			codes = append(codes, a.Code)
		}
	}
	return codes
}

// ByKind returns all accounts whose declared kind equals kind.
func (s *Service) ByKind(kind string) []model.Account {
	var result []model.Account
	for _, a := range s.accounts {
		if a.Kind == kind {
			result = append(result, a)
		}
	}
	return result
}
