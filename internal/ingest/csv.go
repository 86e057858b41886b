package ingest

import (
	"io"

	"github.com/Sebitas13/Sistema-Contable-NEXUS-sub003/internal/accounts"
	"github.com/Sebitas13/Sistema-Contable-NEXUS-sub003/internal/model"
)

// CSVParser reads the canonical snapshot CSV layout.
type CSVParser struct{}

// Format returns "csv".
func (p *CSVParser) Format() string { return "csv" }

// Parse reads accounts from a CSV stream.
func (p *CSVParser) Parse(r io.Reader) ([]model.Account, error) {
	return accounts.ReadAccounts(r)
}
