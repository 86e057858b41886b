// Package ingest turns uploaded files into account snapshots. It is a thin
// collaborator around the codecs; no report logic lives here.
package ingest

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/Sebitas13/Sistema-Contable-NEXUS-sub003/internal/model"
)

// Parser converts one file format into accounts.
type Parser interface {
	Parse(r io.Reader) ([]model.Account, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// ForFile picks a parser by file extension.
func (r *Registry) ForFile(path string) (Parser, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	p := r.Get(ext)
	if p == nil {
		return nil, fmt.Errorf("no parser registered for %q files", ext)
	}
	return p, nil
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&CSVParser{})
	r.Register(&XLSXParser{})
	return r
}
