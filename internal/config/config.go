package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Sebitas13/Sistema-Contable-NEXUS-sub003/internal/structure"
)

// Config represents the top-level nexus.yaml configuration.
type Config struct {
	Structure StructureConfig `yaml:"structure"`
	Report    ReportConfig    `yaml:"report"`
}

// StructureConfig optionally pins a known numbering scheme (ASFI, PUCT)
// instead of inferring it from the data. Empty means "infer".
type StructureConfig struct {
	Declared     bool   `yaml:"declared"`
	Separator    string `yaml:"separator,omitempty"`
	LevelLengths []int  `yaml:"level_lengths,omitempty"`
	SmartPUCT    bool   `yaml:"smart_puct,omitempty"`
	SmartFlat    bool   `yaml:"smart_flat,omitempty"`

	// SkipSingleCharModifiers controls the deep-plan heuristic that
	// treats one-character segments as non-hierarchical markers.
	SkipSingleCharModifiers *bool `yaml:"skip_single_char_modifiers,omitempty"`
}

// ReportConfig controls the report engines.
type ReportConfig struct {
	ApplyLegalReserve bool    `yaml:"apply_legal_reserve"`
	TaxRate           float64 `yaml:"tax_rate"`
	ReserveRate       float64 `yaml:"reserve_rate"`
}

// Load reads a nexus.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with the statutory defaults.
func Default() *Config {
	return &Config{
		Report: ReportConfig{
			ApplyLegalReserve: true,
			TaxRate:           0.25,
			ReserveRate:       0.05,
		},
	}
}

// ModifierPolicy resolves the configured modifier policy, defaulting to
// skipping single-character segments.
func (s StructureConfig) ModifierPolicy() structure.ModifierPolicy {
	policy := structure.DefaultModifierPolicy()
	if s.SkipSingleCharModifiers != nil {
		policy.SkipSingleChar = *s.SkipSingleCharModifiers
	}
	return policy
}

// ResolverConfig converts a declared scheme into a resolver config. The
// second return is false when nothing is declared and the caller should
// infer the structure from the data.
func (s StructureConfig) ResolverConfig() (structure.Config, bool) {
	if !s.Declared {
		return structure.Config{}, false
	}
	cfg := structure.Config{
		Separator:        s.Separator,
		HasSeparator:     s.Separator != "",
		DeepFirstSegment: s.Separator != "",
		LevelLengths:     s.LevelLengths,
		LevelCount:       len(s.LevelLengths),
		SmartPUCT:        s.SmartPUCT,
		SmartFlat:        s.SmartFlat,
		Policy:           s.ModifierPolicy(),
	}
	return cfg, true
}
