package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Sebitas13/Sistema-Contable-NEXUS-sub003/internal/accounts"
	"github.com/Sebitas13/Sistema-Contable-NEXUS-sub003/internal/config"
	"github.com/Sebitas13/Sistema-Contable-NEXUS-sub003/internal/ingest"
	"github.com/Sebitas13/Sistema-Contable-NEXUS-sub003/internal/model"
	"github.com/Sebitas13/Sistema-Contable-NEXUS-sub003/internal/structure"
)

// newRunLogger builds the CLI logger. Every invocation carries a run ID so
// lines from concurrent runs can be told apart.
func newRunLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: false})
	return logger.WithFields(logrus.Fields{
		"run_id": uuid.NewString(),
	})
}

// loadConfig reads the config file when given, falling back to defaults.
func loadConfig(path string, log *logrus.Entry) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	log.WithField("config", path).Info("loaded configuration")
	return cfg, nil
}

// loadAccounts parses and validates the snapshot file.
func loadAccounts(path string, log *logrus.Entry) ([]model.Account, error) {
	parser, err := ingest.DefaultRegistry().ForFile(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot: %w", err)
	}
	defer f.Close()

	accts, err := parser.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}

	if verrs := accounts.ValidateAccounts(accts); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return nil, fmt.Errorf("invalid snapshot: %s", strings.Join(msgs, "; "))
	}

	svc := accounts.NewService(accts)
	if dups := svc.Duplicates(); dups > 0 {
		log.WithField("duplicates", dups).
			Warn("snapshot repeats account codes; first occurrence wins")
	}

	log.WithFields(logrus.Fields{
		"file":     path,
		"format":   parser.Format(),
		"accounts": len(accts),
	}).Info("loaded account snapshot")
	return svc.All(), nil
}

// buildProfile uses the declared scheme when the config pins one and infers
// from the data otherwise.
func buildProfile(cfg *config.Config, accts []model.Account, log *logrus.Entry) structure.Profile {
	if declared, ok := cfg.Structure.ResolverConfig(); ok {
		log.Info("using declared numbering scheme")
		return structure.DeclaredProfile(declared)
	}

	codes := make([]string, len(accts))
	for i, a := range accts {
		codes[i] = a.Code
	}
	prof := structure.InferWithPolicy(codes, cfg.Structure.ModifierPolicy())
	log.WithFields(logrus.Fields{
		"separator": prof.Config.Separator,
		"levels":    prof.Config.LevelCount,
		"mask":      prof.Mask,
	}).Info("inferred numbering scheme")
	return prof
}

// writeJSON renders v to w with stable indentation.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
