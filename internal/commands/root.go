package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sebitas13/Sistema-Contable-NEXUS-sub003/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "nexus",
		Short:   "Chart-of-accounts structure inference and financial reports",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newProfileCommand())
	rootCmd.AddCommand(newBalanceCommand())
	rootCmd.AddCommand(newIncomeCommand())
	rootCmd.AddCommand(newConvertCommand())

	return rootCmd
}
