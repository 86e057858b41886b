package commands

import (
	"github.com/spf13/cobra"

	"github.com/Sebitas13/Sistema-Contable-NEXUS-sub003/internal/accounts"
)

func newConvertCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <snapshot>",
		Short: "Re-encode a snapshot as canonical CSV",
		Long: `Reads any supported snapshot format and writes the canonical CSV layout
(code,name,kind,total_debit,total_credit,parent_code) to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newRunLogger()

			accts, err := loadAccounts(args[0], log)
			if err != nil {
				return err
			}
			return accounts.WriteAccounts(cmd.OutOrStdout(), accts)
		},
	}
	return cmd
}
