package commands

import (
	"github.com/spf13/cobra"
)

func newProfileCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "profile <snapshot>",
		Short: "Infer the numbering scheme of an account snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newRunLogger()

			cfg, err := loadConfig(configPath, log)
			if err != nil {
				return err
			}
			accts, err := loadAccounts(args[0], log)
			if err != nil {
				return err
			}

			prof := buildProfile(cfg, accts, log)
			return writeJSON(cmd.OutOrStdout(), newProfileView(prof))
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to nexus.yaml")
	return cmd
}
