package commands

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Sebitas13/Sistema-Contable-NEXUS-sub003/internal/balance"
	"github.com/Sebitas13/Sistema-Contable-NEXUS-sub003/internal/config"
	"github.com/Sebitas13/Sistema-Contable-NEXUS-sub003/internal/income"
)

func newBalanceCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "balance <snapshot>",
		Short: "Build the balance sheet from an account snapshot",
		Long: `Builds the balance sheet. The income statement is computed first and its
net result, tax, and legal reserve are injected as synthetic nodes; the two
engines stay decoupled and are composed here.`,
		Args: cobra.ExactArgs(1),
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
			st := income.Build(accts, incomeOptions(cfg))

			// The reserve is injected as its own node, so the period
			// result carries the post-reserve figure; together they sum
			// to net income.
			sheet := balance.Build(accts, prof, balance.Injection{
				NetResult:    st.Totals.NetLiquidIncome,
				Tax:          st.Totals.Tax,
				LegalReserve: st.Totals.LegalReserve,
			})

			if !sheet.Balances {
				log.WithField("difference", sheet.Difference.String()).
					Warn("balance sheet does not balance")
			}
			return writeJSON(cmd.OutOrStdout(), balanceView(sheet))
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to nexus.yaml")
	return cmd
}

func newIncomeCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "income <snapshot>",
		Short: "Build the income statement from an account snapshot",
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

			st := income.Build(accts, incomeOptions(cfg))
			return writeJSON(cmd.OutOrStdout(), incomeView(st))
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to nexus.yaml")
	return cmd
}

func incomeOptions(cfg *config.Config) income.Options {
	return income.Options{
		ApplyLegalReserve: cfg.Report.ApplyLegalReserve,
		TaxRate:           decimal.NewFromFloat(cfg.Report.TaxRate),
		ReserveRate:       decimal.NewFromFloat(cfg.Report.ReserveRate),
	}
}
