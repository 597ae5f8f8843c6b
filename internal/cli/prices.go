package cli

import (
	"github.com/segyhp/islamicfin-engine/internal/app"

	"github.com/spf13/cobra"
)

func newPricesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prices",
		Short: "Print gold and silver prices per gram",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, zl, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			redisClient := app.NewRedis(cfg)
			if redisClient != nil {
				defer redisClient.Close()
			}
			prices := app.NewPriceService(cfg, app.NewPriceCache(redisClient), zl)

			if rate, _ := cmd.Flags().GetBool("exchange-rate"); rate {
				result, err := prices.ExchangeRate(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), result)
			}

			result, err := prices.MetalPrices(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().Bool("exchange-rate", false, "Print the USD exchange rate instead")
	return cmd
}
