package config

import (
	"github.com/asnowfix/switchbot-id/switchbot/options"
	"github.com/spf13/cobra"
)

var Cmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration, credentials masked",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := options.Config(cmd.Context())
		if err != nil {
			return err
		}
		return options.PrintResult(cmd.OutOrStdout(), cfg.Redacted())
	},
}
