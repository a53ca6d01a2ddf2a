package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jrazmi/taskd/app/taskd/config"
	"github.com/jrazmi/taskd/sdk/environment"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as TOML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		return environment.EncodeTOML(cmd.OutOrStdout(), cfg)
	},
}
