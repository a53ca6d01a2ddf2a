// Package commands implements the taskd CLI.
package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jrazmi/taskd/app/taskd/config"
	"github.com/jrazmi/taskd/sdk/environment"
)

// build is set at build time via ldflags.
var build = "develop"

var flagConfig string

var rootCmd = &cobra.Command{
	Use:           config.AppName,
	Short:         "In-memory task service over HTTP",
	Version:       build,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config",
		environment.GetNamespaceEnvValue(config.EnvPrefix, "CONFIG"),
		"path to a .toml or .yaml config file (env TASKD_CONFIG)")
	rootCmd.PersistentFlags().SetNormalizeFunc(underscoreToDash)

	rootCmd.AddCommand(serveCmd, configCmd)
}

// underscoreToDash lets --shutdown_timeout stand in for --shutdown-timeout.
func underscoreToDash(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
