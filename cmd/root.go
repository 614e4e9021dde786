package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	CommitSHA = "none"
	BuildDate = "unknown"
)

const DEFAULT_CONFIG_PATH = "config.toml"

func NewRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "venues-server",
		Short:         "Sports venue listing service: filter, sort and book venues",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", DEFAULT_CONFIG_PATH, "path to the TOML config file")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newServeCmd(&configPath))
	root.AddCommand(newQueryCmd(&configPath))
	root.AddCommand(newChartCmd(&configPath))

	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
