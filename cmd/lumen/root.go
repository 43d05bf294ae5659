package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath  string
	catalogPath string
	logFile     string
	verbose     bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "lumen",
		Short:         "Lumen browses an image gallery catalog in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// If no subcommand is provided, launch the browser
			if len(args) == 0 {
				return runBrowse(cmd, flags)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to config file (default ~/.lumen/config.yaml)")
	cmd.PersistentFlags().StringVar(&flags.catalogPath, "catalog", "", "Catalog YAML to load instead of the configured one")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write browser logs to this file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newBrowseCmd(flags))
	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
