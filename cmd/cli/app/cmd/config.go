package cmd

import (
	"abifix/cmd/cli/app"

	"github.com/spf13/cobra"
)

var configPrintTarget string

func init() {
	configPrintCmd.Flags().StringVarP(&configPrintTarget, "target", "t", DefaultTarget, "Target to print")
	_ = configPrintCmd.RegisterFlagCompletionFunc("target", TargetCompletion)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configPrintCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspects the configuration",
	Long:  `Commands for viewing the configured rewrite targets`,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists the available targets",
	Long:  `Reads the available targets from the configuration file and prints them to stdout`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectConfigCommandHandler(currentConfigPath())
		if err != nil {
			return err
		}

		return handler.HandleList()
	},
}

var configPrintCmd = &cobra.Command{
	Use:   "print",
	Short: "Prints a target",
	Long:  `Prints the target as yaml to stdout, with ABIFIX_* environment overrides applied`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectConfigCommandHandler(currentConfigPath())
		if err != nil {
			return err
		}

		return handler.HandlePrint(configPrintTarget)
	},
}
