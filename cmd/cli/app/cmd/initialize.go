package cmd

import (
	"abifix/cmd/cli/app"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initializeCmd)
}

var initializeCmd = &cobra.Command{
	Use:   "initialize",
	Short: "Generates a new configuration file with sample values",
	Long:  `A new configuration file is written to ~/.abifix.yaml, or to the path given with --config. It contains the default target with every option filled in. The file is not created if it already exists.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectInitializeCommandHandler(currentConfigPath())
		if err != nil {
			return err
		}

		return handler.Handle()
	},
}
