package cmd

import (
	"abifix/cmd/cli/app"
	"abifix/internal/core/domain"

	"github.com/spf13/cobra"
)

var fixFlags struct {
	target  string
	abiDirs []string
	files   []string
	search  string
	replace string
}

func init() {
	fixCmd.Flags().StringVarP(&fixFlags.target, "target", "t", DefaultTarget, "Target from the configuration file")
	fixCmd.Flags().StringSliceVar(&fixFlags.abiDirs, "abi", nil, "ABI directory to process (repeatable)")
	fixCmd.Flags().StringSliceVar(&fixFlags.files, "file", nil, "File name to rewrite in each ABI directory (repeatable)")
	fixCmd.Flags().StringVar(&fixFlags.search, "search", "", "Text to replace")
	fixCmd.Flags().StringVar(&fixFlags.replace, "replace", "", "Replacement text")
	_ = fixCmd.RegisterFlagCompletionFunc("target", TargetCompletion)
	rootCmd.AddCommand(fixCmd)
}

var fixCmd = &cobra.Command{
	Use:   "fix [base-dir]",
	Short: "Rewrites the SDK path in every ABI's CMake files",
	Long: `Replaces the search text with the replacement text in each configured file
of each ABI directory below base-dir. The base directory defaults to the
target's baseDir setting.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return TargetFlagValidator(fixFlags.target)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectFixCommandHandler(currentConfigPath())
		if err != nil {
			return err
		}

		return handler.Handle(fixFlags.target, fixOverrides(cmd, args))
	},
}

func fixOverrides(cmd *cobra.Command, args []string) domain.Overrides {
	overrides := domain.Overrides{
		AbiDirs: fixFlags.abiDirs,
		Files:   fixFlags.files,
		Search:  fixFlags.search,
	}
	if len(args) > 0 {
		overrides.BaseDir = args[0]
	}
	if cmd.Flags().Changed("replace") {
		replace := fixFlags.replace
		overrides.Replace = &replace
	}
	return overrides
}
