package cmd

import (
	"os"

	"abifix/internal/cli/output"

	"github.com/spf13/cobra"
)

var configPath *string

var rootCmd = &cobra.Command{
	Use:   "abifix",
	Short: "Repairs path references in repackaged native SDK CMake files",
	Long: `abifix rewrites the CMake package files of a repackaged native SDK
(OpenCV for Android) so that they stop pointing into the old sdk/ layout.

For every ABI directory under the base directory it replaces "/sdk/native/"
with "/native/" in OpenCVConfig.cmake and OpenCVModules-release.cmake.
Missing directories and files are skipped.

Settings come from built-in defaults, ~/.abifix.yaml, ABIFIX_* environment
variables and command line flags, in that order. Run 'abifix initialize' to
write a sample configuration file.

Common workflows:
  abifix fix                       Fix ./OpenCV/native/jni
  abifix fix path/to/native/jni    Fix another base directory
  abifix fix --abi abi-x86         Only fix one ABI
  abifix config print              Show the settings fix would use`,
	SilenceErrors: true,
}

func Execute() {
	configPath = rootCmd.PersistentFlags().StringP("config", "c", "", "Configuration file (default ~/.abifix.yaml)")
	if err := rootCmd.Execute(); err != nil {
		output.PrintError(err.Error())
		os.Exit(1)
	}
}
