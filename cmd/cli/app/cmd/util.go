package cmd

import (
	"fmt"

	"abifix/cmd/cli/app"
	"abifix/internal/core"

	"github.com/spf13/cobra"
)

const DefaultTarget = "default"

func currentConfigPath() core.ConfigPath {
	if configPath == nil {
		return ""
	}
	return core.ConfigPath(*configPath)
}

func TargetCompletion(
	cmd *cobra.Command,
	args []string,
	toComplete string,
) ([]cobra.Completion, cobra.ShellCompDirective) {
	configRepo, err := app.InjectConfigRepo(currentConfigPath())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	config, err := configRepo.LoadConfig()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	return config.TargetNames(), cobra.ShellCompDirectiveNoFileComp
}

func TargetFlagValidator(target string) error {
	configRepo, err := app.InjectConfigRepo(currentConfigPath())
	if err != nil {
		return fmt.Errorf("error injecting config repo: %v", err)
	}
	config, err := configRepo.LoadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %v", err)
	}
	if !config.TargetExists(target) {
		return fmt.Errorf("target '%s' not found", target)
	}
	return nil
}
