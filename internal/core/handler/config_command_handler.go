package handler

import (
	"fmt"

	"abifix/internal/core"

	"gopkg.in/yaml.v3"
)

type ConfigCommandHandler struct {
	configRepository core.ConfigRepository
}

func ProvideConfigCommandHandler(
	configRepository core.ConfigRepository,
) ConfigCommandHandler {
	return ConfigCommandHandler{
		configRepository: configRepository,
	}
}

func (h *ConfigCommandHandler) HandleList() error {
	config, err := h.configRepository.LoadConfig()
	if err != nil {
		return err
	}
	for _, target := range config.Targets {
		fmt.Println(target.Name)
	}
	return nil
}

// HandlePrint prints the target exactly as fix would use it, environment overrides included.
func (h *ConfigCommandHandler) HandlePrint(targetName string) error {
	target, err := h.configRepository.LoadTarget(targetName)
	if err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return fmt.Errorf("invalid target '%s': %w", target.Name, err)
	}
	data, err := yaml.Marshal(target)
	if err != nil {
		return fmt.Errorf("failed to marshal target: %w", err)
	}
	fmt.Print(string(data))
	return nil
}
