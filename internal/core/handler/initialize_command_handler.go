package handler

import (
	"fmt"

	"abifix/internal/cli/output"
	"abifix/internal/core"
	"abifix/internal/core/domain"
)

type InitializeCommandHandler struct {
	configRepository core.ConfigRepository
}

func ProvideInitializeCommandHandler(
	configRepository core.ConfigRepository,
) InitializeCommandHandler {
	return InitializeCommandHandler{
		configRepository: configRepository,
	}
}

func (h *InitializeCommandHandler) Handle() error {
	configExists, err := h.configRepository.ConfigExists()
	if err != nil {
		return err
	}
	if configExists {
		return fmt.Errorf("configuration file already exists at %s", h.configRepository.ConfigPath())
	}
	config := domain.CreateDefaultConfig()
	err = h.configRepository.SaveConfig(&config)
	if err != nil {
		return err
	}

	output.PrintSuccess(fmt.Sprintf("Wrote %s", h.configRepository.ConfigPath()))
	return nil
}
