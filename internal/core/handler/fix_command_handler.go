package handler

import (
	"fmt"

	"abifix/internal/cli/output"
	"abifix/internal/core"
	"abifix/internal/core/domain"
)

type FixCommandHandler struct {
	configRepository core.ConfigRepository
	pathRewriter     core.PathRewriter
}

func ProvideFixCommandHandler(
	configRepository core.ConfigRepository,
	pathRewriter core.PathRewriter,
) FixCommandHandler {
	return FixCommandHandler{
		configRepository: configRepository,
		pathRewriter:     pathRewriter,
	}
}

func (h *FixCommandHandler) Handle(targetName string, overrides domain.Overrides) error {
	target, err := h.configRepository.LoadTarget(targetName)
	if err != nil {
		return err
	}

	target.ApplyOverrides(overrides)
	if err := target.Validate(); err != nil {
		return fmt.Errorf("invalid target '%s': %w", target.Name, err)
	}

	summary, err := h.pathRewriter.Rewrite(*target)
	if err != nil {
		return err
	}

	if warning := summaryWarning(target, summary); warning != "" {
		output.PrintWarning(warning)
	}
	return nil
}

// summaryWarning points at a wrong base directory or search text. It goes to stderr so
// that Done! stays the last line of the progress output.
func summaryWarning(target *domain.Target, summary domain.RewriteSummary) string {
	fixed := len(summary.FixedPaths())
	if fixed == 0 {
		return fmt.Sprintf("No target files found below %s", target.BaseDir)
	}
	if summary.Replacements() == 0 {
		return fmt.Sprintf("%q did not occur in the %d %s processed", target.Search, fixed, output.Plural(fixed, "file", "files"))
	}
	return ""
}
