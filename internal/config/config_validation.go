package config

import (
	"fmt"

	apperrors "github.com/valger11/suomifi-ui-components/pkg/errors"
)

// ValidateConfig performs structural and cross-field validation on an entire configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return apperrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(cfg.Demo.Items))
	for i, item := range cfg.Demo.Items {
		if first, exists := seen[item.ID]; exists {
			return apperrors.NewValidationError(fieldForItem(i, "id"), fmt.Sprintf("duplicate item id %q (first at index %d)", item.ID, first), nil)
		}
		seen[item.ID] = i
	}

	if len(cfg.Demo.Items) > 0 {
		selectable := false
		for _, item := range cfg.Demo.Items {
			if !item.Disabled {
				selectable = true
				break
			}
		}
		if !selectable {
			return apperrors.NewValidationError("demo.items", "at least one item must be enabled", nil)
		}
	}

	return nil
}

// ValidateThemeFile checks a theme document.
func ValidateThemeFile(file *ThemeFile) error {
	if file == nil {
		return apperrors.NewValidationError("theme", "theme file is nil", nil)
	}
	if err := validatorInstance().Struct(file); err != nil {
		return convertValidationError(err)
	}
	return nil
}
