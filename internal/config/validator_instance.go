package config

import (
	"net/url"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	ui "github.com/valger11/suomifi-ui-components/internal/ui/components"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	itemIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	sshGitPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+:[a-zA-Z0-9._/~-]+$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("theme_name", func(fl validator.FieldLevel) bool {
			name := strings.ToLower(fl.Field().String())
			for _, known := range ui.ThemeNames() {
				if name == known {
					return true
				}
			}
			return false
		})

		_ = v.RegisterValidation("hexcolor_token", func(fl validator.FieldLevel) bool {
			return ui.IsHexColor(strings.ToLower(fl.Field().String()))
		})

		_ = v.RegisterValidation("token_key", func(fl validator.FieldLevel) bool {
			_, ok := ui.LightTheme().Token(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("item_id", func(fl validator.FieldLevel) bool {
			return itemIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("git_url", func(fl validator.FieldLevel) bool {
			urlStr := fl.Field().String()
			if urlStr == "" {
				return true // Allow empty if not required
			}
			if strings.TrimSpace(urlStr) == "" {
				return false
			}

			if parsedURL, err := url.Parse(urlStr); err == nil {
				scheme := strings.ToLower(parsedURL.Scheme)
				if (scheme == "http" || scheme == "https") && parsedURL.Host != "" {
					return true
				}
			}

			if sshGitPattern.MatchString(urlStr) {
				return true
			}

			return isValidFilePath(urlStr)
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// isValidFilePath accepts absolute paths and ./ or ../ relative paths
// without touching the filesystem.
func isValidFilePath(path string) bool {
	if path == "" || strings.Contains(path, "\x00") {
		return false
	}

	if strings.HasPrefix(path, "/") {
		return !strings.Contains(path, "/../") && !strings.HasSuffix(path, "/..")
	}

	return strings.HasPrefix(path, "./") || strings.HasPrefix(path, "../")
}
