package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/valger11/suomifi-ui-components/pkg/errors"
)

// convertValidationError turns validator output into a ValidationError
// naming the first offending field.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return apperrors.NewValidationError(field, msg, err)
	}

	return apperrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName lowercases the struct namespace and drops the root type,
// so Config.Demo.Items[0].ID reads demo.items[0].id.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}

func fieldForItem(index int, field string) string {
	return fmt.Sprintf("demo.items[%d].%s", index, field)
}
