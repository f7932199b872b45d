package templates

import (
	"fmt"
	"unicode"

	oerrors "github.com/uskit/cli/internal/errors"
)

// ValidateModuleName checks if a module name is valid. Names must start
// with a letter and contain only letters, digits, hyphens, and underscores,
// which keeps every derived casing variant filesystem-safe.
func ValidateModuleName(name string) error {
	if name == "" {
		return oerrors.NewValidationError("module name cannot be empty", "", "")
	}

	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' {
			return oerrors.NewValidationError(
				fmt.Sprintf("invalid module name %q: contains invalid character %q", name, r),
				"",
				"Module names may contain letters, digits, '-' and '_'.",
			)
		}
	}

	if !unicode.IsLetter(rune(name[0])) {
		return oerrors.NewValidationError(
			fmt.Sprintf("invalid module name %q: must start with a letter", name),
			"", "",
		)
	}

	return nil
}
