package scaffold

import (
	"fmt"
	"strings"

	oerrors "github.com/scaffoldkit/cli/internal/errors"
)

// ValidateProjectName rejects names that would corrupt the planned layout.
// Anything else is left to the filesystem to accept or reject.
func ValidateProjectName(name string) error {
	if name == "" {
		return oerrors.NewInvalidNameError(
			"project name cannot be empty",
			"Pass a project name as the first argument.",
		)
	}

	if name == "." || name == ".." {
		return oerrors.NewInvalidNameError(
			fmt.Sprintf("project name %q is not allowed", name),
			"Choose a name that does not refer to an existing directory entry.",
		)
	}

	if strings.ContainsAny(name, `/\`) {
		return oerrors.NewInvalidNameError(
			fmt.Sprintf("project name %q must not contain path separators", name),
			"Use --path to choose where the project is created.",
		)
	}

	return nil
}
