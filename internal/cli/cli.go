package cli

import (
	"errors"
	"log/slog"

	"github.com/specialistvlad/dawaclient/internal/app"
)

// ProgramName is the name the usage message refers to.
const ProgramName = "dawaclient"

// Usage is printed when an argument is missing.
const Usage = "Usage: " + ProgramName + " <street name> <house number>"

// UsageError reports a missing positional argument. It is raised before any
// network activity.
type UsageError struct {
	Usage string
}

// Error implements the error interface for UsageError.
func (e *UsageError) Error() string {
	return e.Usage
}

// ExitCode is the process exit code for a usage failure.
func (e *UsageError) ExitCode() int {
	return 2
}

// Parse resolves args (without the program name) into a Config. The first
// argument is the street name and the second the house number; both are
// required but their content is not checked. Extra arguments are ignored.
func Parse(args []string) (*app.Config, error) {
	slog.Debug("CLI parser started.", "arg_count", len(args))
	if len(args) < 2 {
		slog.Debug("Missing positional arguments.")
		return nil, &UsageError{Usage: Usage}
	}

	cfg := app.DefaultConfig()
	cfg.StreetName = args[0]
	cfg.HouseNumber = args[1]

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, err
	}
	slog.Debug("CLI parser finished successfully.", "street", config.StreetName, "house_number", config.HouseNumber)
	return config, nil
}

// ExitCode maps an error returned by the program to a process exit code:
// 0 for nil, the error's own code when it carries one, otherwise 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var coded interface{ ExitCode() int }
	if errors.As(err, &coded) {
		return coded.ExitCode()
	}
	return 1
}
