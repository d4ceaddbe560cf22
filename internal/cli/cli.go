package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/arsalion01/blueprintgo/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("blueprintgo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
BlueprintGo - A requirements-to-workflow automation blueprint compiler.

Usage:
  blueprintgo [options] [REQUIREMENTS_PATH]

Arguments:
  REQUIREMENTS_PATH
    Path to a single .hcl requirements file or a directory containing them.

Options:
`)
		flagSet.PrintDefaults()
	}

	reqFlag := flagSet.String("requirements", "", "Path to the requirements file or directory.")
	rFlag := flagSet.String("r", "", "Path to the requirements file or directory (shorthand).")
	templatesFlag := flagSet.String("templates", "templates", "Path to the template library directory.")
	outputFlag := flagSet.String("output", "out", "Directory for the blueprint and graph JSON files.")
	securityFlag := flagSet.String("security-level", "standard", "Validation strictness. Options: 'basic', 'standard', or 'strict'.")
	errorHandlingFlag := flagSet.Bool("error-handling", true, "Include the error-handler side path in the main graph.")
	deployURLFlag := flagSet.String("deploy-url", "", "Engine socket.io URL to deploy compiled graphs to. Empty disables deployment.")
	deployNamespaceFlag := flagSet.String("deploy-namespace", "/", "Engine socket.io namespace.")
	deployTimeoutFlag := flagSet.Duration("deploy-timeout", 10*time.Second, "Timeout for each graph deployment.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *reqFlag != "" {
		path = *reqFlag
	} else if *rFlag != "" {
		path = *rFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Requirements path determined.", "path", path)

	if path == "" {
		slog.Debug("No requirements path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		RequirementsPath: path,
		TemplatesPath:    *templatesFlag,
		OutputPath:       *outputFlag,
		SecurityLevel:    strings.ToLower(*securityFlag),
		ErrorHandling:    *errorHandlingFlag,
		DeployURL:        *deployURLFlag,
		DeployNamespace:  *deployNamespaceFlag,
		DeployTimeout:    *deployTimeoutFlag,
		LogFormat:        logFormat,
		LogLevel:         logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
