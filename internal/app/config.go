package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/arsalion01/blueprintgo/internal/compile"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	RequirementsPath string // hcl requirement files
	TemplatesPath    string // hcl template library
	OutputPath       string // where blueprint and graph JSON land

	SecurityLevel string
	ErrorHandling bool

	DeployURL       string // empty disables deployment
	DeployNamespace string
	DeployTimeout   time.Duration

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.RequirementsPath == "" {
		return nil, errors.New("RequirementsPath is a required configuration field and cannot be empty")
	}

	switch cfg.SecurityLevel {
	case "", compile.SecurityBasic, compile.SecurityStandard, compile.SecurityStrict:
		// valid
	default:
		return nil, fmt.Errorf("invalid security level %q: must be 'basic', 'standard', or 'strict'", cfg.SecurityLevel)
	}

	if cfg.OutputPath == "" {
		cfg.OutputPath = "out"
	}
	if cfg.DeployTimeout <= 0 {
		cfg.DeployTimeout = 10 * time.Second
	}

	return &cfg, nil
}
