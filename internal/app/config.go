package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Commands the app can run.
const (
	CommandGenerate = "generate"
	CommandInit     = "init"
)

// DefaultSpecPath is the specification file used when none is given.
const DefaultSpecPath = "FrameworkSpec.hcl"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Command  string `validate:"required,oneof=generate init"`
	SpecPath string `validate:"required"`

	// OutputPath is where the project description goes. Empty means
	// "<Root>/<project name>.xcodeproj/project.yaml".
	OutputPath string
	// Root is the directory globs are expanded in. Empty means the directory
	// holding the specification.
	Root string

	LogFormat   string `validate:"omitempty,oneof=text json"`
	LogLevel    string `validate:"omitempty,oneof=debug info warn error"`
	WorkerCount int    `validate:"gte=0"`
	StrictOrder bool
	PrintTree   bool

	// Force lets init overwrite an existing specification.
	Force bool
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if err := validator.New().Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return nil, err
		}
		msgs := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			msgs = append(msgs, fmt.Sprintf("%s: failed %q check", fe.Field(), fe.Tag()))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
	}
	return &cfg, nil
}
