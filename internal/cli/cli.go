package cli

import (
	"io"
	"log/slog"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/specialistvlad/framegen/internal/app"
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

type generateCmd struct {
	Spec        string `arg:"" optional:"" default:"FrameworkSpec.hcl" help:"Path to the specification (.hcl, .yaml or .yml)."`
	Output      string `short:"o" help:"Where to write the project description. Defaults to <root>/<project>.xcodeproj/project.yaml."`
	Root        string `help:"Directory file patterns are relative to. Defaults to the directory of the specification."`
	LogLevel    string `default:"info" enum:"debug,info,warn,error" help:"Logging level (${enum})."`
	LogFormat   string `default:"text" enum:"text,json" help:"Log output format (${enum})."`
	Workers     int    `default:"0" help:"Concurrent file expansion workers. 0 uses one per CPU."`
	StrictOrder bool   `help:"Fail when a dependency names a target declared later."`
	PrintTree   bool   `help:"Print the group tree after generating."`
}

type initCmd struct {
	Spec  string `arg:"" optional:"" default:"FrameworkSpec.hcl" help:"Where to write the starter specification."`
	Force bool   `short:"f" help:"Overwrite an existing specification."`
}

type command struct {
	Generate generateCmd `cmd:"" default:"withargs" help:"Generate a project from a specification."`
	Init     initCmd     `cmd:"" help:"Write a starter specification."`
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var cmd command
	exited := false
	parser, err := kong.New(&cmd,
		kong.Name("framegen"),
		kong.Description("framegen - compiles a declarative framework specification into a project description."),
		kong.Writers(output, output),
		kong.Exit(func(int) { exited = true }),
	)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	kctx, err := parser.Parse(args)
	if exited {
		slog.Debug("Help requested, exiting.")
		return nil, true, nil
	}
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.", "command", kctx.Command())

	var cfg app.Config
	switch {
	case strings.HasPrefix(kctx.Command(), app.CommandInit):
		cfg = app.Config{
			Command:  app.CommandInit,
			SpecPath: cmd.Init.Spec,
			Force:    cmd.Init.Force,
		}
	default:
		g := cmd.Generate
		cfg = app.Config{
			Command:     app.CommandGenerate,
			SpecPath:    g.Spec,
			OutputPath:  g.Output,
			Root:        g.Root,
			LogLevel:    g.LogLevel,
			LogFormat:   g.LogFormat,
			WorkerCount: g.Workers,
			StrictOrder: g.StrictOrder,
			PrintTree:   g.PrintTree,
		}
	}

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
