package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/specialistvlad/framegen/internal/config"
	"github.com/specialistvlad/framegen/internal/ctxlog"
)

// Loaders maps a lower-case file extension (".hcl", ".yaml") to the loader
// for that format.
type Loaders map[string]config.Loader

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	loaders Loaders
}

// NewApp is the constructor for the main application. It returns an App with
// its own isolated logger writing to outW.
func NewApp(outW io.Writer, cfg *Config, loaders Loaders) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:    outW,
		logger:  logger,
		config:  cfg,
		loaders: loaders,
	}
}

// Run executes the configured command.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "command", a.config.Command)

	switch a.config.Command {
	case CommandInit:
		return a.initSpec(ctx)
	case CommandGenerate:
		return a.generate(ctx)
	default:
		return fmt.Errorf("unknown command %q", a.config.Command)
	}
}

// loaderFor picks the loader registered for the extension of path.
func (a *App) loaderFor(path string) (config.Loader, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if loader, ok := a.loaders[ext]; ok {
		return loader, nil
	}
	known := make([]string, 0, len(a.loaders))
	for k := range a.loaders {
		known = append(known, k)
	}
	slices.Sort(known)
	return nil, fmt.Errorf("no loader for %q files (supported: %s)", ext, strings.Join(known, ", "))
}
