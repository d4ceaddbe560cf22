package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/arsalion01/blueprintgo/internal/blueprint"
	"github.com/arsalion01/blueprintgo/internal/catalog"
	"github.com/arsalion01/blueprintgo/internal/classify"
	"github.com/arsalion01/blueprintgo/internal/compile"
	"github.com/arsalion01/blueprintgo/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW        io.Writer
	logger      *slog.Logger
	config      *Config
	store       *catalog.Store
	classifier  *classify.Classifier
	synthesizer *blueprint.Synthesizer
	builder     *compile.Builder
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and template
// store. A failure to load the template library is a fatal startup error.
func NewApp(outW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	store := catalog.New()
	if cfg.TemplatesPath != "" {
		templates, err := catalog.LoadDir(ctx, cfg.TemplatesPath)
		if err != nil {
			panic(fmt.Errorf("failed to load template library: %w", err))
		}
		store.Load(templates)
		logger.Debug("Template library loaded.", "count", store.Len())
	} else {
		logger.Warn("No templates path configured, recommendations disabled.")
	}

	builder := compile.New(compile.Options{
		SecurityLevel:        cfg.SecurityLevel,
		IncludeErrorHandling: cfg.ErrorHandling,
	})

	return &App{
		outW:        outW,
		logger:      logger,
		config:      cfg,
		store:       store,
		classifier:  classify.New(),
		synthesizer: blueprint.NewDefault(),
		builder:     builder,
	}
}

// Store returns the application's template store. This is primarily for
// testing.
func (a *App) Store() *catalog.Store {
	return a.store
}
