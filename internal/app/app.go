package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/specialistvlad/dawaclient/internal/dawa"
)

// Searcher looks up addresses by street name and house number.
type Searcher interface {
	SearchAddresses(ctx context.Context, streetName, houseNumber string) ([]dawa.Address, error)
}

// App runs a single lookup and prints the result.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	searcher Searcher
}

// NewApp returns an App that prints results to outW and logs to logW.
func NewApp(outW, logW io.Writer, cfg *Config, searcher Searcher) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured.", "level", cfg.LogLevel, "format", cfg.LogFormat)

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		searcher: searcher,
	}
}
