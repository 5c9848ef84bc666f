package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/dawaclient/internal/ctxlog"
	"github.com/specialistvlad/dawaclient/internal/render"
)

// Run performs the lookup and writes the results. Nothing reaches the output
// writer unless every record decoded; errors from the searcher are returned
// unchanged so callers can match them with errors.As.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run started.", "street", a.config.StreetName, "house_number", a.config.HouseNumber)

	addrs, err := a.searcher.SearchAddresses(ctx, a.config.StreetName, a.config.HouseNumber)
	if err != nil {
		a.logger.Debug("Address search failed.", "error", err)
		return err
	}
	a.logger.Debug("Address search finished.", "count", len(addrs))

	if err := render.Addresses(a.outW, addrs); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}
	return nil
}
