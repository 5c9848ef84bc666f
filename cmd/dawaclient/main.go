package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/dawaclient/internal/app"
	"github.com/specialistvlad/dawaclient/internal/cli"
	"github.com/specialistvlad/dawaclient/internal/dawa"
)

// main is the entrypoint for dawaclient.
func main() {
	// Used only until the app configures its own logger.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	err := run(context.Background(), os.Stdout, os.Stderr, os.Args[1:], newRegistryClient)
	os.Exit(report(os.Stderr, err))
}

// searcherFactory builds the Searcher for a resolved configuration and a
// function that releases it.
type searcherFactory func(cfg *app.Config) (app.Searcher, func())

func newRegistryClient(cfg *app.Config) (app.Searcher, func()) {
	client := dawa.NewClient(cfg.RegistryURL)
	return client, func() { _ = client.Close() }
}

// run resolves the arguments and performs one lookup. The searcher is only
// created once the arguments are known to be complete.
func run(ctx context.Context, outW, logW io.Writer, args []string, newSearcher searcherFactory) error {
	cfg, err := cli.Parse(args)
	if err != nil {
		return err
	}

	searcher, release := newSearcher(cfg)
	defer release()

	return app.NewApp(outW, logW, cfg, searcher).Run(ctx)
}

// report writes err as a single "Error: " line and returns the exit code.
func report(errW io.Writer, err error) int {
	if err != nil {
		fmt.Fprintf(errW, "Error: %s\n", err)
	}
	return cli.ExitCode(err)
}
