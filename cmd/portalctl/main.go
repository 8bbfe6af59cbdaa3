// Command portalctl performs administrative tasks against the portal database.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/pflag"
	"github.com/yigit/studentportal/internal/bootstrap"
)

func main() {
	global := pflag.NewFlagSet("portalctl", pflag.ContinueOnError)
	configPath := global.StringP("config", "c", bootstrap.DefaultConfigPath, "path to the YAML configuration file")
	global.SetInterspersed(false)
	global.Usage = func() { printUsage(os.Stderr) }

	if err := global.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		os.Exit(2)
	}
	if global.NArg() == 0 {
		printUsage(os.Stderr)
		os.Exit(2)
	}

	ctx := context.Background()
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(*configPath)
	if err != nil {
		color.Red("Error loading configuration: %v", err)
		os.Exit(1)
	}

	repos, store, err := bootstrap.SetupStorage(ctx, cfg, lgr)
	if err != nil {
		color.Red("Error connecting to database: %v", err)
		os.Exit(1)
	}
	defer func() { _ = store.Close(ctx) }()

	deps := bootstrap.BuildDependencies(cfg, repos, store, lgr)
	cli := newCommandLine(deps.Services, os.Stdout)

	if err := cli.run(ctx, global.Args()); err != nil {
		if !errors.Is(err, errHelp) {
			color.Red("Error: %v", err)
		}
		_ = store.Close(ctx)
		os.Exit(1)
	}
}

func printUsage(w *os.File) {
	fmt.Fprintln(w, "Usage: portalctl [--config FILE] COMMAND [FLAGS]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  add-staff     --email EMAIL --name NAME [--role admin|staff]  create or update a staff account (password is prompted)")
	fmt.Fprintln(w, "  seed-courses                                                replace the course catalog with the default catalog")
	fmt.Fprintln(w, "  students      [--status STATUS] [--search TEXT] [--all]       list registrations in a table")
}
