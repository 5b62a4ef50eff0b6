// Command icu-allocator runs the ICU bed allocation service and its
// one-shot planning tools.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/careops-incubation/icu-bed-allocator/internal/config"
	"github.com/careops-incubation/icu-bed-allocator/internal/dataset"
	"github.com/careops-incubation/icu-bed-allocator/internal/logging"
	"github.com/careops-incubation/icu-bed-allocator/internal/scenario"
	"github.com/careops-incubation/icu-bed-allocator/internal/server"
)

func main() {
	app := &cli.App{
		Name:  "icu-allocator",
		Usage: "Allocate ICU beds across patient severity groups",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a YAML config file",
			},
		},
		Commands: []*cli.Command{
			serveCmd,
			planCmd,
			summaryCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadConfig reads the service configuration and initializes logging.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(ctx.String("config"))
	if err != nil {
		return nil, err
	}
	if err := logging.Init(cfg.Logging.Level, cfg.Logging.Development); err != nil {
		return nil, err
	}
	return cfg, nil
}

var serveCmd = &cli.Command{
	Name:  "serve",
	Usage: "Run the allocation HTTP service",
	Action: func(ctx *cli.Context) error {
		cfg, err := loadConfig(ctx)
		if err != nil {
			return err
		}

		source, err := dataset.NewCSVSource(cfg.Dataset.Path)
		if err != nil {
			return err
		}
		presets, err := scenario.LoadPresets(cfg.Scenario.PresetsPath)
		if err != nil {
			return err
		}
		srv, err := server.New(cfg, source, presets)
		if err != nil {
			return err
		}

		runCtx, stop := signal.NotifyContext(ctx.Context, syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return srv.Run(runCtx)
	},
}
