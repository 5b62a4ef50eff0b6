package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/careops-incubation/icu-bed-allocator/internal/dataset"
	"github.com/careops-incubation/icu-bed-allocator/internal/report"
	"github.com/careops-incubation/icu-bed-allocator/internal/scenario"
	"github.com/careops-incubation/icu-bed-allocator/pkg/solver"
)

var planCmd = &cli.Command{
	Name:  "plan",
	Usage: "Run a one-shot what-if allocation",
	Flags: []cli.Flag{
		&cli.Float64Flag{
			Name:     "patients",
			Required: true,
			Usage:    "total patient count to split across severity tiers",
		},
		&cli.Float64Flag{
			Name:     "beds",
			Required: true,
			Usage:    "total ICU beds available",
		},
		&cli.StringFlag{
			Name:  "preset",
			Value: scenario.DefaultPresetName,
			Usage: "named tier split from the presets file",
		},
		&cli.StringFlag{
			Name:  "presets-file",
			Usage: "YAML file of named tier splits",
		},
		&cli.StringFlag{
			Name:  "strategy",
			Value: "greedy",
			Usage: "solver strategy (greedy or simplex)",
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "emit the result as JSON instead of a table",
		},
	},
	Action: func(ctx *cli.Context) error {
		if _, err := loadConfig(ctx); err != nil {
			return err
		}

		presets, err := scenario.LoadPresets(ctx.String("presets-file"))
		if err != nil {
			return err
		}
		tiers, ok := presets[ctx.String("preset")]
		if !ok {
			return fmt.Errorf("unknown tier preset %q", ctx.String("preset"))
		}

		sc := scenario.Scenario{
			Patients: ctx.Float64("patients"),
			Capacity: ctx.Float64("beds"),
			Tiers:    tiers,
		}
		req, err := sc.BuildRequest()
		if err != nil {
			return err
		}

		strategy, err := solver.ParseStrategy(ctx.String("strategy"))
		if err != nil {
			return err
		}
		slv, err := solver.New(strategy)
		if err != nil {
			return err
		}

		alloc, err := slv.Allocate(req)
		if err != nil {
			var inputErr *solver.InvalidInputError
			if errors.As(err, &inputErr) {
				return fmt.Errorf("invalid scenario: %s", inputErr.Reason)
			}
			return err
		}

		if ctx.Bool("json") {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(alloc)
		}
		report.RenderAllocation(os.Stdout, alloc)
		return nil
	},
}

var summaryCmd = &cli.Command{
	Name:  "summary",
	Usage: "Summarize a hospital allocation CSV",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "data",
			Usage: "path to the allocation CSV (defaults to dataset.path from config)",
		},
		&cli.StringSliceFlag{
			Name:  "state",
			Usage: "filter by state code (repeatable)",
		},
		&cli.StringSliceFlag{
			Name:  "urban-status",
			Usage: "filter by urban status (repeatable)",
		},
		&cli.BoolFlag{
			Name:  "records",
			Usage: "also print the per-hospital table",
		},
		&cli.StringFlag{
			Name:  "export",
			Usage: "write the filtered records to a CSV file",
		},
	},
	Action: func(ctx *cli.Context) error {
		cfg, err := loadConfig(ctx)
		if err != nil {
			return err
		}

		path := ctx.String("data")
		if path == "" {
			path = cfg.Dataset.Path
		}
		source, err := dataset.NewCSVSource(path)
		if err != nil {
			return err
		}

		filter := dataset.Filter{
			States:        ctx.StringSlice("state"),
			UrbanStatuses: ctx.StringSlice("urban-status"),
		}
		records, err := source.Records(ctx.Context, filter)
		if err != nil {
			return err
		}

		report.RenderSummary(os.Stdout, records)
		if ctx.Bool("records") {
			report.RenderRecords(os.Stdout, records)
		}

		if out := ctx.String("export"); out != "" {
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create export file: %w", err)
			}
			defer f.Close()
			if err := report.WriteCSV(f, report.SortByShortage(records)); err != nil {
				return err
			}
			fmt.Printf("Exported %d records to %s\n", len(records), out)
		}
		return nil
	},
}
