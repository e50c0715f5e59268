// Package main is the entry point for the capgrid waypoint generator.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/randytsao24/capgrid/internal/config"
	"github.com/randytsao24/capgrid/internal/grid"
	"github.com/randytsao24/capgrid/internal/kml"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, err)
		config.PrintUsage(stderr)
		return exitUsage
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel()}))
	registry := grid.DefaultRegistry()

	switch cfg.Command {
	case config.CommandHelp:
		config.PrintUsage(stdout)
		return exitOK
	case config.CommandGrids:
		if err := listGrids(stdout, registry); err != nil {
			logger.Error("listing grids failed", "error", err)
			return exitError
		}
		return exitOK
	}

	if err := generate(cfg, registry, logger); err != nil {
		logger.Error("generation failed", "error", err)
		return exitError
	}
	return exitOK
}

// generate writes every requested cell, stopping at the first error
func generate(cfg *config.Config, registry *grid.Registry, logger *slog.Logger) error {
	writer, err := kml.NewWriter(cfg.OutputDir)
	if err != nil {
		return err
	}
	gen := grid.NewGenerator(registry)

	var files int
	var total int64
	for _, spec := range cfg.Specs {
		selections, err := grid.ParseSpec(spec, registry)
		if err != nil {
			return err
		}

		for _, sel := range selections {
			for number := range sel.Numbers() {
				cell, err := gen.Cell(sel.Grid, number)
				if err != nil {
					return err
				}

				path, size, err := writer.WriteCell(cell.Name(), grid.Waypoints(cell))
				if err != nil {
					return err
				}
				files++
				total += size

				north, south, west, east := cell.Bounds()
				logger.Debug("wrote cell",
					"cell", cell.Name(),
					"row", cell.Row,
					"col", cell.Col,
					"north", north,
					"south", south,
					"west", west,
					"east", east,
					"path", path,
					"size", humanize.Bytes(uint64(size)),
				)
			}
		}
	}

	logger.Info("generation complete",
		"files", files,
		"bytes", humanize.Bytes(uint64(total)),
		"dir", writer.Dir(),
	)
	return nil
}

func listGrids(w io.Writer, registry *grid.Registry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tCOLS\tROWS\tCELLS\tANCHOR\tEXCLUDED")
	for _, def := range registry.All() {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%.3fN %.3fW\t%s\n",
			def.Name, def.Cols, def.Rows, humanize.Comma(int64(def.CellCount())),
			def.AnchorLat, def.AnchorLon, formatExcluded(def.ExcludedNumbers()))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d grids\n", registry.Count())
	return err
}

// formatExcluded collapses sorted numbers into ranges, e.g. "449-460"
func formatExcluded(numbers []int) string {
	if len(numbers) == 0 {
		return "-"
	}

	var out string
	start, prev := numbers[0], numbers[0]
	flush := func() {
		if out != "" {
			out += ","
		}
		if start == prev {
			out += fmt.Sprint(start)
		} else {
			out += fmt.Sprintf("%d-%d", start, prev)
		}
	}
	for _, n := range numbers[1:] {
		if n == prev+1 {
			prev = n
			continue
		}
		flush()
		start, prev = n, n
	}
	flush()
	return out
}
