// Package config handles command line configuration.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
)

// Commands understood by the CLI
const (
	CommandGenerate = "generate"
	CommandGrids    = "grids"
	CommandHelp     = "help"
)

// ErrUsage is returned when the command line can't be understood
var ErrUsage = errors.New("usage error")

// Config holds all application configuration.
type Config struct {
	Command   string
	OutputDir string
	Verbose   bool
	Specs     []string
}

// Load parses command line arguments (without the program name).
// Flags may appear before, between or after grid specs.
func Load(args []string, output io.Writer) (*Config, error) {
	cfg := &Config{OutputDir: "."}

	if len(args) == 0 {
		return nil, fmt.Errorf("%w: no command given", ErrUsage)
	}
	cfg.Command = args[0]

	switch cfg.Command {
	case CommandHelp, "-h", "-help", "--help":
		cfg.Command = CommandHelp
		return cfg, nil
	case CommandGenerate, CommandGrids:
	default:
		return nil, fmt.Errorf("%w: unknown command %q", ErrUsage, cfg.Command)
	}

	fs := flag.NewFlagSet(cfg.Command, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.BoolVar(&cfg.Verbose, "v", false, "log every file written")
	if cfg.Command == CommandGenerate {
		fs.StringVar(&cfg.OutputDir, "o", ".", "output directory")
		fs.StringVar(&cfg.OutputDir, "output-dir", ".", "output directory")
		fs.Usage = func() {
			fmt.Fprintln(output, "usage: capgrid generate [-o DIR] [-v] SPEC...")
			fmt.Fprintln(output, "  SPEC is a grid name or range, e.g. SFO, SFO1, SFO1,5, SFO1-16 or SFO1-3,10-12")
			fs.PrintDefaults()
		}
	}

	rest := args[1:]
	for {
		if err := fs.Parse(rest); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUsage, err)
		}
		rest = fs.Args()
		if len(rest) == 0 {
			break
		}
		cfg.Specs = append(cfg.Specs, rest[0])
		rest = rest[1:]
	}

	return cfg, cfg.Validate()
}

// LogLevel returns the slog level implied by the verbosity flag
func (c *Config) LogLevel() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	switch c.Command {
	case CommandGenerate:
		if len(c.Specs) == 0 {
			return fmt.Errorf("%w: generate needs at least one grid spec", ErrUsage)
		}
		if c.OutputDir == "" {
			return fmt.Errorf("%w: output directory must not be empty", ErrUsage)
		}
	case CommandGrids:
		if len(c.Specs) > 0 {
			return fmt.Errorf("%w: grids takes no arguments", ErrUsage)
		}
	}
	return nil
}

// PrintUsage writes the top level usage message
func PrintUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: capgrid <command> [arguments]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "commands:")
	fmt.Fprintln(w, "  generate [-o DIR] [-v] SPEC...   write one KML file per grid cell")
	fmt.Fprintln(w, "  grids                           list known grids")
	fmt.Fprintln(w, "  help                            show this message")
}
