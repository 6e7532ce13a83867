package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/arjunmahishi/tsfold/config"
	"github.com/arjunmahishi/tsfold/fold"
	"github.com/arjunmahishi/tsfold/lsp"
	"github.com/arjunmahishi/tsfold/output"
	"github.com/arjunmahishi/tsfold/tsfold"
	"github.com/tliron/commonlog"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func main() {
	app := &cli.Command{
		Name:    "tsfold",
		Usage:   "find foldable function bodies with tree-sitter",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML file with language descriptors",
				Sources: cli.EnvVars("TSFOLD_CONFIG"),
			},
		},
		Commands: []*cli.Command{
			regionsCommand(),
			enclosingCommand(),
			languagesCommand(),
			serveCommand(),
			exampleConfigCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		output.WriteError(err)
		os.Exit(1)
	}
}

// loadSettings builds the registry and activation from the defaults and
// the optional --config file.
func loadSettings(cmd *cli.Command) (*tsfold.Registry, *config.Activation, error) {
	return settings(cmd.String("config"))
}

// settings applies the config file at path, if any, and TSFOLD_ACTIVE on
// top of the built-in descriptors.
func settings(path string) (*tsfold.Registry, *config.Activation, error) {
	reg := tsfold.DefaultRegistry()

	cfg := &config.Config{}
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, nil, err
		}
	} else {
		cfg.ApplyEnv()
	}

	if err := cfg.Apply(reg); err != nil {
		return nil, nil, err
	}
	for _, w := range cfg.Validate(reg) {
		output.WriteWarning(w)
	}

	return reg, cfg.Activation(reg), nil
}

func regionsCommand() *cli.Command {
	return &cli.Command{
		Name:  "regions",
		Usage: "list function body regions",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "path",
				Value: ".",
				Usage: "root path to scan",
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "single file to analyze",
			},
			&cli.StringFlag{
				Name:    "lang",
				Aliases: []string{"l"},
				Usage:   "language id (detected from the extension if empty)",
			},
			&cli.BoolFlag{
				Name:  "compact",
				Usage: "minimize output",
			},
			&cli.IntFlag{
				Name:    "jobs",
				Aliases: []string{"j"},
				Value:   runtime.NumCPU(),
				Usage:   "number of parallel workers",
			},
			&cli.Int64Flag{
				Name:  "max-bytes",
				Value: 2 * 1024 * 1024,
				Usage: "skip files larger than this",
			},
		},
		Action: runRegions,
	}
}

func runRegions(ctx context.Context, cmd *cli.Command) error {
	reg, act, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	opts := fold.RegionsOptions{
		Language:   cmd.String("lang"),
		Path:       cmd.String("path"),
		File:       cmd.String("file"),
		Jobs:       cmd.Int("jobs"),
		MaxBytes:   cmd.Int64("max-bytes"),
		Registry:   reg,
		Activation: act,
	}

	results, err := fold.Regions(ctx, opts)
	if err != nil {
		return err
	}

	out := output.New(output.Config{Compact: cmd.Bool("compact")})
	return out.Write(results)
}

func enclosingCommand() *cli.Command {
	return &cli.Command{
		Name:  "enclosing",
		Usage: "find the function body enclosing a cursor",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "file to analyze (required)",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "lang",
				Aliases: []string{"l"},
				Usage:   "language id (detected from the extension if empty)",
			},
			&cli.IntFlag{
				Name:    "offset",
				Aliases: []string{"o"},
				Value:   -1,
				Usage:   "cursor byte offset",
			},
			&cli.IntFlag{
				Name:  "line",
				Usage: "cursor line (1-based)",
			},
			&cli.IntFlag{
				Name:  "column",
				Value: 1,
				Usage: "cursor byte column (1-based)",
			},
			&cli.BoolFlag{
				Name:  "compact",
				Usage: "minimize output",
			},
		},
		Action: runEnclosing,
	}
}

func runEnclosing(ctx context.Context, cmd *cli.Command) error {
	reg, _, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	offset, line := cmd.Int("offset"), cmd.Int("line")
	if line <= 0 && offset < 0 {
		return errors.New("--offset or --line is required")
	}

	opts := fold.EnclosingOptions{
		Language: cmd.String("lang"),
		File:     cmd.String("file"),
		Line:     line,
		Column:   cmd.Int("column"),
		Registry: reg,
	}
	if line <= 0 {
		opts.Offset = uint32(offset)
	}

	result, err := fold.Enclosing(ctx, opts)
	if err != nil {
		return err
	}

	out := output.New(output.Config{Compact: cmd.Bool("compact")})
	return out.Write(result)
}

func languagesCommand() *cli.Command {
	return &cli.Command{
		Name:  "languages",
		Usage: "list configured languages",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "table",
				Usage: "print a table instead of JSON",
			},
			&cli.BoolFlag{
				Name:  "compact",
				Usage: "minimize output",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			reg, act, err := loadSettings(cmd)
			if err != nil {
				return err
			}

			infos := fold.Languages(reg, act)
			out := output.New(output.Config{Compact: cmd.Bool("compact")})
			if cmd.Bool("table") {
				out.WriteLanguages(infos)
				return nil
			}
			return out.Write(infos)
		},
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run a language server that provides function body folding ranges",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log verbosity (0 quiet, 1 info, 2 debug)",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "write logs to this file instead of stderr",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			var logPath *string
			if p := cmd.String("log-file"); p != "" {
				logPath = &p
			}
			commonlog.Configure(cmd.Int("verbose"), logPath)

			reg, act, err := loadSettings(cmd)
			if err != nil {
				return err
			}

			server := lsp.NewServer(lsp.Options{
				Registry:   reg,
				Activation: act,
				Version:    version,
			})
			if err := server.RunStdio(); err != nil {
				return fmt.Errorf("serve: %w", err)
			}
			return nil
		},
	}
}
