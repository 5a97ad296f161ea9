// Package main is the entry point for the Pathvana CLI application.
package main

import (
	"context"
	"fmt"
	"os"

	pcli "github.com/pathvana/pathvana/internal/cli"
	"github.com/pathvana/pathvana/internal/preview"
	"github.com/pathvana/pathvana/pkg/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:                  "pathvana",
		Usage:                 "Filesystem path completion engine for editors and shells",
		Version:               version.Version,
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("PATHVANA_LOG_LEVEL"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "complete",
				Usage: "Complete the path being typed on a line of text",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "line",
						Usage:    "Text of the line to complete",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "cursor",
						Value: -1,
						Usage: "Cursor offset within the line (default: end of line)",
					},
					&cli.StringFlag{
						Name:  "buffer",
						Usage: "Path of the originating buffer",
					},
					&cli.BoolFlag{
						Name:  "cmdline",
						Usage: "Treat the request as command-line input",
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "Configuration file to use",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					return pcli.Complete(pcli.CompleteParams{
						LogLevel:   cmd.String("log-level"),
						Line:       cmd.String("line"),
						Cursor:     int(cmd.Int("cursor")),
						Buffer:     cmd.String("buffer"),
						CmdLine:    cmd.Bool("cmdline"),
						ConfigPath: cmd.String("config"),
					})
				},
			},
			{
				Name:  "preview",
				Usage: "Render a short preview of a file",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "max-lines",
						Value: preview.DefaultMaxLines,
						Usage: "Maximum number of preview lines",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() == 0 {
						return fmt.Errorf("usage: pathvana preview <file>")
					}
					return pcli.Preview(cmd.Args().Get(0), int(cmd.Int("max-lines")))
				},
			},
			{
				Name:  "validate",
				Usage: "Validate a configuration file",
				Action: func(_ context.Context, cmd *cli.Command) error {
					return pcli.Validate(cmd.Args().Get(0))
				},
			},
			{
				Name:  "triggers",
				Usage: "Print trigger characters and keyword pattern for host registration",
				Action: func(_ context.Context, _ *cli.Command) error {
					return pcli.Triggers()
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
