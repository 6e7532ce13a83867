package main

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/urfave/cli/v3"
)

//go:embed example_config.yaml
var exampleConfig string

func exampleConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "example-config",
		Usage: "show an example configuration file",
		Description: "Print an example YAML configuration with custom language descriptors.\n" +
			"Pass the file to other commands with --config.\n\n" +
			"Examples:\n" +
			"  tsfold example-config                      # show the example\n" +
			"  tsfold example-config > tsfold.yaml        # start a config file\n" +
			"  tsfold --config tsfold.yaml languages      # check what it registers",
		Action: func(_ context.Context, _ *cli.Command) error {
			fmt.Print(exampleConfig)
			return nil
		},
	}
}
