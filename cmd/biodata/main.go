// Command biodata serves the biodata form and validates profiles offline.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:                  "biodata",
		Usage:                 "Biodata form server and validation tools",
		EnableShellCompletion: true,
		Writer:                os.Stdout,
		ErrWriter:             os.Stderr,
		Commands: []*cli.Command{
			serveCmd(),
			validateCmd(),
			formatDateCmd(),
		},
	}
}
