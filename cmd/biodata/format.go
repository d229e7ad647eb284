package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/biodata/pkg/biodata"
)

func formatDateCmd() *cli.Command {
	return &cli.Command{
		Name:      "format-date",
		Usage:     "Print input the way the birth date control formats it",
		UsageText: "biodata format-date 19900115",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one argument, got %d", cmd.Args().Len())
			}
			fmt.Fprintln(cmd.Root().Writer, biodata.FormatBirthDateInput(cmd.Args().First()))
			return nil
		},
	}
}
