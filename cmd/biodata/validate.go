package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/biodata/pkg/biodata"
)

var errInvalidProfile = errors.New("profile is invalid")

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "Validate a biodata profile stored as YAML",
		UsageText: "biodata validate --file profile.yaml [--optional address]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "YAML document mapping field ids to values",
				Required: true,
			},
			&cli.StringSliceFlag{
				Name:  "optional",
				Usage: "field ids that may be left empty",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			values, err := readProfile(cmd.String("file"))
			if err != nil {
				return err
			}

			var optional []biodata.Field
			for _, id := range cmd.StringSlice("optional") {
				f, err := biodata.ParseField(id)
				if err != nil {
					return err
				}
				optional = append(optional, f)
			}

			res := biodata.New().ValidateForm(biodata.Controls(values, optional...))

			out := cmd.Root().Writer
			if res.Valid {
				fmt.Fprintln(out, "valid")
				return nil
			}
			for _, r := range res.Invalid() {
				fmt.Fprintf(out, "%s: %s\n", r.Field, r.Message)
			}
			return fmt.Errorf("%w: first invalid field is %s", errInvalidProfile, res.FocusTarget)
		},
	}
}

// readProfile decodes a flat YAML mapping. Every key must name a value field.
func readProfile(path string) (map[biodata.Field]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}

	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}

	values := make(map[biodata.Field]string, len(raw))
	var errs []error
	for id, v := range raw {
		f, err := biodata.ParseField(id)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if f.IsFile() {
			errs = append(errs, fmt.Errorf("%s cannot be validated offline", f))
			continue
		}
		values[f] = v
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return values, nil
}
