package main

import (
	"context"

	"github.com/desertthunder/nbx/internal/shared"
	"github.com/urfave/cli/v3"
)

// ConfigInit writes a config.toml with defaults to the given path.
func (r *Runner) ConfigInit(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")

	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	r.writePlainln("✓ Created %s", path)
	r.writePlain("Edit it to point at your notebook backend.\n")
	return nil
}
