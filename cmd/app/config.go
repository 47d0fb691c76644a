package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/akyairhashvil/pomo/internal/config"
)

type initConfigCmd struct {
	Force bool `help:"Overwrite an existing config file."`
}

func (c *initConfigCmd) Run(app *appContext) error {
	if _, err := os.Stat(app.cfgPath); err == nil && !c.Force {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", app.cfgPath)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat config file: %w", err)
	}
	if err := config.Save(app.cfgPath, config.Defaults()); err != nil {
		return err
	}
	fmt.Fprintf(app.stdout, "wrote %s\n", app.cfgPath)
	return nil
}
