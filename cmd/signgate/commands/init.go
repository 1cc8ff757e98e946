package commands

import (
	"fmt"

	"git.home.luguber.info/inful/signgate/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite existing configuration file"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	path := root.ConfigPath()
	fmt.Fprintf(g.out(), "Writing configuration to %s\n", path)
	if err := config.Init(path, i.Force); err != nil {
		fmt.Fprintln(g.out(), "Initialization failed")
		return err
	}
	fmt.Fprintln(g.out(), "initialized successfully")
	return nil
}
