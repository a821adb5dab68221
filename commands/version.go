package commands

import (
	"fmt"

	"github.com/lucascaro/hostman/resources"
	"github.com/urfave/cli"
)

func init() {
	command := cli.Command{
		Name:  "version",
		Usage: "Show hostman version",
		Action: func(c *cli.Context) error {
			return showVersion(initResources(c), c.App.Name)
		},
	}

	bootstrapCommands(command)
}

func showVersion(res *resources.Resources, name string) error {
	fmt.Fprintf(res.Out, "%s version %s\n", name, res.Config.R.Version)
	fmt.Fprintf(res.Out, "exact version %s\n", res.Config.S.ExactVersion)
	return nil
}
