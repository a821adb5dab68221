package commands

import (
	"fmt"

	"github.com/lucascaro/hostman/resources"
	"github.com/urfave/cli"
)

func init() {
	command := cli.Command{
		Name:      "remove",
		Aliases:   []string{"rm"},
		Usage:     "Remove host from the hosts file",
		ArgsUsage: "<host>",
		Action: func(c *cli.Context) error {
			host := c.Args().Get(0)
			if host == "" {
				return cli.NewExitError("Specify a host", -1)
			}
			res := initResources(c)
			return removeHost(res, host, c.GlobalBool("dry-run"))
		},
	}
	bootstrapCommands(command)
}

// removeHost deletes the line holding the live entry for host
func removeHost(res *resources.Resources, host string, dryRun bool) error {
	hf, err := loadHostsFile(res)
	if err != nil {
		return err
	}
	if !hf.HasHost(host) {
		fmt.Fprintf(res.Out, "%s not in hosts file.\n", host)
		return nil
	}

	fmt.Fprintf(res.Out, "Removing host %s\n", host)
	if err := hf.RemoveHost(host); err != nil {
		return cli.NewExitError("Error: "+err.Error(), 1)
	}
	res.Log.WithField("host", host).Info("Removed host")
	return saveHostsFile(res, hf, dryRun)
}
