package commands

import (
	"fmt"

	"github.com/lucascaro/hostman/hostsfile"
	"github.com/lucascaro/hostman/resources"
	"github.com/urfave/cli"
)

func init() {
	command := cli.Command{
		Name:      "check",
		Aliases:   []string{"c"},
		Usage:     "Check whether host is in hosts file",
		ArgsUsage: "<host>",
		Flags: []cli.Flag{
			cli.BoolFlag{
				Name:  "exact, e",
				Usage: "Only match whole words",
			},
		},
		Action: func(c *cli.Context) error {
			host := c.Args().Get(0)
			if host == "" {
				return cli.NewExitError("Specify a host", -1)
			}
			res := initResources(c)
			return checkHost(res, host, c.Bool("exact"))
		},
	}
	bootstrapCommands(command)
}

// checkHost prints every line matching host
func checkHost(res *resources.Resources, host string, exact bool) error {
	hf, err := loadHostsFile(res)
	if err != nil {
		return err
	}
	for _, line := range hf.GetMatches(host, hostsfile.MatchTypeFromBool(exact)) {
		fmt.Fprintln(res.Out, line.String())
	}
	return nil
}
