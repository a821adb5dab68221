package commands

import (
	"fmt"

	"github.com/lucascaro/hostman/hostsfile"
	"github.com/lucascaro/hostman/resources"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

var (
	configFlag = cli.StringFlag{
		Name:  "config, c",
		Usage: "Use a given `CONFIG_FILE` when running this command",
		Value: "",
	}

	fileFlag = cli.StringFlag{
		Name:  "file, f",
		Usage: "Edit `HOSTS_FILE` instead of the configured hosts file",
		Value: "",
	}

	dryRunFlag = cli.BoolFlag{
		Name:  "dry-run, d",
		Usage: "Print the resulting hosts file instead of writing it",
	}

	humanFlag = cli.BoolFlag{
		Name:  "human-readable, H",
		Usage: "Print a table instead of hosts file lines",
	}

	updateFlag = cli.BoolFlag{
		Name:  "update, u",
		Usage: "Replace existing entries for the given names",
	}
)

var allCommands []cli.Command

// bootstrapCommands simply adds a given command to the allCommands array
func bootstrapCommands(commands ...cli.Command) {
	allCommands = append(allCommands, commands...)
}

// Commands provides all of the defined commands to the front end
func Commands() []cli.Command {
	return allCommands
}

// GlobalFlags provides the flags shared by every command
func GlobalFlags() []cli.Flag {
	return []cli.Flag{
		configFlag,
		fileFlag,
		dryRunFlag,
	}
}

// initResources loads the resources selected by the global flags
func initResources(c *cli.Context) *resources.Resources {
	return resources.InitResources(c.GlobalString("config"), c.GlobalString("file"))
}

// loadHostsFile reads the hosts file, converting failures into exit errors
func loadHostsFile(res *resources.Resources) (*hostsfile.ManagedHostsFile, error) {
	hf, err := res.LoadHostsFile()
	if err != nil {
		res.Log.WithError(err).Error("Could not load hosts file")
		return nil, cli.NewExitError("Error: "+err.Error(), 1)
	}
	return hf, nil
}

// saveHostsFile writes hf back through the resource store. When dryRun
// is set the new contents are printed instead.
func saveHostsFile(res *resources.Resources, hf *hostsfile.ManagedHostsFile, dryRun bool) error {
	if dryRun {
		fmt.Fprint(res.Out, hf.Contents())
		return nil
	}
	err := res.Store.Write(hf.Contents())
	if err != nil {
		res.Log.WithFields(log.Fields{
			"file": hf.Name(),
		}).WithError(err).Error("Could not save hosts file")
		return cli.NewExitError("Error: "+err.Error(), 1)
	}
	return nil
}
