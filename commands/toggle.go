package commands

import (
	"fmt"

	"github.com/lucascaro/hostman/hostsfile"
	"github.com/lucascaro/hostman/resources"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

func init() {
	disable := cli.Command{
		Name:      "disable",
		Aliases:   []string{"dis"},
		Usage:     "Disable host without removing it",
		ArgsUsage: "<host>",
		Action: func(c *cli.Context) error {
			host := c.Args().Get(0)
			if host == "" {
				return cli.NewExitError("Specify a host", -1)
			}
			res := initResources(c)
			return disableHost(res, host, c.GlobalBool("dry-run"))
		},
	}

	enable := cli.Command{
		Name:      "enable",
		Aliases:   []string{"en"},
		Usage:     "Enable previously disabled host",
		ArgsUsage: "<host>",
		Action: func(c *cli.Context) error {
			host := c.Args().Get(0)
			if host == "" {
				return cli.NewExitError("Specify a host", -1)
			}
			res := initResources(c)
			return enableHost(res, host, c.GlobalBool("dry-run"))
		},
	}

	bootstrapCommands(disable, enable)
}

// disableHost comments out the live entry for host
func disableHost(res *resources.Resources, host string, dryRun bool) error {
	hf, err := loadHostsFile(res)
	if err != nil {
		return err
	}
	if !hf.HasHost(host) {
		if hf.HasDisabledHost(host) {
			fmt.Fprintf(res.Out, "%s is already disabled in hosts file.\n", host)
		} else {
			fmt.Fprintf(res.Out, "%s is not in hosts file.\n", host)
		}
		return nil
	}

	fmt.Fprintf(res.Out, "Disabling host %s\n", host)
	return applyOutcome(res, hf, host, hf.DisableHost(host), dryRun)
}

// enableHost uncomments the disabled entry for host
func enableHost(res *resources.Resources, host string, dryRun bool) error {
	hf, err := loadHostsFile(res)
	if err != nil {
		return err
	}
	if !hf.HasDisabledHost(host) {
		if hf.HasHost(host) {
			fmt.Fprintf(res.Out, "%s is already enabled in hosts file.\n", host)
		} else {
			fmt.Fprintf(res.Out, "%s is not in hosts file.\n", host)
		}
		return nil
	}

	fmt.Fprintf(res.Out, "Enabling host %s\n", host)
	outcome, err := hf.EnableHost(host)
	if err != nil {
		return cli.NewExitError("Error: "+err.Error(), 1)
	}
	return applyOutcome(res, hf, host, outcome, dryRun)
}

// applyOutcome saves hf if the edit changed it. Edits which did not
// apply are reported as warnings and leave the file untouched.
func applyOutcome(res *resources.Resources, hf *hostsfile.ManagedHostsFile, host string, outcome hostsfile.Outcome, dryRun bool) error {
	entry := res.Log.WithFields(log.Fields{
		"host": host,
		"file": hf.Name(),
	})
	if !outcome.Applied {
		entry.Warn("Error, " + outcome.Reason)
		return nil
	}
	entry.Info("Toggled host")
	return saveHostsFile(res, hf, dryRun)
}
