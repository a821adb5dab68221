package commands

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lucascaro/hostman/hostsfile"
	"github.com/lucascaro/hostman/resources"
	"github.com/lucascaro/hostman/util"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

type (
	//addRequest describes a new hosts file entry
	addRequest struct {
		IP      string
		Names   string
		Comment []string
		Update  bool
	}
)

func init() {
	add := cli.Command{
		Name:      "add",
		Aliases:   []string{"a"},
		Usage:     "Add host to the hosts file",
		ArgsUsage: "<ip> <name[,name...]> [comment...]",
		Flags: []cli.Flag{
			updateFlag,
		},
		Action: func(c *cli.Context) error {
			ip := c.Args().Get(0)
			names := c.Args().Get(1)
			if ip == "" || names == "" {
				return cli.NewExitError("Specify an ip and a host name", -1)
			}
			res := initResources(c)
			return addHosts(res, addRequest{
				IP:      ip,
				Names:   names,
				Comment: c.Args().Tail()[1:],
				Update:  c.Bool("update"),
			}, c.GlobalBool("dry-run"))
		},
	}

	local := cli.Command{
		Name:      "local",
		Aliases:   []string{"l"},
		Usage:     "Add host pointing to the local address to the hosts file",
		ArgsUsage: "<name[,name...]> [comment...]",
		Flags: []cli.Flag{
			updateFlag,
		},
		Action: func(c *cli.Context) error {
			names := c.Args().Get(0)
			if names == "" {
				return cli.NewExitError("Specify a host name", -1)
			}
			res := initResources(c)
			return addHosts(res, addRequest{
				IP:      res.Config.S.HostsFile.LocalAddress,
				Names:   names,
				Comment: c.Args().Tail(),
				Update:  c.Bool("update"),
			}, c.GlobalBool("dry-run"))
		},
	}

	bootstrapCommands(add, local)
}

// addHosts appends a line mapping req.IP to every name in req.Names.
// Names which are already present are only replaced when req.Update is set.
func addHosts(res *resources.Resources, req addRequest, dryRun bool) error {
	if !util.IsIP(req.IP) {
		return cli.NewExitError(fmt.Sprintf("Error: %s is not a valid IP address", req.IP), -1)
	}

	allNames := strings.Split(req.Names, ",")
	for _, name := range allNames {
		if !validHostName(name) {
			return cli.NewExitError(fmt.Sprintf("Error: %q is not a valid host name", name), -1)
		}
	}

	hf, err := loadHostsFile(res)
	if err != nil {
		return err
	}

	matches := hf.GetMultiMatch(allNames, hostsfile.Exact)
	if len(matches) > 0 && !req.Update {
		fmt.Fprintf(res.Out, "The requested host is already present: \n%s\n", strings.Join(matches, "\n"))
		return nil
	}

	names := strings.Join(allNames, " ")
	comment := strings.Join(req.Comment, " ")
	if comment == "" {
		comment = res.Config.S.HostsFile.DefaultComment
	}
	hostLine := fmt.Sprintf("%s %s # %s", req.IP, names, comment)

	if len(matches) > 0 {
		fmt.Fprintf(res.Out, "Updating host in hosts file: \n %s \n => %s %s %s\n",
			strings.Join(matches, "\n"), req.IP, names, comment)
		for _, name := range allNames {
			if !hf.HasHost(name) {
				continue
			}
			fmt.Fprintf(res.Out, "Removing host %s\n", name)
			if err := hf.RemoveHost(name); err != nil {
				return cli.NewExitError("Error: "+err.Error(), 1)
			}
		}
	}

	fmt.Fprintf(res.Out, "Adding %s %s to %s\n", req.IP, names, hf.Name())
	fmt.Fprintln(res.Out, hostLine)
	if err := hf.AddLine(hostLine); err != nil {
		return cli.NewExitError("Error: "+err.Error(), 1)
	}

	res.Log.WithFields(log.Fields{
		"ip":    req.IP,
		"names": allNames,
	}).Info("Added hosts")
	return saveHostsFile(res, hf, dryRun)
}

// validHostName rejects names which would not survive as a single host
// token of a hosts file line
func validHostName(name string) bool {
	return name != "" &&
		!strings.Contains(name, "#") &&
		strings.IndexFunc(name, unicode.IsSpace) < 0
}
