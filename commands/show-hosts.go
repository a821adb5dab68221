package commands

import (
	"fmt"
	"strings"

	"github.com/lucascaro/hostman/hostsfile"
	"github.com/lucascaro/hostman/resources"
	"github.com/lucascaro/hostman/util"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	jsoniter "github.com/json-iterator/go"
)

type (
	//lineView is the json representation of a hosts file line
	lineView struct {
		Kind     string   `json:"kind"`
		Address  string   `json:"address,omitempty"`
		Family   string   `json:"family,omitempty"`
		Hosts    []string `json:"hosts,omitempty"`
		Comment  string   `json:"comment,omitempty"`
		Disabled bool     `json:"disabled,omitempty"`
	}
)

func init() {
	command := cli.Command{
		Name:    "show",
		Aliases: []string{"s"},
		Usage:   "Show current configuration",
		Flags: []cli.Flag{
			cli.BoolFlag{
				Name:  "summary, s",
				Usage: "Show the whole hosts file, comments included",
			},
			humanFlag,
			cli.BoolFlag{
				Name:  "json, j",
				Usage: "Print the lines as json",
			},
		},
		Action: func(c *cli.Context) error {
			res := initResources(c)
			return showHosts(res, c.Bool("summary"), c.Bool("human-readable"), c.Bool("json"))
		},
	}
	bootstrapCommands(command)
}

// showHosts prints the live entries of the hosts file, or every line
// when summary is set
func showHosts(res *resources.Resources, summary bool, human bool, asJSON bool) error {
	hf, err := loadHostsFile(res)
	if err != nil {
		return err
	}

	lines := hf.WithoutComments()
	if summary {
		lines = hf.Lines()
	}

	switch {
	case asJSON:
		err = showLinesJSON(res, lines)
	case human:
		showLinesHuman(res, lines)
	case summary:
		fmt.Fprint(res.Out, hf.Contents())
	default:
		showLines(res, lines)
	}
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	return nil
}

func showLines(res *resources.Resources, lines []hostsfile.Line) {
	for _, line := range lines {
		fmt.Fprintln(res.Out, line.String())
	}
}

func showLinesHuman(res *resources.Resources, lines []hostsfile.Line) {
	table := tablewriter.NewWriter(res.Out)
	table.SetColWidth(100)
	table.SetHeader([]string{"Address", "Family", "Hosts", "Comment"})
	for _, line := range lines {
		switch line.Kind {
		case hostsfile.AddressMapping:
			table.Append([]string{line.Address, addressFamily(line), strings.Join(line.Hosts, " "), strings.TrimSpace(line.Comment)})
		case hostsfile.CommentOnly:
			table.Append([]string{"", "", "", line.Comment})
		}
	}
	table.Render()
}

func showLinesJSON(res *resources.Resources, lines []hostsfile.Line) error {
	views := make([]lineView, 0, len(lines))
	for _, line := range lines {
		views = append(views, lineView{
			Kind:     line.Kind.String(),
			Address:  line.Address,
			Family:   addressFamily(line),
			Hosts:    line.Hosts,
			Comment:  line.Comment,
			Disabled: line.Disabled(),
		})
	}
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(views, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(res.Out, string(data))
	return nil
}

// addressFamily names the IP version of a live entry's address
func addressFamily(line hostsfile.Line) string {
	if line.Kind != hostsfile.AddressMapping {
		return ""
	}
	if util.IsIPv4(line.Address) {
		return "ipv4"
	}
	return "ipv6"
}
