package commands

import (
	"fmt"

	"github.com/lucascaro/hostman/resources"
	"github.com/urfave/cli"
	yaml "gopkg.in/yaml.v2"
)

func init() {
	command := cli.Command{
		Name:   "test-config",
		Usage:  "Check the configuration file for validity",
		Action: func(c *cli.Context) error {
			return testConfiguration(initResources(c))
		},
	}

	bootstrapCommands(command)
}

// testConfiguration prints out the result of parsing the config file
func testConfiguration(res *resources.Resources) error {
	staticConfig, err := yaml.Marshal(res.Config.S)
	if err != nil {
		return err
	}

	source := res.Config.R.ConfigFile
	if source == "" {
		source = "built-in defaults"
	}
	fmt.Fprintf(res.Out, "# %s\n%s", source, string(staticConfig))

	// Then test that the hosts file can be read
	hf, err := loadHostsFile(res)
	if err != nil {
		return err
	}
	fmt.Fprintf(res.Out, "# %s: %d lines, %d entries\n",
		hf.Name(), len(hf.Lines()), len(hf.WithoutComments()))
	return nil
}
