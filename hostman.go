package main

import (
	"fmt"
	"os"

	"github.com/lucascaro/hostman/commands"
	"github.com/lucascaro/hostman/config"
	"github.com/urfave/cli"
)

// Entry point of hostman
func main() {
	app := cli.NewApp()
	app.Name = "hostman"
	app.Usage = "Manage the hosts file."

	// Change the version string with updates so that a quick help command will
	// let the testers know what version of hostman they're on
	app.Version = config.Version

	app.Flags = commands.GlobalFlags()

	// Define commands used with this application
	app.Commands = commands.Commands()

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
