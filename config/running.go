package config

import (
	"github.com/blang/semver"
)

type (
	//RunningCfg holds configuration options that are parsed at run time
	RunningCfg struct {
		ConfigFile string
		Version    semver.Version
	}
)

// initRunningConfig uses data in the static config to initialize the running config
func initRunningConfig(static *StaticCfg, running *RunningCfg) error {
	var err error
	running.Version, err = semver.ParseTolerant(static.Version)
	return err
}
