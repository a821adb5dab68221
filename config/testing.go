package config

import (
	"github.com/creasty/defaults"
)

const testConfig = `
HostsFile:
    BackupSuffix: .bak
    DefaultComment: Added by hostman
    LocalAddress: 127.0.0.1
LogConfig:
    LogLevel: 3
    LogPath: null
    LogToFile: false
`

// LoadTestingConfig loads the hard coded testing config pointed at hostsPath
func LoadTestingConfig(hostsPath string) (*Config, error) {
	config := &Config{}

	// Initialize static config to the default values
	if err := defaults.Set(&config.S); err != nil {
		return nil, err
	}

	// Deserialize the yaml file contents into the static config
	if err := parseStaticConfig([]byte(testConfig), &config.S); err != nil {
		return nil, err
	}

	config.S.HostsFile.Path = hostsPath
	finishStaticConfig(&config.S)
	config.S.Version = "v0.0.0+testing"
	config.S.ExactVersion = "v0.0.0+testing"

	// Use the static config to initialize the running config
	if err := initRunningConfig(&config.S, &config.R); err != nil {
		return nil, err
	}

	return config, nil
}
