package config

import (
	"os"
	"path/filepath"
	"reflect"
	"runtime"

	yaml "gopkg.in/yaml.v2"
)

type (
	//StaticCfg is the container for other static config sections
	StaticCfg struct {
		HostsFile    HostsFileStaticCfg `yaml:"HostsFile"`
		Log          LogStaticCfg       `yaml:"LogConfig"`
		Version      string             `yaml:"-"`
		ExactVersion string             `yaml:"-"`
	}

	//HostsFileStaticCfg controls which hosts file is edited and how new entries look
	HostsFileStaticCfg struct {
		Path           string `yaml:"Path"`
		BackupSuffix   string `yaml:"BackupSuffix" default:".bak"`
		DefaultComment string `yaml:"DefaultComment" default:"Added by hostman"`
		LocalAddress   string `yaml:"LocalAddress" default:"127.0.0.1"`
	}

	//LogStaticCfg contains the configuration for logging
	LogStaticCfg struct {
		LogLevel  int    `yaml:"LogLevel" default:"1"`
		LogPath   string `yaml:"LogPath" default:"$HOME/.hostman/logs"`
		LogToFile bool   `yaml:"LogToFile"`
	}
)

// parseStaticConfig deserializes yaml data over the values already in config
func parseStaticConfig(cfgFile []byte, config *StaticCfg) error {
	return yaml.Unmarshal(cfgFile, config)
}

// finishStaticConfig fills in values which cannot be expressed as
// default tags, expands environment variables and records the version
func finishStaticConfig(config *StaticCfg) {
	if config.HostsFile.Path == "" {
		config.HostsFile.Path = DefaultHostsPath()
	}

	// expand env variables, config is a pointer
	// so we have to call elem on the reflect value
	expandConfig(reflect.ValueOf(config).Elem())

	// grab the version constants set by the build process
	config.Version = Version
	config.ExactVersion = ExactVersion
}

// DefaultHostsPath returns the location of the system hosts file
func DefaultHostsPath() string {
	if runtime.GOOS == "windows" {
		windir := os.Getenv("SystemRoot")
		if windir == "" {
			windir = `C:\Windows`
		}
		return filepath.Join(windir, "System32", "drivers", "etc", "hosts")
	}
	return "/etc/hosts"
}
