package config

import (
	"fmt"
	"io/ioutil"
	"os"
	"os/user"
	"path"
	"reflect"

	"github.com/creasty/defaults"
	"github.com/lucascaro/hostman/util"
)

//userConfigPath is the location of the per user config file relative to the home directory
const userConfigPath = ".hostman/config.yaml"

//globalConfigPath is the location of the system wide config file
const globalConfigPath = "/etc/hostman/config.yaml"

type (
	//Config holds the configuration for the running system
	Config struct {
		R RunningCfg
		S StaticCfg
	}
)

// LoadConfig loads the config file at userConfig. If userConfig is empty,
// the per user config is tried first, then the global config. The
// built-in defaults are used when neither exists.
func LoadConfig(userConfig string) (*Config, error) {
	config := &Config{}

	// Initialize static config to the default values
	if err := defaults.Set(&config.S); err != nil {
		return nil, err
	}

	cfgPath, err := findConfigFile(userConfig)
	if err != nil {
		return nil, err
	}

	if cfgPath != "" {
		cfgFile, err := ioutil.ReadFile(cfgPath)
		if err != nil {
			return nil, err
		}
		// Deserialize the yaml file contents into the static config
		if err := parseStaticConfig(cfgFile, &config.S); err != nil {
			return nil, err
		}
	}

	finishStaticConfig(&config.S)

	// Use the static config to initialize the running config
	if err := initRunningConfig(&config.S, &config.R); err != nil {
		return nil, err
	}
	config.R.ConfigFile = cfgPath

	return config, nil
}

// findConfigFile returns the first config file which exists in order of
// precedence. An empty string is returned when none exists.
func findConfigFile(userConfig string) (string, error) {
	if userConfig != "" {
		exists, err := util.Exists(userConfig)
		if err != nil {
			return "", err
		}
		if !exists {
			return "", fmt.Errorf("config file %s does not exist", userConfig)
		}
		return userConfig, nil
	}

	candidates := []string{}
	// Get the user's homedir
	usr, err := user.Current()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not get user info: %s\n", err.Error())
	} else {
		candidates = append(candidates, path.Join(usr.HomeDir, userConfigPath))
	}
	candidates = append(candidates, globalConfigPath)

	for _, candidate := range candidates {
		exists, err := util.Exists(candidate)
		if err != nil {
			return "", err
		}
		if exists {
			return candidate, nil
		}
	}
	return "", nil
}

// expandConfig expands environment variables in config strings
func expandConfig(reflected reflect.Value) {
	for i := 0; i < reflected.NumField(); i++ {
		f := reflected.Field(i)
		// process sub configs
		if f.Kind() == reflect.Struct {
			expandConfig(f)
		} else if f.Kind() == reflect.String {
			f.SetString(os.ExpandEnv(f.String()))
		} else if f.Kind() == reflect.Slice && f.Type().Elem().Kind() == reflect.String {
			strs := f.Interface().([]string)
			for i, str := range strs {
				strs[i] = os.ExpandEnv(str)
			}
			f.Set(reflect.ValueOf(strs))
		}
	}
}
