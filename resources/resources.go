package resources

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/lucascaro/hostman/config"
	"github.com/lucascaro/hostman/hostsfile"
	"github.com/lucascaro/hostman/storage"
	log "github.com/sirupsen/logrus"
)

type (
	// Resources provides a data structure for passing system Resources
	Resources struct {
		Config *config.Config
		Log    *log.Entry
		Store  storage.Persister
		Out    io.Writer
	}
)

// InitResources grabs the configuration file and intitializes the configuration data
// returning a *Resources object which has all of the necessary configuration information.
// A non-empty hostsFile overrides the configured hosts file path.
func InitResources(userConfig string, hostsFile string) *Resources {
	conf, err := config.LoadConfig(userConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to config: %s\n", err.Error())
		os.Exit(-1)
	}
	if hostsFile != "" {
		conf.S.HostsFile.Path = hostsFile
	}

	// Fire up the logging system
	logger := initLogger(&conf.S.Log, os.Stderr)
	if conf.S.Log.LogToFile {
		err = addFileLogger(logger, conf.S.Log.LogPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to start file logging: %s\n", err.Error())
		}
	}

	return newResources(conf, logger, os.Stdout)
}

// newResources bundles up the system resources. Every log entry is
// tagged with an id unique to this invocation.
func newResources(conf *config.Config, logger *log.Logger, out io.Writer) *Resources {
	entry := logger.WithField("invocation", uuid.New().String())
	return &Resources{
		Config: conf,
		Log:    entry,
		Store: storage.NewFile(
			conf.S.HostsFile.Path, conf.S.HostsFile.BackupSuffix, entry,
		),
		Out: out,
	}
}

// LoadHostsFile reads the configured hosts file into a managed hosts file
func (r *Resources) LoadHostsFile() (*hostsfile.ManagedHostsFile, error) {
	contents, err := r.Store.Read()
	if err != nil {
		return nil, err
	}
	return hostsfile.Load(contents, r.Config.S.HostsFile.Path), nil
}
