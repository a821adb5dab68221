package resources

import (
	"bytes"
	"io/ioutil"
	"testing"

	"github.com/lucascaro/hostman/config"
)

//InitTestingResources creates a default testing resource bundle editing
//the hosts file at hostsPath. Command output is collected in the
//returned buffer and log output is discarded.
func InitTestingResources(t *testing.T, hostsPath string) (*Resources, *bytes.Buffer) {
	conf, err := config.LoadTestingConfig(hostsPath)
	if err != nil {
		t.Fatal(err)
	}

	// Fire up the logging system
	logger := initLogger(&conf.S.Log, ioutil.Discard)

	out := new(bytes.Buffer)
	return newResources(conf, logger, out), out
}
