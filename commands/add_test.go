package commands

import (
	"os"
	"testing"

	"github.com/lucascaro/hostman/resources"
	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli"
)

func TestAddHosts(t *testing.T) {
	hostsPath := writeHosts(t, testHosts)
	res, out := resources.InitTestingResources(t, hostsPath)

	err := addHosts(res, addRequest{IP: "127.0.0.4", Names: "a.test,b.test"}, false)
	assert.Nil(t, err)
	assert.Equal(t,
		"Adding 127.0.0.4 a.test b.test to "+hostsPath+"\n127.0.0.4 a.test b.test # Added by hostman\n",
		out.String(),
	)
	assert.Equal(t, testHosts+"127.0.0.4 a.test b.test # Added by hostman\n", readHosts(t, hostsPath))
	assert.Equal(t, testHosts, readHosts(t, hostsPath+".bak"))
}

func TestAddHostsComment(t *testing.T) {
	hostsPath := writeHosts(t, testHosts)
	res, _ := resources.InitTestingResources(t, hostsPath)

	err := addHosts(res, addRequest{IP: "::1", Names: "v6.test", Comment: []string{"dev", "box"}}, false)
	assert.Nil(t, err)
	assert.Equal(t, testHosts+"::1 v6.test # dev box\n", readHosts(t, hostsPath))
}

func TestAddHostsLocal(t *testing.T) {
	hostsPath := writeHosts(t, testHosts)
	res, _ := resources.InitTestingResources(t, hostsPath)

	err := addHosts(res, addRequest{IP: res.Config.S.HostsFile.LocalAddress, Names: "app.test"}, false)
	assert.Nil(t, err)
	assert.Equal(t, testHosts+"127.0.0.1 app.test # Added by hostman\n", readHosts(t, hostsPath))
}

func TestAddHostsAlreadyPresent(t *testing.T) {
	hostsPath := writeHosts(t, testHosts)
	res, out := resources.InitTestingResources(t, hostsPath)

	err := addHosts(res, addRequest{IP: "127.0.0.9", Names: "new.test,y.test,z.test"}, false)
	assert.Nil(t, err)
	assert.Equal(t, "The requested host is already present: \ny.test\nz.test\n", out.String())
	assert.Equal(t, testHosts, readHosts(t, hostsPath))
	_, err = os.Stat(hostsPath + ".bak")
	assert.True(t, os.IsNotExist(err))
}

func TestAddHostsUpdate(t *testing.T) {
	hostsPath := writeHosts(t, testHosts)
	res, out := resources.InitTestingResources(t, hostsPath)

	err := addHosts(res, addRequest{IP: "127.0.0.9", Names: "x.test,z.test", Update: true}, false)
	assert.Nil(t, err)
	assert.Contains(t, out.String(), "Updating host in hosts file:")
	assert.Contains(t, out.String(), "Removing host x.test\n")
	assert.NotContains(t, out.String(), "Removing host z.test")
	assert.Equal(t,
		"# hosts\n127.0.0.1 localhost\n#127.0.0.3 z.test\n127.0.0.9 x.test z.test # Added by hostman\n",
		readHosts(t, hostsPath),
	)
}

func TestAddHostsDryRun(t *testing.T) {
	hostsPath := writeHosts(t, testHosts)
	res, out := resources.InitTestingResources(t, hostsPath)

	err := addHosts(res, addRequest{IP: "127.0.0.4", Names: "a.test"}, true)
	assert.Nil(t, err)
	assert.Contains(t, out.String(), testHosts+"127.0.0.4 a.test # Added by hostman\n")
	assert.Equal(t, testHosts, readHosts(t, hostsPath))
}

func TestAddHostsInvalidIP(t *testing.T) {
	hostsPath := writeHosts(t, testHosts)
	res, _ := resources.InitTestingResources(t, hostsPath)

	err := addHosts(res, addRequest{IP: "a.test", Names: "b.test"}, false)
	assert.IsType(t, &cli.ExitError{}, err)
	assert.Equal(t, testHosts, readHosts(t, hostsPath))
}

func TestAddHostsInvalidName(t *testing.T) {
	testCases := []string{
		"a#b",
		"a.test,,b.test",
		"a.test,",
		"a b",
		"a\tb",
	}
	for _, names := range testCases {
		hostsPath := writeHosts(t, testHosts)
		res, out := resources.InitTestingResources(t, hostsPath)

		err := addHosts(res, addRequest{IP: "1.2.3.4", Names: names}, false)
		assert.IsType(t, &cli.ExitError{}, err, names)
		assert.Equal(t, -1, err.(*cli.ExitError).ExitCode())
		assert.Empty(t, out.String())
		assert.Equal(t, testHosts, readHosts(t, hostsPath))
	}
}
