package commands

import (
	"testing"

	"github.com/lucascaro/hostman/resources"
	"github.com/stretchr/testify/assert"
)

func TestRemoveHost(t *testing.T) {
	hostsPath := writeHosts(t, testHosts)
	res, out := resources.InitTestingResources(t, hostsPath)

	assert.Nil(t, removeHost(res, "y.test", false))
	assert.Equal(t, "Removing host y.test\n", out.String())
	assert.Equal(t, "# hosts\n127.0.0.1 localhost\n#127.0.0.3 z.test\n", readHosts(t, hostsPath))
}

func TestRemoveHostAbsent(t *testing.T) {
	hostsPath := writeHosts(t, testHosts)

	for _, host := range []string{"z.test", "missing.test"} {
		res, out := resources.InitTestingResources(t, hostsPath)
		assert.Nil(t, removeHost(res, host, false))
		assert.Equal(t, host+" not in hosts file.\n", out.String())
	}
	assert.Equal(t, testHosts, readHosts(t, hostsPath))
}
