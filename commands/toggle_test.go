package commands

import (
	"testing"

	"github.com/lucascaro/hostman/hostsfile"
	"github.com/lucascaro/hostman/resources"
	"github.com/stretchr/testify/assert"
)

func TestDisableHost(t *testing.T) {
	hostsPath := writeHosts(t, testHosts)
	res, out := resources.InitTestingResources(t, hostsPath)

	assert.Nil(t, disableHost(res, "x.test", false))
	assert.Equal(t, "Disabling host x.test\n", out.String())
	assert.Equal(t,
		"# hosts\n127.0.0.1 localhost\n#127.0.0.2 x.test y.test\n#127.0.0.3 z.test\n",
		readHosts(t, hostsPath),
	)
}

func TestDisableHostNotLive(t *testing.T) {
	hostsPath := writeHosts(t, testHosts)
	testCases := []struct {
		host string
		out  string
	}{
		{"z.test", "z.test is already disabled in hosts file.\n"},
		{"missing.test", "missing.test is not in hosts file.\n"},
	}

	for _, testCase := range testCases {
		res, out := resources.InitTestingResources(t, hostsPath)
		assert.Nil(t, disableHost(res, testCase.host, false))
		assert.Equal(t, testCase.out, out.String())
	}
	assert.Equal(t, testHosts, readHosts(t, hostsPath))
}

func TestEnableHost(t *testing.T) {
	hostsPath := writeHosts(t, testHosts)
	res, out := resources.InitTestingResources(t, hostsPath)

	assert.Nil(t, enableHost(res, "z.test", false))
	assert.Equal(t, "Enabling host z.test\n", out.String())
	assert.Equal(t,
		"# hosts\n127.0.0.1 localhost\n127.0.0.2 x.test y.test\n127.0.0.3 z.test\n",
		readHosts(t, hostsPath),
	)
}

func TestEnableHostNotDisabled(t *testing.T) {
	hostsPath := writeHosts(t, testHosts)
	testCases := []struct {
		host string
		out  string
	}{
		{"x.test", "x.test is already enabled in hosts file.\n"},
		{"missing.test", "missing.test is not in hosts file.\n"},
	}

	for _, testCase := range testCases {
		res, out := resources.InitTestingResources(t, hostsPath)
		assert.Nil(t, enableHost(res, testCase.host, false))
		assert.Equal(t, testCase.out, out.String())
	}
	assert.Equal(t, testHosts, readHosts(t, hostsPath))
}

func TestDisableEnableRoundTrip(t *testing.T) {
	hostsPath := writeHosts(t, testHosts)

	res, _ := resources.InitTestingResources(t, hostsPath)
	assert.Nil(t, disableHost(res, "y.test", false))
	res, _ = resources.InitTestingResources(t, hostsPath)
	assert.Nil(t, enableHost(res, "y.test", false))

	assert.Equal(t, testHosts, readHosts(t, hostsPath))
}

func TestApplyOutcomeNoOp(t *testing.T) {
	hostsPath := writeHosts(t, testHosts)
	res, out := resources.InitTestingResources(t, hostsPath)

	hf, err := res.LoadHostsFile()
	assert.Nil(t, err)
	assert.Nil(t, applyOutcome(res, hf, "missing.test", hostsfile.NoOp("line not found for missing.test"), false))
	assert.Equal(t, "", out.String())
	assert.Equal(t, testHosts, readHosts(t, hostsPath))
}
