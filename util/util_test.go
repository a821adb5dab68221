package util

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileExists(t *testing.T) {
	filePath := path.Join(t.TempDir(), ".jeinwei8380243unt4u")
	file, err := os.OpenFile(filePath, os.O_RDONLY|os.O_CREATE, 0666)
	assert.Nil(t, err)
	file.Close()
	exists, err := Exists(filePath)
	assert.Nil(t, err)
	assert.True(t, exists)
	os.Remove(filePath)
	exists, err = Exists(filePath)
	assert.Nil(t, err)
	assert.False(t, exists)
}

func TestIsDir(t *testing.T) {
	dir := t.TempDir()
	assert.True(t, IsDir(dir))
	assert.False(t, IsDir(path.Join(dir, "missing")))

	filePath := path.Join(dir, "hosts")
	assert.Nil(t, os.WriteFile(filePath, []byte("127.0.0.1 localhost\n"), 0644))
	assert.False(t, IsDir(filePath))
}

func TestStringInSlice(t *testing.T) {
	list := []string{"localhost", "x.test"}
	assert.True(t, StringInSlice("x.test", list))
	assert.False(t, StringInSlice("x", list))
	assert.False(t, StringInSlice("x.test", nil))
}

func TestExactMatch(t *testing.T) {
	testCases := []struct {
		needle   string
		haystack string
		out      bool
		msg      string
	}{
		{"localhost", "127.0.0.1 localhost", true, "at end of line"},
		{"127.0.0.1", "127.0.0.1 localhost", true, "at start of line"},
		{"a", "127.0.0.1 a b", true, "in the middle"},
		{"local", "127.0.0.1 localhost", false, "prefix of a word"},
		{"host", "127.0.0.1 localhost", false, "suffix of a word"},
		{"localhost", "#127.0.0.1 localhost", true, "inside a comment line"},
		{"hostman", "127.0.0.1 a # Added by hostman", true, "inside an inline comment"},
		{"localhost", "127.0.0.1\tlocalhost", false, "tabs are not boundaries"},
		{"x.test", "127.0.0.1 xatest", false, "dots are literal"},
		{"a(b", "127.0.0.1 a(b", true, "regexp metacharacters are literal"},
	}

	for _, testCase := range testCases {
		assert.Equal(t, testCase.out, ExactMatch(testCase.needle, testCase.haystack), testCase.msg)
	}
}
