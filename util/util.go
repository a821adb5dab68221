package util

import (
	"os"
	"regexp"
)

//TimeFormat stores a correctly formatted timestamp
const TimeFormat string = "2006-01-02-T15:04:05-0700"

// Exists returns true if file or directory exists. An error is returned
// when the existence of the path could not be determined.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// IsDir returns true if argument is a directory
func IsDir(path string) bool {
	file, err := os.Stat(path)
	if err != nil {
		return false
	}
	return file.IsDir()
}

//StringInSlice returns true if the string is an element of the array
func StringInSlice(value string, list []string) bool {
	for _, entry := range list {
		if entry == value {
			return true
		}
	}
	return false
}

// ExactMatch reports whether needle appears in haystack delimited by
// the start of the text or a single space on the left and a single
// space or the end of the text on the right. The needle is matched
// literally.
func ExactMatch(needle string, haystack string) bool {
	exactMatcher := regexp.MustCompile(`(^| )` + regexp.QuoteMeta(needle) + `( |$)`)
	return exactMatcher.MatchString(haystack)
}
