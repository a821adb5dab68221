package hostsfile

import "fmt"

type (
	//MalformedLineError is returned when text cannot be parsed as a single line
	MalformedLineError struct {
		Text string
	}

	//HostNotFoundError is returned when no live entry exists for a host
	HostNotFoundError struct {
		Host string
		File string
	}
)

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("malformed hosts line: %q", e.Text)
}

func (e *HostNotFoundError) Error() string {
	return fmt.Sprintf("host %s not found in %s", e.Host, e.File)
}
