package hostsfile

import (
	"fmt"
	"strings"

	"github.com/lucascaro/hostman/util"
)

//MatchType selects how host names are compared against lines
type MatchType int

const (
	//Partial matches a host anywhere in the text of a line
	Partial MatchType = iota

	//Exact matches a host delimited by spaces or the line boundaries
	Exact
)

//MatchTypeFromBool returns Exact if exact is set, Partial otherwise
func MatchTypeFromBool(exact bool) MatchType {
	if exact {
		return Exact
	}
	return Partial
}

type (
	//ManagedHostsFile holds the ordered lines of a hosts file.
	//It is not safe for concurrent use.
	ManagedHostsFile struct {
		lines []Line
		name  string
	}

	//Outcome reports whether a soft-failing edit changed the file
	Outcome struct {
		Applied bool
		Reason  string
	}
)

// Applied is the Outcome of an edit which changed the file
func Applied() Outcome {
	return Outcome{Applied: true}
}

// NoOp is the Outcome of an edit which left the file untouched
func NoOp(reason string) Outcome {
	return Outcome{Reason: reason}
}

// Load parses the contents of the hosts file identified by name.
// Any text is accepted.
func Load(buffer string, name string) *ManagedHostsFile {
	return &ManagedHostsFile{
		lines: ParseFile(buffer),
		name:  name,
	}
}

// Name returns the identity the file was loaded with
func (m *ManagedHostsFile) Name() string {
	return m.name
}

// Lines returns a copy of every line in file order
func (m *ManagedHostsFile) Lines() []Line {
	lines := make([]Line, len(m.lines))
	copy(lines, m.lines)
	return lines
}

// GetMatches returns the lines whose text matches host. Comment lines
// are searched as well.
func (m *ManagedHostsFile) GetMatches(host string, matchType MatchType) []Line {
	var matches []Line
	for _, line := range m.lines {
		text := line.String()
		var found bool
		switch matchType {
		case Exact:
			found = util.ExactMatch(host, text)
		default:
			found = strings.Contains(text, host)
		}
		if found {
			matches = append(matches, line)
		}
	}
	return matches
}

// GetMultiMatch returns, in order, the hosts which match at least one line
func (m *ManagedHostsFile) GetMultiMatch(hosts []string, matchType MatchType) []string {
	var found []string
	for _, host := range hosts {
		if len(m.GetMatches(host, matchType)) > 0 {
			found = append(found, host)
		}
	}
	return found
}

// HasHost returns true if a live entry lists name
func (m *ManagedHostsFile) HasHost(name string) bool {
	return m.liveIndex(name) >= 0
}

// HasDisabledHost returns true if a comment line mentions name
func (m *ManagedHostsFile) HasDisabledHost(name string) bool {
	return m.commentIndex(name) >= 0
}

// AddLine parses text and appends it to the end of the file. Existing
// entries are not checked for duplicates.
func (m *ManagedHostsFile) AddLine(text string) error {
	line, err := ParseLine(text)
	if err != nil {
		return err
	}
	m.lines = append(m.lines, line)
	return nil
}

// RemoveHost deletes the first live entry listing name. Other hosts on
// the same line are removed along with it.
func (m *ManagedHostsFile) RemoveHost(name string) error {
	index := m.liveIndex(name)
	if index < 0 {
		return &HostNotFoundError{Host: name, File: m.name}
	}
	m.lines = append(m.lines[:index], m.lines[index+1:]...)
	return nil
}

// DisableHost comments out the first live entry listing name
func (m *ManagedHostsFile) DisableHost(name string) Outcome {
	index := m.liveIndex(name)
	if index < 0 {
		return NoOp(fmt.Sprintf("line not found for %s", name))
	}
	m.lines[index] = FormatComment(m.lines[index].String())
	return Applied()
}

// EnableHost restores the first comment line mentioning name as a
// regular line in the same position
func (m *ManagedHostsFile) EnableHost(name string) (Outcome, error) {
	index := m.commentIndex(name)
	if index < 0 {
		return NoOp(fmt.Sprintf("line not found for %s", name)), nil
	}
	line, err := ParseLine(m.lines[index].body())
	if err != nil {
		return NoOp(err.Error()), err
	}
	m.lines[index] = line
	return Applied(), nil
}

// WithoutComments returns the live entries in file order
func (m *ManagedHostsFile) WithoutComments() []Line {
	var live []Line
	for _, line := range m.lines {
		if line.Kind == AddressMapping {
			live = append(live, line)
		}
	}
	return live
}

// Contents returns the hosts file text, one line per entry, each
// terminated by a newline
func (m *ManagedHostsFile) Contents() string {
	if len(m.lines) == 0 {
		return ""
	}
	var b strings.Builder
	for _, line := range m.lines {
		b.WriteString(line.String())
		b.WriteString("\n")
	}
	return b.String()
}

func (m *ManagedHostsFile) String() string {
	return m.Contents()
}

func (m *ManagedHostsFile) liveIndex(name string) int {
	for i, line := range m.lines {
		if line.HasHost(name) {
			return i
		}
	}
	return -1
}

func (m *ManagedHostsFile) commentIndex(name string) int {
	for i, line := range m.lines {
		if line.Kind == CommentOnly && strings.Contains(line.Comment, name) {
			return i
		}
	}
	return -1
}
