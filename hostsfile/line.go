package hostsfile

import (
	"strings"
	"unicode"

	"github.com/lucascaro/hostman/util"
)

//LineKind identifies which variant of Line is populated
type LineKind int

const (
	//Blank is an empty or whitespace only line
	Blank LineKind = iota

	//CommentOnly is a line starting with a comment marker. Disabled
	//entries are comment lines as well.
	CommentOnly

	//AddressMapping is a live entry mapping an address to host names
	AddressMapping
)

func (k LineKind) String() string {
	switch k {
	case AddressMapping:
		return "address"
	case CommentOnly:
		return "comment"
	default:
		return "blank"
	}
}

const commentMarker = "#"

type (
	//Line is a single physical line of a hosts file.
	//
	//Address and Hosts are only set for AddressMapping lines. For those,
	//Comment holds the text following the inline comment marker. For
	//CommentOnly lines Comment holds the whole line, marker included.
	Line struct {
		Kind    LineKind
		Address string
		Hosts   []string
		Comment string
	}
)

// ParseFile splits text into its physical lines and parses each one.
// A terminating newline does not produce a trailing blank line.
func ParseFile(text string) []Line {
	if text == "" {
		return nil
	}
	rawLines := strings.Split(text, "\n")
	if rawLines[len(rawLines)-1] == "" {
		rawLines = rawLines[:len(rawLines)-1]
	}

	lines := make([]Line, 0, len(rawLines))
	for _, raw := range rawLines {
		lines = append(lines, parseRaw(strings.TrimSuffix(raw, "\r")))
	}
	return lines
}

// ParseLine parses a single line of text. Text spanning more than one
// line cannot be classified and results in a *MalformedLineError.
func ParseLine(text string) (Line, error) {
	if strings.ContainsAny(text, "\r\n") {
		return Line{}, &MalformedLineError{Text: text}
	}
	return parseRaw(text), nil
}

// FormatComment wraps text as a comment line prefixed by the comment marker
func FormatComment(text string) Line {
	return Line{Kind: CommentOnly, Comment: commentMarker + text}
}

func parseRaw(raw string) Line {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Line{Kind: Blank}
	}
	if strings.HasPrefix(trimmed, commentMarker) {
		return Line{Kind: CommentOnly, Comment: raw}
	}

	line := Line{Kind: AddressMapping}
	entry := raw
	if idx := strings.Index(raw, commentMarker); idx >= 0 {
		entry = raw[:idx]
		line.Comment = strings.TrimRight(raw[idx+1:], " \t")
	}

	fields := strings.Fields(entry)
	line.Address = fields[0]
	line.Hosts = fields[1:]
	return line
}

// String renders the line in hosts file syntax. Address lines are
// normalized to single spaces between tokens.
func (l Line) String() string {
	switch l.Kind {
	case AddressMapping:
		var b strings.Builder
		b.WriteString(l.Address)
		for _, host := range l.Hosts {
			b.WriteString(" ")
			b.WriteString(host)
		}
		if l.Comment != "" {
			b.WriteString(" " + commentMarker + l.Comment)
		}
		return b.String()
	case CommentOnly:
		return l.Comment
	default:
		return ""
	}
}

// HasHost returns true if the line is a live entry for name
func (l Line) HasHost(name string) bool {
	return l.Kind == AddressMapping && util.StringInSlice(name, l.Hosts)
}

// Disabled returns true if the line is a comment which would be a
// valid address mapping if the comment marker were removed
func (l Line) Disabled() bool {
	if l.Kind != CommentOnly {
		return false
	}
	body := l.body()
	if idx := strings.Index(body, commentMarker); idx >= 0 {
		body = body[:idx]
	}
	fields := strings.Fields(body)
	return len(fields) >= 2 && util.IsIP(fields[0])
}

// body returns the comment text with the leading comment marker removed
func (l Line) body() string {
	return strings.TrimPrefix(strings.TrimLeftFunc(l.Comment, unicode.IsSpace), commentMarker)
}
