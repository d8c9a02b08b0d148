// Package members resolves transcript speaker identifiers to member
// display names. The register is loaded from the members XML file
// published alongside the transcripts; a lookup miss is an expected
// outcome and the caller falls back to the literal speaker name in
// the markup.
package members

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Lookup resolves a speaker identifier to a display name. The second
// return is false when the identifier is unknown.
type Lookup interface {
	NameForID(id string) (string, bool)
}

// --- Members XML structures ---
// The members file shares the transcript container:
// <publicwhip> → repeated <member> elements with attribute data.

type membersFile struct {
	XMLName xml.Name      `xml:"publicwhip"`
	Members []memberEntry `xml:"member"`
}

type memberEntry struct {
	ID        string `xml:"id,attr"`
	FirstName string `xml:"firstname,attr"`
	LastName  string `xml:"lastname,attr"`
	Title     string `xml:"title,attr"`
	House     string `xml:"house,attr"`
	FromDate  string `xml:"fromdate,attr"`
	ToDate    string `xml:"todate,attr"`
}

// Directory is a Lookup backed by a parsed members file. It is
// read-only after loading.
type Directory struct {
	names map[string]string
}

// LoadDirectory reads and parses a members XML file.
func LoadDirectory(path string) (*Directory, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open members file: %w", err)
	}
	defer file.Close()

	directory, err := ParseDirectory(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse members file %s: %w", path, err)
	}
	return directory, nil
}

// ParseDirectory parses members XML from a reader.
func ParseDirectory(reader io.Reader) (*Directory, error) {
	decoder := xml.NewDecoder(reader)
	decoder.Strict = false
	decoder.CharsetReader = charsetReader

	parsed := &membersFile{}
	if err := decoder.Decode(parsed); err != nil {
		return nil, fmt.Errorf("failed to decode members XML: %w", err)
	}

	names := make(map[string]string, len(parsed.Members))
	for _, member := range parsed.Members {
		if member.ID == "" {
			continue
		}
		names[member.ID] = member.DisplayName()
	}
	return &Directory{names: names}, nil
}

// NameForID implements Lookup.
func (d *Directory) NameForID(id string) (string, bool) {
	name, ok := d.names[id]
	return name, ok
}

// Len returns the number of members in the directory.
func (d *Directory) Len() int {
	return len(d.names)
}

// DisplayName is the member's name without the honorific title.
func (m memberEntry) DisplayName() string {
	return strings.TrimSpace(strings.TrimSpace(m.FirstName) + " " + strings.TrimSpace(m.LastName))
}

// charsetReader decodes the legacy ISO-8859-1 members files.
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(charset) {
	case "", "utf-8", "us-ascii":
		return input, nil
	case "iso-8859-1", "latin-1", "latin1":
		return charmap.ISO8859_1.NewDecoder().Reader(input), nil
	}
	return nil, fmt.Errorf("unsupported members file charset %q", charset)
}
