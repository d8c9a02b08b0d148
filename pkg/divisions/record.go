// Package divisions implements the division extraction engine: it
// walks a parsed transcript backward from each recorded vote to
// recover the governing debate headings and the motion text that
// preceded the vote, normalized to the legacy published format.
//
// The engine is pure: it performs no I/O, never mutates the input
// tree, and extracts each division independently of every other
// division in the document.
package divisions

import "fmt"

// House identifies the chamber a transcript belongs to. The set is
// closed: the engine handles no other values.
type House string

const (
	HouseRepresentatives House = "representatives"
	HouseSenate          House = "senate"
)

// Houses lists every chamber the engine handles.
var Houses = []House{HouseRepresentatives, HouseSenate}

// ParseHouse validates a chamber name from user input.
func ParseHouse(name string) (House, error) {
	switch House(name) {
	case HouseRepresentatives, HouseSenate:
		return House(name), nil
	}
	return "", fmt.Errorf("unknown house %q (expected %q or %q)",
		name, HouseRepresentatives, HouseSenate)
}

// StorageName translates the transcript chamber vocabulary into the
// vocabulary the legacy division store uses.
func (h House) StorageName() (string, error) {
	switch h {
	case HouseRepresentatives:
		return "commons", nil
	case HouseSenate:
		return "lords", nil
	}
	return "", fmt.Errorf("unknown house %q", string(h))
}

// DivisionRecord is the normalized output for one recorded vote. A
// record is built fresh per division node and is immutable once
// handed to the store.
type DivisionRecord struct {
	// Date is the division date, raw from the source markup.
	Date string

	// Number is the division's sequence number within the sitting.
	Number string

	// House is the chamber the division was taken in.
	House House

	// Name is the debate heading context: the nearest preceding
	// major heading, title-cased, joined to the nearest preceding
	// minor heading with an em dash when both are non-empty.
	Name string

	// SourceURL and SourceGID identify the division itself.
	SourceURL string
	SourceGID string

	// DebateURL and DebateGID identify the enclosing debate, taken
	// from the governing major heading.
	DebateURL string
	DebateGID string

	// Motion is the entity-encoded motion text that preceded the
	// vote.
	Motion string

	// ClockTime is the canonicalized HH:MM:SS sitting time, or ""
	// when the source value was unparseable.
	ClockTime string
}
