package divisions

import (
	"regexp"

	"golang.org/x/net/html"

	"github.com/jamezpolley/publicwhip/pkg/debate"
)

// Warning reports a non-fatal format anomaly found while extracting a
// division. Warnings never abort extraction; the affected field is
// blanked and the record is still produced.
type Warning struct {
	// DivisionGID identifies the division the anomaly was found in.
	DivisionGID string

	// Field names the affected record field.
	Field string

	// Msg describes the anomaly.
	Msg string
}

// WarningFunc receives warnings as they are found. A nil WarningFunc
// discards them.
type WarningFunc func(Warning)

// Extractor derives one DivisionRecord per division node in a
// transcript. Collaborators are injected; the extractor holds no
// other state and is safe to reuse across documents.
type Extractor struct {
	// Lookup resolves speaker identifiers for speech attribution.
	// May be nil, in which case literal speaker names are used.
	Lookup MemberLookup

	// Warn receives non-fatal format warnings. May be nil.
	Warn WarningFunc
}

// ExtractAll finds every division node in the document, in document
// order, and derives a record for each. A StructuralError from any
// division aborts the whole document: no partial record set is
// returned.
func (e *Extractor) ExtractAll(doc *debate.Document, house House) ([]*DivisionRecord, error) {
	var records []*DivisionRecord
	for _, node := range doc.FindAll("division") {
		record, err := e.extract(node, house)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// extract derives the record for a single division node.
func (e *Extractor) extract(division *html.Node, house House) (*DivisionRecord, error) {
	major, err := precedingOfTag(division, majorHeadingTag)
	if err != nil {
		return nil, err
	}
	minor, err := precedingOfTag(division, minorHeadingTag)
	if err != nil {
		return nil, err
	}

	motion, err := collectMotion(division, e.Lookup)
	if err != nil {
		return nil, err
	}

	gid := debate.Attr(division, "id")
	clock, ok := canonicalClockTime(debate.Attr(division, "time"))
	if !ok {
		e.warn(Warning{
			DivisionGID: gid,
			Field:       "clock_time",
			Msg:         "unrecognized time " + debate.Attr(division, "time"),
		})
	}

	return &DivisionRecord{
		Date:      debate.Attr(division, "divdate"),
		Number:    debate.Attr(division, "divnumber"),
		House:     house,
		Name:      headingName(major, minor),
		SourceURL: debate.Attr(division, "url"),
		SourceGID: gid,
		DebateURL: debate.Attr(major, "url"),
		DebateGID: debate.Attr(major, "id"),
		Motion:    motion,
		ClockTime: clock,
	}, nil
}

func (e *Extractor) warn(w Warning) {
	if e.Warn != nil {
		e.Warn(w)
	}
}

// headingName builds the record name from the governing headings:
// each title-cased, em-dash joined when both are non-empty.
func headingName(major, minor *html.Node) string {
	majorName := TitleCase(headingText(major))
	minorName := TitleCase(headingText(minor))
	switch {
	case majorName == "":
		return minorName
	case minorName == "":
		return majorName
	}
	return majorName + " \u2014 " + minorName
}

var (
	clockHoursMinutes = regexp.MustCompile(`^\d\d:\d\d$`)
	clockShortHour    = regexp.MustCompile(`^\d:\d\d:\d\d$`)
	clockCanonical    = regexp.MustCompile(`^\d\d:\d\d:\d\d$`)
)

// canonicalClockTime normalizes a sitting time to HH:MM:SS. An HH:MM
// value gains seconds; an H:MM:SS value gains a leading zero.
// Anything that still fails the canonical pattern yields "" and a
// false second return.
func canonicalClockTime(raw string) (string, bool) {
	value := raw
	if clockHoursMinutes.MatchString(value) {
		value += ":00"
	}
	if clockShortHour.MatchString(value) {
		value = "0" + value
	}
	if clockCanonical.MatchString(value) {
		return value, true
	}
	return "", false
}
