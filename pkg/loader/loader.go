// Package loader drives division extraction across scraped transcript
// files: it resolves file paths by house and date, walks date ranges,
// feeds parsed documents to the extraction engine, and hands the
// resulting records to the division store. A transcript that is
// simply absent for a house and date is a normal outcome; malformed
// markup is not, and is surfaced per document without stopping the
// run.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jamezpolley/publicwhip/pkg/debate"
	"github.com/jamezpolley/publicwhip/pkg/divisions"
	"github.com/jamezpolley/publicwhip/pkg/store"
)

// dateLayout is the transcript file naming convention.
const dateLayout = "2006-01-02"

// Loader processes transcript files for a configured data directory,
// lookup, and store.
type Loader struct {
	// DataDir is the root of the transcript tree.
	DataDir string

	// Lookup resolves speaker identifiers. May be nil.
	Lookup divisions.MemberLookup

	// Store receives the extracted records.
	Store store.DivisionStore

	// Out receives progress reporting. Defaults to io.Discard.
	Out io.Writer
}

// Result reports the outcome of processing one transcript file.
type Result struct {
	// Path is the transcript file path.
	Path string

	// House and Date identify the sitting.
	House divisions.House
	Date  string

	// Found is false when no transcript exists for this house and
	// date. That is a normal outcome, not an error.
	Found bool

	// Divisions is the number of records extracted and stored.
	Divisions int

	// Warnings lists non-fatal anomalies found during extraction.
	Warnings []divisions.Warning
}

// Summary aggregates a run over a date range.
type Summary struct {
	Documents int
	Missing   int
	Divisions int
	Warnings  int

	// Failures lists documents aborted by a StructuralError or a
	// store failure, one message each.
	Failures []string
}

// TranscriptPath resolves the file path for a house and date.
func (l *Loader) TranscriptPath(house divisions.House, date string) string {
	return filepath.Join(l.DataDir, string(house)+"_debates", date+".xml")
}

// LoadDate processes the transcript for one house and date. A missing
// file yields a Result with Found false and no error.
func (l *Loader) LoadDate(ctx context.Context, house divisions.House, date string) (*Result, error) {
	path := l.TranscriptPath(house, date)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Result{Path: path, House: house, Date: date, Found: false}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read transcript %s: %w", path, err)
	}

	return l.process(ctx, path, house, date, data)
}

// LoadPath processes a transcript file directly, inferring the house
// and date from its location. Used by watch mode.
func (l *Loader) LoadPath(ctx context.Context, path string) (*Result, error) {
	house, date, err := splitTranscriptPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read transcript %s: %w", path, err)
	}
	return l.process(ctx, path, house, date, data)
}

// process parses, extracts, and stores one document.
func (l *Loader) process(ctx context.Context, path string, house divisions.House, date string, data []byte) (*Result, error) {
	result := &Result{Path: path, House: house, Date: date, Found: true}

	doc, err := debate.Parse(data)
	if err != nil {
		return nil, err
	}

	extractor := &divisions.Extractor{
		Lookup: l.Lookup,
		Warn: func(w divisions.Warning) {
			result.Warnings = append(result.Warnings, w)
			fmt.Fprintf(l.out(), "warning: %s %s: %s\n", w.DivisionGID, w.Field, w.Msg)
		},
	}

	records, err := extractor.ExtractAll(doc, house)
	if err != nil {
		return nil, err
	}

	for _, record := range records {
		if err := l.Store.UpsertDivision(ctx, record); err != nil {
			return nil, err
		}
	}

	result.Divisions = len(records)
	fmt.Fprintf(l.out(), "loaded %s: %d division(s)\n", path, result.Divisions)
	return result, nil
}

// LoadRange processes every configured house for every date in
// [from, to]. A StructuralError or store failure aborts that document
// only; it is recorded in the summary and the run continues. Context
// cancellation stops the run.
func (l *Loader) LoadRange(ctx context.Context, from, to string, houses []divisions.House) (*Summary, error) {
	dates, err := DatesBetween(from, to)
	if err != nil {
		return nil, err
	}

	summary := &Summary{}
	for _, date := range dates {
		for _, house := range houses {
			if err := ctx.Err(); err != nil {
				return summary, err
			}

			result, err := l.LoadDate(ctx, house, date)
			if err != nil {
				message := fmt.Sprintf("%s %s: %v", house, date, err)
				summary.Failures = append(summary.Failures, message)
				fmt.Fprintf(l.out(), "error: %s\n", message)
				continue
			}
			if !result.Found {
				summary.Missing++
				continue
			}

			summary.Documents++
			summary.Divisions += result.Divisions
			summary.Warnings += len(result.Warnings)
		}
	}
	return summary, nil
}

// DatesBetween expands an inclusive date range into its days.
func DatesBetween(from, to string) ([]string, error) {
	start, err := time.Parse(dateLayout, from)
	if err != nil {
		return nil, fmt.Errorf("invalid from date %q: %w", from, err)
	}
	end, err := time.Parse(dateLayout, to)
	if err != nil {
		return nil, fmt.Errorf("invalid to date %q: %w", to, err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("date range ends (%s) before it starts (%s)", to, from)
	}

	var dates []string
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		dates = append(dates, day.Format(dateLayout))
	}
	return dates, nil
}

// FormatSummary formats a run summary for display.
func FormatSummary(summary *Summary) string {
	var result string

	result += fmt.Sprintf("Division Load Summary\n")
	result += fmt.Sprintf("=====================\n\n")
	result += fmt.Sprintf("Documents processed: %d\n", summary.Documents)
	result += fmt.Sprintf("Documents absent: %d\n", summary.Missing)
	result += fmt.Sprintf("Divisions stored: %d\n", summary.Divisions)
	result += fmt.Sprintf("Warnings: %d\n", summary.Warnings)

	if len(summary.Failures) > 0 {
		result += fmt.Sprintf("\nFailed documents (%d):\n", len(summary.Failures))
		for _, failure := range summary.Failures {
			result += fmt.Sprintf("  - %s\n", failure)
		}
	}
	return result
}

// splitTranscriptPath recovers the house and date from a transcript
// file path of the form <dir>/<house>_debates/<date>.xml.
func splitTranscriptPath(path string) (divisions.House, string, error) {
	directory := filepath.Base(filepath.Dir(path))
	houseName := strings.TrimSuffix(directory, "_debates")
	if houseName == directory {
		return "", "", fmt.Errorf("transcript %s is not inside a *_debates directory", path)
	}
	house, err := divisions.ParseHouse(houseName)
	if err != nil {
		return "", "", fmt.Errorf("transcript %s: %w", path, err)
	}

	date := strings.TrimSuffix(filepath.Base(path), ".xml")
	if _, err := time.Parse(dateLayout, date); err != nil {
		return "", "", fmt.Errorf("transcript %s has no date in its name: %w", path, err)
	}
	return house, date, nil
}

func (l *Loader) out() io.Writer {
	if l.Out != nil {
		return l.Out
	}
	return io.Discard
}
