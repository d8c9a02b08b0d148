// Package store persists extracted division records. The engine hands
// over an immutable record; the store upserts it by the natural key
// (date, number, house), translating the chamber name into the legacy
// storage vocabulary on the way in.
package store

import (
	"context"

	"github.com/jamezpolley/publicwhip/pkg/divisions"
)

// DivisionStore accepts extracted division records. Implementations
// upsert: an existing row for (date, number, house) has its derived
// fields replaced, otherwise a new row is created.
type DivisionStore interface {
	UpsertDivision(ctx context.Context, record *divisions.DivisionRecord) error
	Close() error
}
