package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jamezpolley/publicwhip/pkg/divisions"
)

// Postgres is a DivisionStore backed by the legacy pw_division table.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres connects a division store to the database named by
// connString.
func NewPostgres(ctx context.Context, connString string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to reach database: %w", err)
	}
	return &Postgres{pool: pool}, nil
}

const upsertDivisionQuery = `
	INSERT INTO pw_division (
		division_date, division_number, house,
		division_name, source_url, debate_url,
		source_gid, debate_gid, motion, clock_time
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	ON CONFLICT (division_date, division_number, house)
	DO UPDATE SET
		division_name = EXCLUDED.division_name,
		source_url    = EXCLUDED.source_url,
		debate_url    = EXCLUDED.debate_url,
		source_gid    = EXCLUDED.source_gid,
		debate_gid    = EXCLUDED.debate_gid,
		motion        = EXCLUDED.motion,
		clock_time    = EXCLUDED.clock_time
`

// UpsertDivision implements DivisionStore.
func (s *Postgres) UpsertDivision(ctx context.Context, record *divisions.DivisionRecord) error {
	house, err := record.House.StorageName()
	if err != nil {
		return err
	}

	_, err = s.pool.Exec(ctx, upsertDivisionQuery,
		record.Date,
		record.Number,
		house,
		record.Name,
		record.SourceURL,
		record.DebateURL,
		record.SourceGID,
		record.DebateGID,
		record.Motion,
		record.ClockTime,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert division %s: %w", record.SourceGID, err)
	}
	return nil
}

// Close releases the connection pool.
func (s *Postgres) Close() error {
	s.pool.Close()
	return nil
}
