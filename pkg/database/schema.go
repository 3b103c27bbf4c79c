package database

import (
	"context"
	"fmt"
)

// Schema statements applied at startup. The exclusion constraint on
// showtimes and the unique constraint on bookings are the source of
// truth for the no-overlap and seat-uniqueness invariants: two
// concurrent inserts that both pass the application-level check race
// into a deterministic constraint violation here.
//
// The time range is closed on both ends, so back-to-back showtimes
// (one's end equals the next one's start) conflict. This matches the
// application predicate in internal/conflict.
var schemaStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS btree_gist`,

	`CREATE TABLE IF NOT EXISTS movies (
		id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		genre TEXT NOT NULL,
		duration INT NOT NULL,
		rating DOUBLE PRECISION NOT NULL,
		release_year INT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS showtimes (
		id BIGSERIAL PRIMARY KEY,
		movie_id BIGINT NOT NULL REFERENCES movies(id) ON DELETE CASCADE,
		theater TEXT NOT NULL,
		start_time TIMESTAMPTZ NOT NULL,
		end_time TIMESTAMPTZ NOT NULL,
		price NUMERIC(10,2) NOT NULL,
		CONSTRAINT showtimes_no_overlap EXCLUDE USING gist (
			theater WITH =,
			tstzrange(start_time, end_time, '[]') WITH &&
		)
	)`,

	`CREATE TABLE IF NOT EXISTS bookings (
		id UUID PRIMARY KEY,
		showtime_id BIGINT NOT NULL REFERENCES showtimes(id) ON DELETE CASCADE,
		seat_number INT NOT NULL,
		user_id UUID NOT NULL,
		CONSTRAINT bookings_seat_per_showtime UNIQUE (showtime_id, seat_number)
	)`,
}

// ApplySchema creates tables and constraints if they do not exist yet
func ApplySchema(ctx context.Context, db PgxIface) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement: %w", err)
		}
	}
	return nil
}
