package repository

import (
	"errors"

	"github.com/idoziv15/popcorn-palace-api/pkg/database"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type Repository struct {
	Movie    MovieRepository
	Showtime ShowtimeRepository
	Booking  BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Movie:    NewMovieRepository(db, log),
		Showtime: NewShowtimeRepository(db, log),
		Booking:  NewBookingRepository(db, log),
	}
}

// Postgres error codes for the constraints backing the core
// invariants
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgExclusionViolation  = "23P01"
)

// translateConstraint maps constraint violations onto the sentinel
// errors, so a lost check-then-act race surfaces as the same typed
// error the fast-path check produces.
func translateConstraint(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgUniqueViolation:
		if pgErr.ConstraintName == "bookings_seat_per_showtime" {
			return ErrSeatTaken
		}
	case pgExclusionViolation:
		if pgErr.ConstraintName == "showtimes_no_overlap" {
			return ErrSchedulingConflict
		}
	case pgForeignKeyViolation:
		return ErrInvalidReference
	}

	return err
}
