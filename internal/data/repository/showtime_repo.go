package repository

import (
	"context"
	"fmt"

	"github.com/idoziv15/popcorn-palace-api/internal/data/entity"
	"github.com/idoziv15/popcorn-palace-api/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ShowtimeRepository interface {
	Create(ctx context.Context, showtime *entity.Showtime) error
	FindByID(ctx context.Context, id int64) (*entity.Showtime, error)
	FindAll(ctx context.Context) ([]*entity.Showtime, error)
	FindByTheater(ctx context.Context, theater string) ([]*entity.Showtime, error)
	Update(ctx context.Context, showtime *entity.Showtime) error
	Delete(ctx context.Context, id int64) error
}

type showtimeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewShowtimeRepository(db database.PgxIface, log *zap.Logger) ShowtimeRepository {
	return &showtimeRepository{
		db:  db,
		log: log.With(zap.String("repository", "showtime")),
	}
}

func (r *showtimeRepository) Create(ctx context.Context, showtime *entity.Showtime) error {
	query := `
		INSERT INTO showtimes (movie_id, theater, start_time, end_time, price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		showtime.MovieID,
		showtime.Theater,
		showtime.StartTime,
		showtime.EndTime,
		showtime.Price,
	).Scan(&showtime.ID)

	if err != nil {
		if translated := translateConstraint(err); translated != err {
			return fmt.Errorf("create showtime in %s: %w", showtime.Theater, translated)
		}
		r.log.Error("Failed to create showtime",
			zap.Error(err),
			zap.Int64("movie_id", showtime.MovieID),
			zap.String("theater", showtime.Theater),
		)
		return fmt.Errorf("create showtime for movie %d in %s: %w",
			showtime.MovieID, showtime.Theater, err)
	}

	return nil
}

func (r *showtimeRepository) FindByID(ctx context.Context, id int64) (*entity.Showtime, error) {
	query := `
		SELECT id, movie_id, theater, start_time, end_time, price
		FROM showtimes
		WHERE id = $1
	`

	var showtime entity.Showtime
	err := r.db.QueryRow(ctx, query, id).Scan(
		&showtime.ID,
		&showtime.MovieID,
		&showtime.Theater,
		&showtime.StartTime,
		&showtime.EndTime,
		&showtime.Price,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find showtime by ID",
			zap.Error(err),
			zap.Int64("showtime_id", id),
		)
		return nil, fmt.Errorf("find showtime by ID %d: %w", id, err)
	}

	return &showtime, nil
}

func (r *showtimeRepository) FindAll(ctx context.Context) ([]*entity.Showtime, error) {
	query := `
		SELECT id, movie_id, theater, start_time, end_time, price
		FROM showtimes
		ORDER BY theater, start_time
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find showtimes", zap.Error(err))
		return nil, fmt.Errorf("find showtimes: %w", err)
	}
	defer rows.Close()

	return scanShowtimes(rows)
}

func (r *showtimeRepository) FindByTheater(ctx context.Context, theater string) ([]*entity.Showtime, error) {
	// Exact string match on the theater label, fast path for the
	// overlap check
	query := `
		SELECT id, movie_id, theater, start_time, end_time, price
		FROM showtimes
		WHERE theater = $1
		ORDER BY start_time
	`

	rows, err := r.db.Query(ctx, query, theater)
	if err != nil {
		r.log.Error("Failed to find showtimes by theater",
			zap.Error(err),
			zap.String("theater", theater),
		)
		return nil, fmt.Errorf("find showtimes in theater %s: %w", theater, err)
	}
	defer rows.Close()

	return scanShowtimes(rows)
}

func (r *showtimeRepository) Update(ctx context.Context, showtime *entity.Showtime) error {
	query := `
		UPDATE showtimes
		SET movie_id = $2, theater = $3, start_time = $4, end_time = $5, price = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		showtime.ID,
		showtime.MovieID,
		showtime.Theater,
		showtime.StartTime,
		showtime.EndTime,
		showtime.Price,
	)

	if err != nil {
		if translated := translateConstraint(err); translated != err {
			return fmt.Errorf("update showtime %d: %w", showtime.ID, translated)
		}
		r.log.Error("Failed to update showtime",
			zap.Error(err),
			zap.Int64("showtime_id", showtime.ID),
		)
		return fmt.Errorf("update showtime %d: %w", showtime.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("showtime %d: %w", showtime.ID, ErrNotFound)
	}

	return nil
}

func (r *showtimeRepository) Delete(ctx context.Context, id int64) error {
	// Bookings go with the showtime via ON DELETE CASCADE
	query := `DELETE FROM showtimes WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete showtime",
			zap.Error(err),
			zap.Int64("showtime_id", id),
		)
		return fmt.Errorf("delete showtime %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("showtime %d: %w", id, ErrNotFound)
	}

	r.log.Info("Showtime deleted", zap.Int64("showtime_id", id))
	return nil
}

func scanShowtimes(rows pgx.Rows) ([]*entity.Showtime, error) {
	var showtimes []*entity.Showtime
	for rows.Next() {
		var showtime entity.Showtime
		err := rows.Scan(
			&showtime.ID,
			&showtime.MovieID,
			&showtime.Theater,
			&showtime.StartTime,
			&showtime.EndTime,
			&showtime.Price,
		)
		if err != nil {
			return nil, fmt.Errorf("scan showtime row: %w", err)
		}
		showtimes = append(showtimes, &showtime)
	}

	return showtimes, nil
}
