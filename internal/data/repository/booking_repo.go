package repository

import (
	"context"
	"fmt"

	"github.com/idoziv15/popcorn-palace-api/internal/data/entity"
	"github.com/idoziv15/popcorn-palace-api/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindAll(ctx context.Context) ([]*entity.Booking, error)
	ExistsBySeat(ctx context.Context, showtimeID int64, seatNumber int) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, showtime_id, seat_number, user_id)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.ShowtimeID,
		booking.SeatNumber,
		booking.UserID,
	)

	if err != nil {
		if translated := translateConstraint(err); translated != err {
			return fmt.Errorf("create booking for seat %d on showtime %d: %w",
				booking.SeatNumber, booking.ShowtimeID, translated)
		}
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.Int64("showtime_id", booking.ShowtimeID),
			zap.Int("seat_number", booking.SeatNumber),
		)
		return fmt.Errorf("create booking for seat %d on showtime %d: %w",
			booking.SeatNumber, booking.ShowtimeID, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT id, showtime_id, seat_number, user_id
		FROM bookings
		WHERE id = $1
	`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.ShowtimeID,
		&booking.SeatNumber,
		&booking.UserID,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return &booking, nil
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	query := `
		SELECT id, showtime_id, seat_number, user_id
		FROM bookings
		ORDER BY showtime_id, seat_number
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find bookings", zap.Error(err))
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.ShowtimeID,
			&booking.SeatNumber,
			&booking.UserID,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	return bookings, nil
}

func (r *bookingRepository) ExistsBySeat(ctx context.Context, showtimeID int64, seatNumber int) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM bookings WHERE showtime_id = $1 AND seat_number = $2
		)
	`

	var exists bool
	err := r.db.QueryRow(ctx, query, showtimeID, seatNumber).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check seat",
			zap.Error(err),
			zap.Int64("showtime_id", showtimeID),
			zap.Int("seat_number", seatNumber),
		)
		return false, fmt.Errorf("check seat %d on showtime %d: %w", seatNumber, showtimeID, err)
	}

	return exists, nil
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM bookings WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("delete booking %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s: %w", id.String(), ErrNotFound)
	}

	r.log.Info("Booking cancelled", zap.String("booking_id", id.String()))
	return nil
}
