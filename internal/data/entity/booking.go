package entity

import (
	"github.com/google/uuid"
)

// Booking claims one seat number on one showtime for one user.
// Cancellation deletes the row, there is no soft-cancel state.
type Booking struct {
	ID         uuid.UUID `db:"id"`
	ShowtimeID int64     `db:"showtime_id"`
	SeatNumber int       `db:"seat_number"`
	UserID     uuid.UUID `db:"user_id"`
}
