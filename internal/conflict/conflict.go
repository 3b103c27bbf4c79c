// Package conflict holds the stateless predicates behind the two
// scheduling invariants: no overlapping showtimes per theater and no
// duplicate seat per showtime. The predicates evaluate the rows they
// are handed; the database constraints remain the source of truth
// under concurrent writes.
package conflict

import (
	"time"

	"github.com/idoziv15/popcorn-palace-api/internal/data/entity"
)

// Overlaps reports whether two time intervals share any instant.
// Boundaries are inclusive: an interval ending exactly when the other
// starts counts as overlapping. Policy choice carried over from the
// scheduling rules; the schema's closed tstzrange matches it.
func Overlaps(existingStart, existingEnd, newStart, newEnd time.Time) bool {
	return !existingStart.After(newEnd) && !existingEnd.Before(newStart)
}

// FindOverlap returns the first showtime whose interval overlaps
// [start, end], or nil. Callers pass showtimes from a single theater.
func FindOverlap(showtimes []*entity.Showtime, start, end time.Time) *entity.Showtime {
	for _, st := range showtimes {
		if Overlaps(st.StartTime, st.EndTime, start, end) {
			return st
		}
	}
	return nil
}

// SeatTaken reports whether any booking in the slice already claims
// the given seat on the given showtime.
func SeatTaken(bookings []*entity.Booking, showtimeID int64, seatNumber int) bool {
	for _, b := range bookings {
		if b.ShowtimeID == showtimeID && b.SeatNumber == seatNumber {
			return true
		}
	}
	return false
}
