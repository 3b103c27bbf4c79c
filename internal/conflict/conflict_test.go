package conflict

import (
	"testing"
	"time"

	"github.com/idoziv15/popcorn-palace-api/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func at(hour, min int) time.Time {
	return time.Date(2024, 3, 1, hour, min, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		existingStart, existingEnd time.Time
		newStart, newEnd           time.Time
		want                       bool
	}{
		{"fully inside", at(18, 30), at(20, 30), at(19, 0), at(20, 0), true},
		{"fully around", at(19, 0), at(20, 0), at(18, 30), at(20, 30), true},
		{"overlaps start", at(18, 30), at(20, 30), at(17, 0), at(19, 0), true},
		{"overlaps end", at(18, 30), at(20, 30), at(20, 0), at(21, 0), true},
		{"identical", at(18, 30), at(20, 30), at(18, 30), at(20, 30), true},
		{"before, gap", at(18, 30), at(20, 30), at(16, 0), at(17, 0), false},
		{"after, gap", at(18, 30), at(20, 30), at(21, 0), at(22, 0), false},
		// Touching intervals conflict: boundaries are inclusive
		{"back to back after", at(18, 30), at(20, 30), at(20, 30), at(22, 0), true},
		{"back to back before", at(18, 30), at(20, 30), at(17, 0), at(18, 30), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(tt.existingStart, tt.existingEnd, tt.newStart, tt.newEnd)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindOverlap(t *testing.T) {
	showtimes := []*entity.Showtime{
		{ID: 1, Theater: "IMAX 1", StartTime: at(10, 0), EndTime: at(12, 0)},
		{ID: 2, Theater: "IMAX 1", StartTime: at(18, 30), EndTime: at(20, 30)},
	}

	hit := FindOverlap(showtimes, at(19, 0), at(21, 0))
	if assert.NotNil(t, hit) {
		assert.Equal(t, int64(2), hit.ID)
	}

	assert.Nil(t, FindOverlap(showtimes, at(13, 0), at(14, 0)))
	assert.Nil(t, FindOverlap(nil, at(13, 0), at(14, 0)))
}

func TestSeatTaken(t *testing.T) {
	bookings := []*entity.Booking{
		{ID: uuid.New(), ShowtimeID: 1, SeatNumber: 2},
		{ID: uuid.New(), ShowtimeID: 2, SeatNumber: 5},
	}

	assert.True(t, SeatTaken(bookings, 1, 2))
	assert.False(t, SeatTaken(bookings, 1, 5), "same seat on another showtime is free")
	assert.False(t, SeatTaken(bookings, 2, 2))
	assert.False(t, SeatTaken(nil, 1, 2))
}
