package entity

import (
	"time"
)

// Showtime is a screening of a movie in a theater over a fixed time
// window. Theater is a plain string label, not a managed resource.
type Showtime struct {
	ID        int64     `db:"id"`
	MovieID   int64     `db:"movie_id"`
	Theater   string    `db:"theater"`
	StartTime time.Time `db:"start_time"`
	EndTime   time.Time `db:"end_time"`
	Price     float64   `db:"price"`
}
