package entity

type Movie struct {
	ID          int64   `db:"id"`
	Title       string  `db:"title"`
	Genre       string  `db:"genre"`
	Duration    int     `db:"duration"`
	Rating      float64 `db:"rating"`
	ReleaseYear int     `db:"release_year"`
}
