package request

type CreateMovieRequest struct {
	Title       string  `json:"title" validate:"required"`
	Genre       string  `json:"genre" validate:"required"`
	Duration    int     `json:"duration" validate:"required,min=1"`
	Rating      float64 `json:"rating" validate:"gte=0,lte=10"`
	ReleaseYear int     `json:"releaseYear" validate:"required,min=1900"`
}

type UpdateMovieRequest struct {
	Title       *string  `json:"title" validate:"omitempty,min=1"`
	Genre       *string  `json:"genre" validate:"omitempty,min=1"`
	Duration    *int     `json:"duration" validate:"omitempty,min=1"`
	Rating      *float64 `json:"rating" validate:"omitempty,gte=0,lte=10"`
	ReleaseYear *int     `json:"releaseYear" validate:"omitempty,min=1900"`
}
