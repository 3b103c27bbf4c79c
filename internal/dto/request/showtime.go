package request

// Times are ISO-8601 strings on the wire, parsed in the service.
// endTime > startTime is deliberately not enforced; the scheduler
// only applies the overlap rule.
type CreateShowtimeRequest struct {
	MovieID   int64   `json:"movieId" validate:"required,gt=0"`
	Theater   string  `json:"theater" validate:"required"`
	StartTime string  `json:"startTime" validate:"required"`
	EndTime   string  `json:"endTime" validate:"required"`
	Price     float64 `json:"price" validate:"gte=0"`
}

type UpdateShowtimeRequest struct {
	MovieID   *int64   `json:"movieId" validate:"omitempty,gt=0"`
	Theater   *string  `json:"theater" validate:"omitempty,min=1"`
	StartTime *string  `json:"startTime"`
	EndTime   *string  `json:"endTime"`
	Price     *float64 `json:"price" validate:"omitempty,gte=0"`
}
