package request

type CreateBookingRequest struct {
	ShowtimeID int64  `json:"showtimeId" validate:"required,gt=0"`
	SeatNumber int    `json:"seatNumber" validate:"required,gt=0"`
	UserID     string `json:"userId" validate:"required,uuid"`
}
