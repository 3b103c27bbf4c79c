package response

import (
	"github.com/idoziv15/popcorn-palace-api/internal/data/entity"
)

type BookingResponse struct {
	ID         string            `json:"id"`
	ShowtimeID int64             `json:"showtimeId"`
	Showtime   *ShowtimeResponse `json:"showtime,omitempty"`
	SeatNumber int               `json:"seatNumber"`
	UserID     string            `json:"userId"`
}

func BookingToResponse(booking *entity.Booking, showtime *entity.Showtime) BookingResponse {
	resp := BookingResponse{
		ID:         booking.ID.String(),
		ShowtimeID: booking.ShowtimeID,
		SeatNumber: booking.SeatNumber,
		UserID:     booking.UserID.String(),
	}
	if showtime != nil {
		showtimeResp := ShowtimeToResponse(showtime, nil)
		resp.Showtime = &showtimeResp
	}
	return resp
}
