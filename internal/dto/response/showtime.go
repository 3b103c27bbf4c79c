package response

import (
	"time"

	"github.com/idoziv15/popcorn-palace-api/internal/data/entity"
)

type ShowtimeResponse struct {
	ID        int64          `json:"id"`
	MovieID   int64          `json:"movieId"`
	Movie     *MovieResponse `json:"movie,omitempty"`
	Theater   string         `json:"theater"`
	StartTime time.Time      `json:"startTime"`
	EndTime   time.Time      `json:"endTime"`
	Price     float64        `json:"price"`
}

func ShowtimeToResponse(showtime *entity.Showtime, movie *entity.Movie) ShowtimeResponse {
	resp := ShowtimeResponse{
		ID:        showtime.ID,
		MovieID:   showtime.MovieID,
		Theater:   showtime.Theater,
		StartTime: showtime.StartTime,
		EndTime:   showtime.EndTime,
		Price:     showtime.Price,
	}
	if movie != nil {
		movieResp := MovieToResponse(movie)
		resp.Movie = &movieResp
	}
	return resp
}
