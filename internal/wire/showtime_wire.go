package wire

import (
	"github.com/idoziv15/popcorn-palace-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireShowtime(r chi.Router, showtimeHandler *adaptor.ShowtimeHandler) {
	r.Route("/showtimes", func(r chi.Router) {
		r.Get("/all", showtimeHandler.GetShowtimes)
		r.Get("/{id}", showtimeHandler.GetShowtimeByID)
		r.Post("/", showtimeHandler.CreateShowtime)
		r.Put("/{id}", showtimeHandler.UpdateShowtime)
		r.Delete("/{id}", showtimeHandler.DeleteShowtime)
	})
}
