package wire

import (
	"github.com/idoziv15/popcorn-palace-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	r.Route("/bookings", func(r chi.Router) {
		r.Get("/all", bookingHandler.GetBookings)
		r.Get("/{id}", bookingHandler.GetBookingByID)
		r.Post("/", bookingHandler.BookSeat)
		r.Delete("/{id}", bookingHandler.CancelBooking)
	})
}
