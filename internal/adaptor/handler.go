package adaptor

import (
	"errors"
	"net/http"

	"github.com/idoziv15/popcorn-palace-api/internal/data/repository"
	"github.com/idoziv15/popcorn-palace-api/internal/usecase"
	"github.com/idoziv15/popcorn-palace-api/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Movie    *MovieHandler
	Showtime *ShowtimeHandler
	Booking  *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Movie:    NewMovieHandler(service.Movie, log),
		Showtime: NewShowtimeHandler(service.Showtime, log),
		Booking:  NewBookingHandler(service.Booking, log),
	}
}

// handleServiceError maps the typed service errors onto HTTP status
// codes. Unexpected errors are logged with full detail and surfaced
// as a generic 500.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, repository.ErrInvalidReference):
		log.Warn(operation+" failed - invalid reference", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, repository.ErrValidation):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, repository.ErrSchedulingConflict),
		errors.Is(err, repository.ErrSeatTaken):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
