package adaptor

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/idoziv15/popcorn-palace-api/internal/dto/request"
	"github.com/idoziv15/popcorn-palace-api/internal/usecase"
	"github.com/idoziv15/popcorn-palace-api/pkg/utils"

	"go.uber.org/zap"
)

type ShowtimeHandler struct {
	service usecase.ShowtimeService
	log     *zap.Logger
}

func NewShowtimeHandler(service usecase.ShowtimeService, log *zap.Logger) *ShowtimeHandler {
	return &ShowtimeHandler{
		service: service,
		log:     log.With(zap.String("handler", "showtime")),
	}
}

// GetShowtimes handles GET /showtimes/all
func (h *ShowtimeHandler) GetShowtimes(w http.ResponseWriter, r *http.Request) {
	showtimes, err := h.service.GetShowtimes(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get showtimes")
		return
	}

	utils.ResponseSuccess(w, "success", showtimes)
}

// GetShowtimeByID handles GET /showtimes/{id}
func (h *ShowtimeHandler) GetShowtimeByID(w http.ResponseWriter, r *http.Request) {
	showtimeID, ok := parseIDParam(w, r, "Showtime")
	if !ok {
		return
	}

	showtime, err := h.service.GetShowtimeByID(r.Context(), showtimeID)
	if err != nil {
		handleServiceError(w, h.log, err, "get showtime by ID")
		return
	}

	utils.ResponseSuccess(w, "Showtime retrieved successfully", showtime)
}

// CreateShowtime handles POST /showtimes
func (h *ShowtimeHandler) CreateShowtime(w http.ResponseWriter, r *http.Request) {
	var req request.CreateShowtimeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	showtime, err := h.service.CreateShowtime(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create showtime")
		return
	}

	utils.ResponseCreated(w, "Showtime added successfully", showtime)
}

// UpdateShowtime handles PUT /showtimes/{id}
func (h *ShowtimeHandler) UpdateShowtime(w http.ResponseWriter, r *http.Request) {
	showtimeID, ok := parseIDParam(w, r, "Showtime")
	if !ok {
		return
	}

	var req request.UpdateShowtimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	showtime, err := h.service.UpdateShowtime(r.Context(), showtimeID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update showtime")
		return
	}

	utils.ResponseSuccess(w, "Showtime updated successfully", showtime)
}

// DeleteShowtime handles DELETE /showtimes/{id}
func (h *ShowtimeHandler) DeleteShowtime(w http.ResponseWriter, r *http.Request) {
	showtimeID, ok := parseIDParam(w, r, "Showtime")
	if !ok {
		return
	}

	if err := h.service.DeleteShowtime(r.Context(), showtimeID); err != nil {
		handleServiceError(w, h.log, err, "delete showtime")
		return
	}

	utils.ResponseSuccess(w, fmt.Sprintf("Showtime with ID %d deleted successfully", showtimeID), nil)
}
