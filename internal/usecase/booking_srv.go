package usecase

import (
	"context"
	"fmt"

	"github.com/idoziv15/popcorn-palace-api/internal/data/entity"
	"github.com/idoziv15/popcorn-palace-api/internal/data/repository"
	"github.com/idoziv15/popcorn-palace-api/internal/dto/request"
	"github.com/idoziv15/popcorn-palace-api/internal/dto/response"
	"github.com/idoziv15/popcorn-palace-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingService allocates seats on showtimes. A seat number is any
// positive integer; there is no capacity model. The seat-uniqueness
// check here is the fast path, the unique constraint on
// (showtime_id, seat_number) decides races.
type BookingService interface {
	GetBookings(ctx context.Context) ([]response.BookingResponse, error)
	GetBookingByID(ctx context.Context, bookingID uuid.UUID) (*response.BookingResponse, error)
	BookSeat(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID) error
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) GetBookings(ctx context.Context) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get bookings", zap.Error(err))
		return nil, fmt.Errorf("get bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		showtime, err := s.repo.Showtime.FindByID(ctx, booking.ShowtimeID)
		if err != nil {
			s.log.Warn("Failed to get showtime for booking",
				zap.Error(err),
				zap.String("booking_id", booking.ID.String()),
			)
		}
		bookingResponses[i] = response.BookingToResponse(booking, showtime)
	}

	return bookingResponses, nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID uuid.UUID) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		s.log.Error("Failed to get booking by ID",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("get booking by id: %w", err)
	}

	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", bookingID.String(), repository.ErrNotFound)
	}

	showtime, err := s.repo.Showtime.FindByID(ctx, booking.ShowtimeID)
	if err != nil {
		s.log.Warn("Failed to get showtime for booking",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
	}

	resp := response.BookingToResponse(booking, showtime)
	return &resp, nil
}

func (s *bookingService) BookSeat(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Book seat validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", repository.ErrValidation, utils.FormatValidationErrors(errs))
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: userId must be a valid UUID", repository.ErrValidation)
	}

	// Showtime must still exist at booking time
	showtime, err := s.repo.Showtime.FindByID(ctx, req.ShowtimeID)
	if err != nil {
		return nil, fmt.Errorf("check showtime for booking: %w", err)
	}
	if showtime == nil {
		return nil, fmt.Errorf("showtime %d: %w", req.ShowtimeID, repository.ErrInvalidReference)
	}

	// Fast-path seat check. Two bookings can still race past this;
	// the unique constraint on insert settles it.
	taken, err := s.repo.Booking.ExistsBySeat(ctx, req.ShowtimeID, req.SeatNumber)
	if err != nil {
		return nil, fmt.Errorf("check seat availability: %w", err)
	}
	if taken {
		s.log.Warn("Seat already booked",
			zap.Int64("showtime_id", req.ShowtimeID),
			zap.Int("seat_number", req.SeatNumber),
		)
		return nil, fmt.Errorf("seat %d on showtime %d: %w",
			req.SeatNumber, req.ShowtimeID, repository.ErrSeatTaken)
	}

	booking := &entity.Booking{
		ID:         uuid.New(),
		ShowtimeID: req.ShowtimeID,
		SeatNumber: req.SeatNumber,
		UserID:     userID,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Ticket booked",
		zap.String("booking_id", booking.ID.String()),
		zap.Int64("showtime_id", booking.ShowtimeID),
		zap.Int("seat_number", booking.SeatNumber),
		zap.String("user_id", booking.UserID.String()),
	)

	resp := response.BookingToResponse(booking, showtime)
	return &resp, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID uuid.UUID) error {
	// Hard delete, the seat becomes bookable again immediately
	if err := s.repo.Booking.Delete(ctx, bookingID); err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}

	s.log.Info("Booking cancelled", zap.String("booking_id", bookingID.String()))
	return nil
}
