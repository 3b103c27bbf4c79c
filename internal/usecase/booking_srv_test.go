package usecase_test

import (
	"context"
	"testing"

	"github.com/idoziv15/popcorn-palace-api/internal/data/repository"
	"github.com/idoziv15/popcorn-palace-api/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	userOne   = "84438967-f68f-4fa0-b620-0f08217e76af"
	userTwo   = "6966f5ad-7b7c-43ab-8bbd-9ba5be2ba4c5"
	userThree = "2c18e6e3-6c2c-4c6e-b0a5-4a05a0f9b7a1"
)

func TestBookSeat_Success(t *testing.T) {
	svc := newTestService(t)
	movie := createTestMovie(t, svc)
	showtime := createTestShowtime(t, svc, movie.ID,
		"IMAX 1", "2024-03-01T18:30:00Z", "2024-03-01T20:30:00Z")

	booking, err := svc.Booking.BookSeat(context.Background(), &request.CreateBookingRequest{
		ShowtimeID: showtime.ID,
		SeatNumber: 2,
		UserID:     userOne,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, showtime.ID, booking.ShowtimeID)
	assert.Equal(t, 2, booking.SeatNumber)
	assert.Equal(t, userOne, booking.UserID)
	require.NotNil(t, booking.Showtime)
	assert.Equal(t, "IMAX 1", booking.Showtime.Theater)
}

func TestBookSeat_SeatTaken(t *testing.T) {
	svc := newTestService(t)
	movie := createTestMovie(t, svc)
	showtime := createTestShowtime(t, svc, movie.ID,
		"IMAX 1", "2024-03-01T18:30:00Z", "2024-03-01T20:30:00Z")

	_, err := svc.Booking.BookSeat(context.Background(), &request.CreateBookingRequest{
		ShowtimeID: showtime.ID,
		SeatNumber: 2,
		UserID:     userOne,
	})
	require.NoError(t, err)

	// Same seat, different user
	_, err = svc.Booking.BookSeat(context.Background(), &request.CreateBookingRequest{
		ShowtimeID: showtime.ID,
		SeatNumber: 2,
		UserID:     userTwo,
	})
	assert.ErrorIs(t, err, repository.ErrSeatTaken)

	// Another seat is still free
	_, err = svc.Booking.BookSeat(context.Background(), &request.CreateBookingRequest{
		ShowtimeID: showtime.ID,
		SeatNumber: 3,
		UserID:     userTwo,
	})
	assert.NoError(t, err)
}

func TestBookSeat_FreedAfterCancellation(t *testing.T) {
	svc := newTestService(t)
	movie := createTestMovie(t, svc)
	showtime := createTestShowtime(t, svc, movie.ID,
		"IMAX 1", "2024-03-01T18:30:00Z", "2024-03-01T20:30:00Z")

	booking, err := svc.Booking.BookSeat(context.Background(), &request.CreateBookingRequest{
		ShowtimeID: showtime.ID,
		SeatNumber: 2,
		UserID:     userOne,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Booking.CancelBooking(context.Background(), mustUUID(t, booking.ID)))

	rebooked, err := svc.Booking.BookSeat(context.Background(), &request.CreateBookingRequest{
		ShowtimeID: showtime.ID,
		SeatNumber: 2,
		UserID:     userThree,
	})
	require.NoError(t, err)
	assert.Equal(t, userThree, rebooked.UserID)
}

func TestBookSeat_DeletedShowtime(t *testing.T) {
	svc := newTestService(t)
	movie := createTestMovie(t, svc)
	showtime := createTestShowtime(t, svc, movie.ID,
		"IMAX 1", "2024-03-01T18:30:00Z", "2024-03-01T20:30:00Z")

	require.NoError(t, svc.Showtime.DeleteShowtime(context.Background(), showtime.ID))

	_, err := svc.Booking.BookSeat(context.Background(), &request.CreateBookingRequest{
		ShowtimeID: showtime.ID,
		SeatNumber: 2,
		UserID:     userOne,
	})
	assert.ErrorIs(t, err, repository.ErrInvalidReference)
}

func TestBookSeat_InvalidUserID(t *testing.T) {
	svc := newTestService(t)
	movie := createTestMovie(t, svc)
	showtime := createTestShowtime(t, svc, movie.ID,
		"IMAX 1", "2024-03-01T18:30:00Z", "2024-03-01T20:30:00Z")

	_, err := svc.Booking.BookSeat(context.Background(), &request.CreateBookingRequest{
		ShowtimeID: showtime.ID,
		SeatNumber: 2,
		UserID:     "not-a-uuid",
	})
	assert.ErrorIs(t, err, repository.ErrValidation)
}

func TestGetBooking_NotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Booking.GetBookingByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCancelBooking_NotFound(t *testing.T) {
	svc := newTestService(t)

	err := svc.Booking.CancelBooking(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGetBookings_IncludesShowtime(t *testing.T) {
	svc := newTestService(t)
	movie := createTestMovie(t, svc)
	showtime := createTestShowtime(t, svc, movie.ID,
		"IMAX 1", "2024-03-01T18:30:00Z", "2024-03-01T20:30:00Z")

	_, err := svc.Booking.BookSeat(context.Background(), &request.CreateBookingRequest{
		ShowtimeID: showtime.ID,
		SeatNumber: 2,
		UserID:     userOne,
	})
	require.NoError(t, err)

	bookings, err := svc.Booking.GetBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	require.NotNil(t, bookings[0].Showtime)
	assert.Equal(t, showtime.ID, bookings[0].Showtime.ID)
}
