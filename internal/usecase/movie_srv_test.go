package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/idoziv15/popcorn-palace-api/internal/data/repository"
	"github.com/idoziv15/popcorn-palace-api/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMovie_Success(t *testing.T) {
	svc := newTestService(t)

	movie := createTestMovie(t, svc)
	assert.NotZero(t, movie.ID)
	assert.Equal(t, "Interstellar", movie.Title)
	assert.Equal(t, 2014, movie.ReleaseYear)
}

func TestCreateMovie_ValidationBounds(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name string
		req  request.CreateMovieRequest
	}{
		{"missing title", request.CreateMovieRequest{
			Genre: "Drama", Duration: 120, Rating: 7, ReleaseYear: 2000,
		}},
		{"zero duration", request.CreateMovieRequest{
			Title: "X", Genre: "Drama", Duration: 0, Rating: 7, ReleaseYear: 2000,
		}},
		{"rating above 10", request.CreateMovieRequest{
			Title: "X", Genre: "Drama", Duration: 120, Rating: 10.5, ReleaseYear: 2000,
		}},
		{"release year before 1900", request.CreateMovieRequest{
			Title: "X", Genre: "Drama", Duration: 120, Rating: 7, ReleaseYear: 1800,
		}},
		{"release year in the future", request.CreateMovieRequest{
			Title: "X", Genre: "Drama", Duration: 120, Rating: 7,
			ReleaseYear: time.Now().Year() + 1,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Movie.CreateMovie(context.Background(), &tt.req)
			assert.ErrorIs(t, err, repository.ErrValidation)
		})
	}
}

func TestGetMovie_NotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Movie.GetMovieByID(context.Background(), 42)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGetMovies(t *testing.T) {
	svc := newTestService(t)
	createTestMovie(t, svc)
	createTestMovie(t, svc)

	movies, err := svc.Movie.GetMovies(context.Background())
	require.NoError(t, err)
	assert.Len(t, movies, 2)
}

func TestUpdateMovie_PartialFields(t *testing.T) {
	svc := newTestService(t)
	movie := createTestMovie(t, svc)

	rating := 9.1
	updated, err := svc.Movie.UpdateMovie(context.Background(), movie.ID,
		&request.UpdateMovieRequest{Rating: &rating})
	require.NoError(t, err)

	assert.Equal(t, 9.1, updated.Rating)
	assert.Equal(t, movie.Title, updated.Title)
	assert.Equal(t, movie.Duration, updated.Duration)
}

func TestUpdateMovie_NotFound(t *testing.T) {
	svc := newTestService(t)

	title := "Nope"
	_, err := svc.Movie.UpdateMovie(context.Background(), 42,
		&request.UpdateMovieRequest{Title: &title})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteMovie_NotFound(t *testing.T) {
	svc := newTestService(t)

	err := svc.Movie.DeleteMovie(context.Background(), 42)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteMovie_CascadesShowtimesAndBookings(t *testing.T) {
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

	require.NoError(t, svc.Movie.DeleteMovie(context.Background(), movie.ID))

	_, err = svc.Showtime.GetShowtimeByID(context.Background(), showtime.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.Booking.GetBookingByID(context.Background(), mustUUID(t, booking.ID))
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
