package usecase_test

import (
	"context"
	"testing"

	"github.com/idoziv15/popcorn-palace-api/internal/data/repository/inmem"
	"github.com/idoziv15/popcorn-palace-api/internal/dto/request"
	"github.com/idoziv15/popcorn-palace-api/internal/dto/response"
	"github.com/idoziv15/popcorn-palace-api/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func mustUUID(t *testing.T, s string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(s)
	require.NoError(t, err)
	return id
}

func newTestService(t *testing.T) *usecase.Service {
	t.Helper()
	return usecase.NewService(inmem.New().Repository(), zap.NewNop())
}

func createTestMovie(t *testing.T, svc *usecase.Service) *response.MovieResponse {
	t.Helper()
	movie, err := svc.Movie.CreateMovie(context.Background(), &request.CreateMovieRequest{
		Title:       "Interstellar",
		Genre:       "Sci-Fi",
		Duration:    169,
		Rating:      8.7,
		ReleaseYear: 2014,
	})
	require.NoError(t, err)
	return movie
}

func createTestShowtime(t *testing.T, svc *usecase.Service, movieID int64, theater, start, end string) *response.ShowtimeResponse {
	t.Helper()
	showtime, err := svc.Showtime.CreateShowtime(context.Background(), &request.CreateShowtimeRequest{
		MovieID:   movieID,
		Theater:   theater,
		StartTime: start,
		EndTime:   end,
		Price:     14.50,
	})
	require.NoError(t, err)
	return showtime
}
