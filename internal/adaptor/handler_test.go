package adaptor_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/idoziv15/popcorn-palace-api/internal/data/repository/inmem"
	"github.com/idoziv15/popcorn-palace-api/internal/wire"
	"github.com/idoziv15/popcorn-palace-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()
	app := wire.Wiring(inmem.New().Repository(), zap.NewNop())
	return app.Router
}

func doJSON(t *testing.T, router *chi.Mux, method, path string, body any) (*httptest.ResponseRecorder, utils.Response) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp utils.Response
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func createMovieHTTP(t *testing.T, router *chi.Mux) int64 {
	t.Helper()

	rec, resp := doJSON(t, router, http.MethodPost, "/movies", map[string]any{
		"title":       "Interstellar",
		"genre":       "Sci-Fi",
		"duration":    169,
		"rating":      8.7,
		"releaseYear": 2014,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	return int64(data["id"].(float64))
}

func createShowtimeHTTP(t *testing.T, router *chi.Mux, movieID int64, theater, start, end string) (int, int64) {
	t.Helper()

	rec, resp := doJSON(t, router, http.MethodPost, "/showtimes", map[string]any{
		"movieId":   movieID,
		"theater":   theater,
		"startTime": start,
		"endTime":   end,
		"price":     14.50,
	})
	if rec.Code != http.StatusCreated {
		return rec.Code, 0
	}

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	return rec.Code, int64(data["id"].(float64))
}

func TestMovieRoutes(t *testing.T) {
	router := newTestRouter(t)

	movieID := createMovieHTTP(t, router)

	rec, resp := doJSON(t, router, http.MethodGet, "/movies/all", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Status)

	rec, _ = doJSON(t, router, http.MethodGet, fmt.Sprintf("/movies/%d", movieID), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doJSON(t, router, http.MethodGet, "/movies/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = doJSON(t, router, http.MethodGet, "/movies/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = doJSON(t, router, http.MethodPut, fmt.Sprintf("/movies/%d", movieID), map[string]any{
		"rating": 9.1,
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/movies/%d", movieID), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/movies/%d", movieID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMovieRoutes_ValidationRejected(t *testing.T) {
	router := newTestRouter(t)

	rec, resp := doJSON(t, router, http.MethodPost, "/movies", map[string]any{
		"title":       "Bad",
		"genre":       "Drama",
		"duration":    0,
		"rating":      11.0,
		"releaseYear": 1800,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Status)
}

func TestShowtimeRoutes_ConflictMapping(t *testing.T) {
	router := newTestRouter(t)
	movieID := createMovieHTTP(t, router)

	code, showtimeID := createShowtimeHTTP(t, router, movieID,
		"IMAX 1", "2024-03-01T18:30:00Z", "2024-03-01T20:30:00Z")
	require.Equal(t, http.StatusCreated, code)

	// Overlap in the same theater maps to 409
	code, _ = createShowtimeHTTP(t, router, movieID,
		"IMAX 1", "2024-03-01T19:00:00Z", "2024-03-01T21:00:00Z")
	assert.Equal(t, http.StatusConflict, code)

	// Same window, different theater is fine
	code, _ = createShowtimeHTTP(t, router, movieID,
		"IMAX 2", "2024-03-01T19:00:00Z", "2024-03-01T21:00:00Z")
	assert.Equal(t, http.StatusCreated, code)

	// Unknown movie maps to 400
	code, _ = createShowtimeHTTP(t, router, 999,
		"IMAX 3", "2024-03-01T19:00:00Z", "2024-03-01T21:00:00Z")
	assert.Equal(t, http.StatusBadRequest, code)

	rec, _ := doJSON(t, router, http.MethodGet, fmt.Sprintf("/showtimes/%d", showtimeID), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doJSON(t, router, http.MethodGet, "/showtimes/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBookingRoutes(t *testing.T) {
	router := newTestRouter(t)
	movieID := createMovieHTTP(t, router)
	code, showtimeID := createShowtimeHTTP(t, router, movieID,
		"IMAX 1", "2024-03-01T18:30:00Z", "2024-03-01T20:30:00Z")
	require.Equal(t, http.StatusCreated, code)

	rec, resp := doJSON(t, router, http.MethodPost, "/bookings", map[string]any{
		"showtimeId": showtimeID,
		"seatNumber": 2,
		"userId":     "84438967-f68f-4fa0-b620-0f08217e76af",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	bookingID := data["id"].(string)

	// Duplicate seat maps to 409
	rec, _ = doJSON(t, router, http.MethodPost, "/bookings", map[string]any{
		"showtimeId": showtimeID,
		"seatNumber": 2,
		"userId":     "6966f5ad-7b7c-43ab-8bbd-9ba5be2ba4c5",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Malformed userId maps to 400
	rec, _ = doJSON(t, router, http.MethodPost, "/bookings", map[string]any{
		"showtimeId": showtimeID,
		"seatNumber": 3,
		"userId":     "not-a-uuid",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = doJSON(t, router, http.MethodGet, "/bookings/"+bookingID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doJSON(t, router, http.MethodGet, "/bookings/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = doJSON(t, router, http.MethodDelete, "/bookings/"+bookingID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doJSON(t, router, http.MethodDelete, "/bookings/"+bookingID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthRoute(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
