// Package inmem provides an in-memory implementation of the
// repository interfaces. It emulates the database behavior the
// services rely on: conflict-aware inserts, foreign-key checks and
// cascading deletes. Used as the injected store in tests; the insert
// guards mirror the Postgres constraints, so the conflict predicates
// apply on insert the same way the schema does.
package inmem

import (
	"context"
	"fmt"
	"sync"

	"github.com/idoziv15/popcorn-palace-api/internal/conflict"
	"github.com/idoziv15/popcorn-palace-api/internal/data/entity"
	"github.com/idoziv15/popcorn-palace-api/internal/data/repository"

	"github.com/google/uuid"
)

type Store struct {
	mu sync.Mutex

	movies    map[int64]*entity.Movie
	showtimes map[int64]*entity.Showtime
	bookings  map[uuid.UUID]*entity.Booking

	nextMovieID    int64
	nextShowtimeID int64
}

func New() *Store {
	return &Store{
		movies:    make(map[int64]*entity.Movie),
		showtimes: make(map[int64]*entity.Showtime),
		bookings:  make(map[uuid.UUID]*entity.Booking),
	}
}

// Repository bundles the store into the aggregate the services take.
func (s *Store) Repository() *repository.Repository {
	return &repository.Repository{
		Movie:    (*movieStore)(s),
		Showtime: (*showtimeStore)(s),
		Booking:  (*bookingStore)(s),
	}
}

// ---------------- movies ----------------

type movieStore Store

func (s *movieStore) Create(ctx context.Context, movie *entity.Movie) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextMovieID++
	movie.ID = s.nextMovieID
	copied := *movie
	s.movies[movie.ID] = &copied
	return nil
}

func (s *movieStore) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	movie, ok := s.movies[id]
	if !ok {
		return nil, nil
	}
	copied := *movie
	return &copied, nil
}

func (s *movieStore) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var movies []*entity.Movie
	for i := int64(1); i <= s.nextMovieID; i++ {
		if movie, ok := s.movies[i]; ok {
			copied := *movie
			movies = append(movies, &copied)
		}
	}
	return movies, nil
}

func (s *movieStore) Update(ctx context.Context, movie *entity.Movie) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.movies[movie.ID]; !ok {
		return fmt.Errorf("movie %d: %w", movie.ID, repository.ErrNotFound)
	}
	copied := *movie
	s.movies[movie.ID] = &copied
	return nil
}

func (s *movieStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.movies[id]; !ok {
		return fmt.Errorf("movie %d: %w", id, repository.ErrNotFound)
	}
	delete(s.movies, id)

	// Cascade: showtimes of the movie, then their bookings
	for stID, st := range s.showtimes {
		if st.MovieID != id {
			continue
		}
		delete(s.showtimes, stID)
		(*Store)(s).dropBookingsLocked(stID)
	}
	return nil
}

// ---------------- showtimes ----------------

type showtimeStore Store

func (s *showtimeStore) Create(ctx context.Context, showtime *entity.Showtime) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.movies[showtime.MovieID]; !ok {
		return fmt.Errorf("movie %d: %w", showtime.MovieID, repository.ErrInvalidReference)
	}

	existing := (*Store)(s).showtimesInTheaterLocked(showtime.Theater)
	if conflict.FindOverlap(existing, showtime.StartTime, showtime.EndTime) != nil {
		return fmt.Errorf("create showtime in %s: %w",
			showtime.Theater, repository.ErrSchedulingConflict)
	}

	s.nextShowtimeID++
	showtime.ID = s.nextShowtimeID
	copied := *showtime
	s.showtimes[showtime.ID] = &copied
	return nil
}

func (s *showtimeStore) FindByID(ctx context.Context, id int64) (*entity.Showtime, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	showtime, ok := s.showtimes[id]
	if !ok {
		return nil, nil
	}
	copied := *showtime
	return &copied, nil
}

func (s *showtimeStore) FindAll(ctx context.Context) ([]*entity.Showtime, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var showtimes []*entity.Showtime
	for i := int64(1); i <= s.nextShowtimeID; i++ {
		if showtime, ok := s.showtimes[i]; ok {
			copied := *showtime
			showtimes = append(showtimes, &copied)
		}
	}
	return showtimes, nil
}

func (s *showtimeStore) FindByTheater(ctx context.Context, theater string) ([]*entity.Showtime, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := (*Store)(s).showtimesInTheaterLocked(theater)
	showtimes := make([]*entity.Showtime, 0, len(existing))
	for _, showtime := range existing {
		copied := *showtime
		showtimes = append(showtimes, &copied)
	}
	return showtimes, nil
}

func (s *showtimeStore) Update(ctx context.Context, showtime *entity.Showtime) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.showtimes[showtime.ID]; !ok {
		return fmt.Errorf("showtime %d: %w", showtime.ID, repository.ErrNotFound)
	}
	if _, ok := s.movies[showtime.MovieID]; !ok {
		return fmt.Errorf("movie %d: %w", showtime.MovieID, repository.ErrInvalidReference)
	}
	copied := *showtime
	s.showtimes[showtime.ID] = &copied
	return nil
}

func (s *showtimeStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.showtimes[id]; !ok {
		return fmt.Errorf("showtime %d: %w", id, repository.ErrNotFound)
	}
	delete(s.showtimes, id)
	(*Store)(s).dropBookingsLocked(id)
	return nil
}

// ---------------- bookings ----------------

type bookingStore Store

func (s *bookingStore) Create(ctx context.Context, booking *entity.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.showtimes[booking.ShowtimeID]; !ok {
		return fmt.Errorf("showtime %d: %w", booking.ShowtimeID, repository.ErrInvalidReference)
	}

	if conflict.SeatTaken((*Store)(s).bookingsLocked(), booking.ShowtimeID, booking.SeatNumber) {
		return fmt.Errorf("seat %d on showtime %d: %w",
			booking.SeatNumber, booking.ShowtimeID, repository.ErrSeatTaken)
	}

	copied := *booking
	s.bookings[booking.ID] = &copied
	return nil
}

func (s *bookingStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.bookings[id]
	if !ok {
		return nil, nil
	}
	copied := *booking
	return &copied, nil
}

func (s *bookingStore) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings := make([]*entity.Booking, 0, len(s.bookings))
	for _, booking := range s.bookings {
		copied := *booking
		bookings = append(bookings, &copied)
	}
	return bookings, nil
}

func (s *bookingStore) ExistsBySeat(ctx context.Context, showtimeID int64, seatNumber int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return conflict.SeatTaken((*Store)(s).bookingsLocked(), showtimeID, seatNumber), nil
}

func (s *bookingStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookings[id]; !ok {
		return fmt.Errorf("booking %s: %w", id.String(), repository.ErrNotFound)
	}
	delete(s.bookings, id)
	return nil
}

// ---------------- helpers, caller holds the lock ----------------

func (s *Store) showtimesInTheaterLocked(theater string) []*entity.Showtime {
	var showtimes []*entity.Showtime
	for _, showtime := range s.showtimes {
		if showtime.Theater == theater {
			showtimes = append(showtimes, showtime)
		}
	}
	return showtimes
}

func (s *Store) bookingsLocked() []*entity.Booking {
	bookings := make([]*entity.Booking, 0, len(s.bookings))
	for _, booking := range s.bookings {
		bookings = append(bookings, booking)
	}
	return bookings
}

func (s *Store) dropBookingsLocked(showtimeID int64) {
	for id, booking := range s.bookings {
		if booking.ShowtimeID == showtimeID {
			delete(s.bookings, id)
		}
	}
}
