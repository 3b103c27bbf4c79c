package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/idoziv15/popcorn-palace-api/internal/conflict"
	"github.com/idoziv15/popcorn-palace-api/internal/data/entity"
	"github.com/idoziv15/popcorn-palace-api/internal/data/repository"
	"github.com/idoziv15/popcorn-palace-api/internal/dto/request"
	"github.com/idoziv15/popcorn-palace-api/internal/dto/response"
	"github.com/idoziv15/popcorn-palace-api/pkg/utils"

	"go.uber.org/zap"
)

// ShowtimeService schedules screenings. Creation enforces the
// movie-existence precondition and the per-theater no-overlap
// invariant; the overlap scan here is the fast path, the database
// exclusion constraint decides races.
type ShowtimeService interface {
	GetShowtimes(ctx context.Context) ([]response.ShowtimeResponse, error)
	GetShowtimeByID(ctx context.Context, showtimeID int64) (*response.ShowtimeResponse, error)
	CreateShowtime(ctx context.Context, req *request.CreateShowtimeRequest) (*response.ShowtimeResponse, error)
	UpdateShowtime(ctx context.Context, showtimeID int64, req *request.UpdateShowtimeRequest) (*response.ShowtimeResponse, error)
	DeleteShowtime(ctx context.Context, showtimeID int64) error
}

type showtimeService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewShowtimeService(repo *repository.Repository, log *zap.Logger) ShowtimeService {
	return &showtimeService{
		repo: repo,
		log:  log.With(zap.String("service", "showtime")),
	}
}

func (s *showtimeService) GetShowtimes(ctx context.Context) ([]response.ShowtimeResponse, error) {
	showtimes, err := s.repo.Showtime.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get showtimes", zap.Error(err))
		return nil, fmt.Errorf("get showtimes: %w", err)
	}

	showtimeResponses := make([]response.ShowtimeResponse, len(showtimes))
	for i, showtime := range showtimes {
		movie, err := s.repo.Movie.FindByID(ctx, showtime.MovieID)
		if err != nil {
			s.log.Warn("Failed to get movie for showtime",
				zap.Error(err),
				zap.Int64("showtime_id", showtime.ID),
			)
		}
		showtimeResponses[i] = response.ShowtimeToResponse(showtime, movie)
	}

	return showtimeResponses, nil
}

func (s *showtimeService) GetShowtimeByID(ctx context.Context, showtimeID int64) (*response.ShowtimeResponse, error) {
	showtime, err := s.repo.Showtime.FindByID(ctx, showtimeID)
	if err != nil {
		s.log.Error("Failed to get showtime by ID",
			zap.Error(err),
			zap.Int64("showtime_id", showtimeID),
		)
		return nil, fmt.Errorf("get showtime by id: %w", err)
	}

	if showtime == nil {
		return nil, fmt.Errorf("showtime %d: %w", showtimeID, repository.ErrNotFound)
	}

	movie, err := s.repo.Movie.FindByID(ctx, showtime.MovieID)
	if err != nil {
		s.log.Warn("Failed to get movie for showtime",
			zap.Error(err),
			zap.Int64("showtime_id", showtimeID),
		)
	}

	resp := response.ShowtimeToResponse(showtime, movie)
	return &resp, nil
}

func (s *showtimeService) CreateShowtime(ctx context.Context, req *request.CreateShowtimeRequest) (*response.ShowtimeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create showtime validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", repository.ErrValidation, utils.FormatValidationErrors(errs))
	}

	startTime, endTime, err := parseShowtimeWindow(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	// Movie must exist before anything is scheduled against it
	movie, err := s.repo.Movie.FindByID(ctx, req.MovieID)
	if err != nil {
		return nil, fmt.Errorf("check movie for showtime: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %d: %w", req.MovieID, repository.ErrInvalidReference)
	}

	// Fast-path overlap check against the theater's showtimes. Two
	// creates can still race past this; the exclusion constraint on
	// insert settles it.
	existing, err := s.repo.Showtime.FindByTheater(ctx, req.Theater)
	if err != nil {
		return nil, fmt.Errorf("check theater schedule: %w", err)
	}
	if overlapping := conflict.FindOverlap(existing, startTime, endTime); overlapping != nil {
		s.log.Warn("Showtime overlaps existing screening",
			zap.String("theater", req.Theater),
			zap.Int64("existing_showtime_id", overlapping.ID),
			zap.Time("start_time", startTime),
			zap.Time("end_time", endTime),
		)
		return nil, fmt.Errorf("showtime in %s between %s and %s: %w",
			req.Theater, req.StartTime, req.EndTime, repository.ErrSchedulingConflict)
	}

	showtime := &entity.Showtime{
		MovieID:   req.MovieID,
		Theater:   req.Theater,
		StartTime: startTime,
		EndTime:   endTime,
		Price:     req.Price,
	}

	if err := s.repo.Showtime.Create(ctx, showtime); err != nil {
		return nil, fmt.Errorf("create showtime: %w", err)
	}

	s.log.Info("Showtime created",
		zap.Int64("showtime_id", showtime.ID),
		zap.Int64("movie_id", showtime.MovieID),
		zap.String("theater", showtime.Theater),
		zap.Time("start_time", showtime.StartTime),
		zap.Time("end_time", showtime.EndTime),
	)

	resp := response.ShowtimeToResponse(showtime, movie)
	return &resp, nil
}

func (s *showtimeService) UpdateShowtime(ctx context.Context, showtimeID int64, req *request.UpdateShowtimeRequest) (*response.ShowtimeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update showtime validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", repository.ErrValidation, utils.FormatValidationErrors(errs))
	}

	showtime, err := s.repo.Showtime.FindByID(ctx, showtimeID)
	if err != nil {
		return nil, fmt.Errorf("get showtime for update: %w", err)
	}
	if showtime == nil {
		return nil, fmt.Errorf("showtime %d: %w", showtimeID, repository.ErrNotFound)
	}

	// Rebinding to another movie re-checks the reference
	if req.MovieID != nil {
		movie, err := s.repo.Movie.FindByID(ctx, *req.MovieID)
		if err != nil {
			return nil, fmt.Errorf("check movie for showtime update: %w", err)
		}
		if movie == nil {
			return nil, fmt.Errorf("movie %d: %w", *req.MovieID, repository.ErrInvalidReference)
		}
		showtime.MovieID = *req.MovieID
	}

	if req.Theater != nil {
		showtime.Theater = *req.Theater
	}
	if req.StartTime != nil {
		startTime, err := parseShowtimeTimestamp("startTime", *req.StartTime)
		if err != nil {
			return nil, err
		}
		showtime.StartTime = startTime
	}
	if req.EndTime != nil {
		endTime, err := parseShowtimeTimestamp("endTime", *req.EndTime)
		if err != nil {
			return nil, err
		}
		showtime.EndTime = endTime
	}
	if req.Price != nil {
		showtime.Price = *req.Price
	}

	// No overlap re-check on update. That mirrors the original
	// scheduler; in Postgres the exclusion constraint still rejects
	// an update that would overlap.
	if err := s.repo.Showtime.Update(ctx, showtime); err != nil {
		return nil, fmt.Errorf("update showtime: %w", err)
	}

	s.log.Info("Showtime updated", zap.Int64("showtime_id", showtimeID))

	movie, err := s.repo.Movie.FindByID(ctx, showtime.MovieID)
	if err != nil {
		s.log.Warn("Failed to get movie for updated showtime",
			zap.Error(err),
			zap.Int64("showtime_id", showtimeID),
		)
	}

	resp := response.ShowtimeToResponse(showtime, movie)
	return &resp, nil
}

func (s *showtimeService) DeleteShowtime(ctx context.Context, showtimeID int64) error {
	if err := s.repo.Showtime.Delete(ctx, showtimeID); err != nil {
		return fmt.Errorf("delete showtime: %w", err)
	}

	s.log.Info("Showtime deleted with its bookings",
		zap.Int64("showtime_id", showtimeID),
	)
	return nil
}

func parseShowtimeWindow(start, end string) (time.Time, time.Time, error) {
	startTime, err := parseShowtimeTimestamp("startTime", start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endTime, err := parseShowtimeTimestamp("endTime", end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return startTime, endTime, nil
}

func parseShowtimeTimestamp(field, value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be an ISO-8601 timestamp", repository.ErrValidation, field)
	}
	return t, nil
}
