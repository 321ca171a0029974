package biz

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kratos/kratos/v2/log"
)

const (
	defaultRankingLimit = 10
	maxRankingLimit     = 100
)

// RatingUseCase handles rating-related business logic
type RatingUseCase struct {
	movieRepo  MovieRepo
	ratingRepo RatingRepo
	log        *log.Helper
}

// NewRatingUseCase creates a new RatingUseCase instance
func NewRatingUseCase(movieRepo MovieRepo, ratingRepo RatingRepo, logger log.Logger) *RatingUseCase {
	return &RatingUseCase{
		movieRepo:  movieRepo,
		ratingRepo: ratingRepo,
		log:        log.NewHelper(logger),
	}
}

// SubmitRating validates the payload shape and upserts the client's rating
func (uc *RatingUseCase) SubmitRating(ctx context.Context, clientIP string, req *SubmitRatingRequest) (*Rating, bool, error) {
	ve := &ValidationError{}
	if err := validateStruct(ve, req); err != nil {
		return nil, false, err
	}
	if err := ve.OrNil(); err != nil {
		return nil, false, err
	}
	return uc.UpsertRating(ctx, clientIP, uint(*req.Movie), *req.Star)
}

// UpsertRating creates the (ip, movie) rating or overwrites its star (Upsert)
func (uc *RatingUseCase) UpsertRating(ctx context.Context, ip string, movieID uint, starValue int32) (*Rating, bool, error) {
	star, err := uc.ratingRepo.FindStar(ctx, starValue)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, false, fmt.Errorf("%w: %d", ErrInvalidStar, starValue)
		}
		return nil, false, fmt.Errorf("failed to find star: %w", err)
	}

	// Check if movie exists
	if _, err := uc.movieRepo.GetPublishedMovie(ctx, movieID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, false, fmt.Errorf("%w: %d", ErrMovieNotFound, movieID)
		}
		return nil, false, fmt.Errorf("failed to get movie %d: %w", movieID, err)
	}

	rating := &Rating{
		IP:      ip,
		MovieID: movieID,
		StarID:  star.ID,
		Star:    star.Value,
	}
	isNew, err := uc.ratingRepo.UpsertRating(ctx, rating)
	if err != nil {
		return nil, false, fmt.Errorf("failed to upsert rating: %w", err)
	}
	return rating, isNew, nil
}

// ListStars returns the allowed star levels, highest first
func (uc *RatingUseCase) ListStars(ctx context.Context) ([]*RatingStar, error) {
	stars, err := uc.ratingRepo.ListStars(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stars: %w", err)
	}
	return stars, nil
}

// TopRated ranks published movies by mean star value
func (uc *RatingUseCase) TopRated(ctx context.Context, limit int) ([]*RankedMovie, error) {
	ranked, err := uc.ratingRepo.TopRated(ctx, normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to rank movies: %w", err)
	}
	return ranked, nil
}

// Popular ranks published movies by number of ratings
func (uc *RatingUseCase) Popular(ctx context.Context, limit int) ([]*RankedMovie, error) {
	ranked, err := uc.ratingRepo.Popular(ctx, normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to rank movies: %w", err)
	}
	return ranked, nil
}

func normalizeLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultRankingLimit
	case limit > maxRankingLimit:
		return maxRankingLimit
	}
	return limit
}
