package biz

import (
	"context"
	"fmt"

	"github.com/go-kratos/kratos/v2/log"
)

// MovieUseCase handles the public movie read paths
type MovieUseCase struct {
	repo MovieRepo
	log  *log.Helper
}

// NewMovieUseCase creates a new MovieUseCase instance
func NewMovieUseCase(repo MovieRepo, logger log.Logger) *MovieUseCase {
	return &MovieUseCase{
		repo: repo,
		log:  log.NewHelper(logger),
	}
}

// ListMovies returns every published movie annotated for clientIP
func (uc *MovieUseCase) ListMovies(ctx context.Context, clientIP string) ([]*MovieSummary, error) {
	movies, err := uc.repo.ListMovies(ctx, clientIP)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	return movies, nil
}

// GetMovie returns a published movie and its review tree
func (uc *MovieUseCase) GetMovie(ctx context.Context, id uint) (*MovieDetail, []*ReviewNode, error) {
	movie, err := uc.repo.GetMovieDetail(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get movie %d: %w", id, err)
	}

	tree, err := BuildReviewTree(movie.Reviews)
	if err != nil {
		uc.log.Errorf("malformed review tree for movie %d: %v", id, err)
		return nil, nil, err
	}
	return movie, tree, nil
}

// ListShots returns the stills of a published movie
func (uc *MovieUseCase) ListShots(ctx context.Context, movieID uint) ([]*MovieShot, error) {
	if _, err := uc.repo.GetPublishedMovie(ctx, movieID); err != nil {
		return nil, fmt.Errorf("failed to get movie %d: %w", movieID, err)
	}
	shots, err := uc.repo.ListShots(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shots: %w", err)
	}
	return shots, nil
}
