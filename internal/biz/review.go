package biz

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-kratos/kratos/v2/log"
)

// ReviewUseCase handles review submission
type ReviewUseCase struct {
	movieRepo  MovieRepo
	reviewRepo ReviewRepo
	log        *log.Helper
}

// NewReviewUseCase creates a new ReviewUseCase instance
func NewReviewUseCase(movieRepo MovieRepo, reviewRepo ReviewRepo, logger log.Logger) *ReviewUseCase {
	return &ReviewUseCase{
		movieRepo:  movieRepo,
		reviewRepo: reviewRepo,
		log:        log.NewHelper(logger),
	}
}

// CreateReview validates and stores a review. Every rejected field is reported at once.
func (uc *ReviewUseCase) CreateReview(ctx context.Context, req *CreateReviewRequest) (*Review, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Text = strings.TrimSpace(req.Text)

	ve := &ValidationError{}
	if err := validateStruct(ve, req); err != nil {
		return nil, err
	}

	var movieID uint
	if req.Movie != nil && *req.Movie > 0 {
		movieID = uint(*req.Movie)
		if _, err := uc.movieRepo.GetPublishedMovie(ctx, movieID); err != nil {
			if !errors.Is(err, ErrNotFound) {
				return nil, fmt.Errorf("failed to get movie %d: %w", movieID, err)
			}
			ve.Add("movie", fmt.Sprintf("movie %d does not exist", movieID))
		}
	}

	var parentID *uint
	if req.Parent != nil && *req.Parent > 0 {
		id := uint(*req.Parent)
		parent, err := uc.reviewRepo.GetReview(ctx, id)
		switch {
		case errors.Is(err, ErrNotFound):
			ve.Add("parent", fmt.Sprintf("review %d does not exist", id))
		case err != nil:
			return nil, fmt.Errorf("failed to get review %d: %w", id, err)
		case movieID != 0 && parent.MovieID != movieID:
			ve.Add("parent", fmt.Sprintf("review %d belongs to another movie", id))
		default:
			parentID = &id
		}
	}

	if err := ve.OrNil(); err != nil {
		return nil, err
	}

	review := &Review{
		Email:    req.Email,
		Name:     req.Name,
		Text:     req.Text,
		MovieID:  movieID,
		ParentID: parentID,
	}
	if err := uc.reviewRepo.CreateReview(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	uc.log.Debugf("review %d created for movie %d", review.ID, movieID)
	return review, nil
}
