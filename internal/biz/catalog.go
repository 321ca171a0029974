package biz

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-kratos/kratos/v2/log"
)

// CatalogUseCase handles administrative catalog writes
type CatalogUseCase struct {
	movieRepo       MovieRepo
	actorRepo       ActorRepo
	ratingRepo      RatingRepo
	reviewRepo      ReviewRepo
	catalogRepo     CatalogRepo
	boxOfficeClient BoxOfficeClient
	log             *log.Helper
}

// NewCatalogUseCase creates a new CatalogUseCase instance
func NewCatalogUseCase(
	movieRepo MovieRepo,
	actorRepo ActorRepo,
	ratingRepo RatingRepo,
	reviewRepo ReviewRepo,
	catalogRepo CatalogRepo,
	boxOfficeClient BoxOfficeClient,
	logger log.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		movieRepo:       movieRepo,
		actorRepo:       actorRepo,
		ratingRepo:      ratingRepo,
		reviewRepo:      reviewRepo,
		catalogRepo:     catalogRepo,
		boxOfficeClient: boxOfficeClient,
		log:             log.NewHelper(logger),
	}
}

func (uc *CatalogUseCase) CreateCategory(ctx context.Context, category *Category) error {
	if err := validatePayload(category); err != nil {
		return err
	}
	if err := uc.catalogRepo.CreateCategory(ctx, category); err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// DeleteCategory removes a category; its movies become uncategorized
func (uc *CatalogUseCase) DeleteCategory(ctx context.Context, id uint) error {
	if err := uc.catalogRepo.DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("failed to delete category %d: %w", id, err)
	}
	return nil
}

func (uc *CatalogUseCase) CreateGenre(ctx context.Context, genre *Genre) error {
	if err := validatePayload(genre); err != nil {
		return err
	}
	if err := uc.catalogRepo.CreateGenre(ctx, genre); err != nil {
		return fmt.Errorf("failed to create genre: %w", err)
	}
	return nil
}

func (uc *CatalogUseCase) CreateActor(ctx context.Context, actor *Actor) error {
	if err := validatePayload(actor); err != nil {
		return err
	}
	if err := uc.actorRepo.CreateActor(ctx, actor); err != nil {
		return fmt.Errorf("failed to create actor: %w", err)
	}
	return nil
}

// CreateStar adds an allowed star level
func (uc *CatalogUseCase) CreateStar(ctx context.Context, star *RatingStar) error {
	_, err := uc.ratingRepo.FindStar(ctx, star.Value)
	switch {
	case err == nil:
		ve := &ValidationError{}
		ve.Add("value", fmt.Sprintf("star %d already exists", star.Value))
		return ve
	case !errors.Is(err, ErrNotFound):
		return fmt.Errorf("failed to find star: %w", err)
	}
	if err := uc.ratingRepo.CreateStar(ctx, star); err != nil {
		return fmt.Errorf("failed to create star: %w", err)
	}
	return nil
}

// CreateMovie stores a movie, filling missing money figures from the box office API
func (uc *CatalogUseCase) CreateMovie(ctx context.Context, movie *Movie) error {
	movie.Title = strings.TrimSpace(movie.Title)
	if err := validatePayload(movie); err != nil {
		return err
	}

	if movie.Budget == 0 && movie.FeesInUSA == 0 && movie.FeesInWorld == 0 {
		// Try to fetch box office data (non-blocking on failure)
		data, err := uc.boxOfficeClient.GetBoxOffice(ctx, movie.Title)
		if err != nil {
			uc.log.Warnf("Failed to fetch box office data for movie '%s': %v", movie.Title, err)
		} else if data != nil {
			movie.Budget = data.Budget
			movie.FeesInUSA = data.FeesInUSA
			movie.FeesInWorld = data.FeesInWorld
		}
	}

	if err := uc.movieRepo.CreateMovie(ctx, movie); err != nil {
		return fmt.Errorf("failed to create movie: %w", err)
	}
	return nil
}

// SetDraft publishes or unpublishes a movie
func (uc *CatalogUseCase) SetDraft(ctx context.Context, id uint, draft bool) error {
	if err := uc.movieRepo.SetDraft(ctx, id, draft); err != nil {
		return fmt.Errorf("failed to update movie %d: %w", id, err)
	}
	return nil
}

// DeleteMovie removes a movie with its shots, ratings and reviews
func (uc *CatalogUseCase) DeleteMovie(ctx context.Context, id uint) error {
	if err := uc.movieRepo.DeleteMovie(ctx, id); err != nil {
		return fmt.Errorf("failed to delete movie %d: %w", id, err)
	}
	return nil
}

func (uc *CatalogUseCase) CreateShot(ctx context.Context, shot *MovieShot) error {
	if err := validatePayload(shot); err != nil {
		return err
	}
	if err := uc.movieRepo.CreateShot(ctx, shot); err != nil {
		return fmt.Errorf("failed to create shot: %w", err)
	}
	return nil
}

// DeleteReview removes a review; its replies become root reviews
func (uc *CatalogUseCase) DeleteReview(ctx context.Context, id uint) error {
	if err := uc.reviewRepo.DeleteReview(ctx, id); err != nil {
		return fmt.Errorf("failed to delete review %d: %w", id, err)
	}
	return nil
}

func validatePayload(s interface{}) error {
	ve := &ValidationError{}
	if err := validateStruct(ve, s); err != nil {
		return err
	}
	return ve.OrNil()
}
