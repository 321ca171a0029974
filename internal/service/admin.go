package service

import (
	"context"
	"fmt"
	"time"

	kerrors "github.com/go-kratos/kratos/v2/errors"

	v1 "github.com/yixianOu/movie-review/api/movie/v1"
	"github.com/yixianOu/movie-review/internal/biz"
)

// AdminService implements the token-protected catalog API
type AdminService struct {
	catalogUC *biz.CatalogUseCase
}

func NewAdminService(catalogUC *biz.CatalogUseCase) *AdminService {
	return &AdminService{catalogUC: catalogUC}
}

func (s *AdminService) CreateCategory(ctx context.Context, req *v1.CreateCategoryRequest) (*v1.CatalogEntryReply, error) {
	category := &biz.Category{Name: req.Name, Description: req.Description, URL: req.Url}
	if err := s.catalogUC.CreateCategory(ctx, category); err != nil {
		return nil, toHTTPError(err)
	}
	return &v1.CatalogEntryReply{
		Id:          uint64(category.ID),
		Name:        category.Name,
		Description: category.Description,
		Url:         category.URL,
	}, nil
}

func (s *AdminService) DeleteCategory(ctx context.Context, req *v1.DeleteRequest) (*v1.EmptyReply, error) {
	if err := s.catalogUC.DeleteCategory(ctx, uint(req.Id)); err != nil {
		return nil, toHTTPError(err)
	}
	return &v1.EmptyReply{}, nil
}

func (s *AdminService) CreateGenre(ctx context.Context, req *v1.CreateGenreRequest) (*v1.CatalogEntryReply, error) {
	genre := &biz.Genre{Name: req.Name, Description: req.Description, URL: req.Url}
	if err := s.catalogUC.CreateGenre(ctx, genre); err != nil {
		return nil, toHTTPError(err)
	}
	return &v1.CatalogEntryReply{
		Id:          uint64(genre.ID),
		Name:        genre.Name,
		Description: genre.Description,
		Url:         genre.URL,
	}, nil
}

func (s *AdminService) CreateActor(ctx context.Context, req *v1.CreateActorRequest) (*v1.CreateActorReply, error) {
	actor := &biz.Actor{Name: req.Name, Age: req.Age, Description: req.Description, Image: req.Image}
	if err := s.catalogUC.CreateActor(ctx, actor); err != nil {
		return nil, toHTTPError(err)
	}
	return &v1.CreateActorReply{
		Id:          uint64(actor.ID),
		Name:        actor.Name,
		Age:         actor.Age,
		Description: actor.Description,
		Image:       actor.Image,
	}, nil
}

func (s *AdminService) CreateRatingStar(ctx context.Context, req *v1.CreateRatingStarRequest) (*v1.CreateRatingStarReply, error) {
	star := &biz.RatingStar{Value: req.Value}
	if err := s.catalogUC.CreateStar(ctx, star); err != nil {
		return nil, toHTTPError(err)
	}
	return &v1.CreateRatingStarReply{Id: uint64(star.ID), Value: star.Value}, nil
}

// CreateMovie implements movie creation
func (s *AdminService) CreateMovie(ctx context.Context, req *v1.CreateMovieRequest) (*v1.CreateMovieReply, error) {
	premiere := time.Now().UTC().Truncate(24 * time.Hour)
	if req.WorldPremiere != "" {
		parsed, err := time.Parse(dateLayout, req.WorldPremiere)
		if err != nil {
			ve := &biz.ValidationError{}
			ve.Add("world_premiere", fmt.Sprintf("expected YYYY-MM-DD: %v", err))
			return nil, toHTTPError(ve)
		}
		premiere = parsed
	}

	movie := &biz.Movie{
		Title:         req.Title,
		Tagline:       req.Tagline,
		Description:   req.Description,
		Poster:        req.Poster,
		Year:          req.Year,
		Country:       req.Country,
		WorldPremiere: premiere,
		Budget:        req.Budget,
		FeesInUSA:     req.FeesInUsa,
		FeesInWorld:   req.FeesInWorld,
		URL:           req.Url,
		Draft:         req.Draft,
		ActorIDs:      toUintIDs(req.Actors),
		DirectorIDs:   toUintIDs(req.Directors),
		GenreIDs:      toUintIDs(req.Genres),
	}
	if req.Category != nil {
		id := uint(*req.Category)
		movie.CategoryID = &id
	}
	if movie.Year == 0 {
		movie.Year = int32(premiere.Year())
	}

	if err := s.catalogUC.CreateMovie(ctx, movie); err != nil {
		return nil, toHTTPError(err)
	}
	return &v1.CreateMovieReply{
		Id:          uint64(movie.ID),
		Title:       movie.Title,
		Url:         movie.URL,
		Draft:       movie.Draft,
		Budget:      movie.Budget,
		FeesInUsa:   movie.FeesInUSA,
		FeesInWorld: movie.FeesInWorld,
	}, nil
}

func (s *AdminService) SetDraft(ctx context.Context, req *v1.SetDraftRequest) (*v1.EmptyReply, error) {
	if err := s.catalogUC.SetDraft(ctx, uint(req.Id), req.Draft); err != nil {
		return nil, toHTTPError(err)
	}
	return &v1.EmptyReply{}, nil
}

func (s *AdminService) DeleteMovie(ctx context.Context, req *v1.DeleteRequest) (*v1.EmptyReply, error) {
	if err := s.catalogUC.DeleteMovie(ctx, uint(req.Id)); err != nil {
		return nil, toHTTPError(err)
	}
	return &v1.EmptyReply{}, nil
}

func (s *AdminService) CreateMovieShot(ctx context.Context, req *v1.CreateMovieShotRequest) (*v1.CreateMovieShotReply, error) {
	if req.Id == 0 {
		return nil, kerrors.NotFound("NOT_FOUND", "not found")
	}
	shot := &biz.MovieShot{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		MovieID:     uint(req.Id),
	}
	if err := s.catalogUC.CreateShot(ctx, shot); err != nil {
		return nil, toHTTPError(err)
	}
	return (*v1.CreateMovieShotReply)(shotToProto(shot)), nil
}

func (s *AdminService) DeleteReview(ctx context.Context, req *v1.DeleteRequest) (*v1.EmptyReply, error) {
	if err := s.catalogUC.DeleteReview(ctx, uint(req.Id)); err != nil {
		return nil, toHTTPError(err)
	}
	return &v1.EmptyReply{}, nil
}

func toUintIDs(ids []uint64) []uint {
	if len(ids) == 0 {
		return nil
	}
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		out = append(out, uint(id))
	}
	return out
}
