package service

import (
	"context"

	v1 "github.com/yixianOu/movie-review/api/movie/v1"
	"github.com/yixianOu/movie-review/internal/biz"
)

const dateLayout = "2006-01-02"

// MovieService implements the public movie API
type MovieService struct {
	movieUC  *biz.MovieUseCase
	reviewUC *biz.ReviewUseCase
	ratingUC *biz.RatingUseCase
	actorUC  *biz.ActorUseCase
}

// NewMovieService creates a new MovieService
func NewMovieService(movieUC *biz.MovieUseCase, reviewUC *biz.ReviewUseCase, ratingUC *biz.RatingUseCase, actorUC *biz.ActorUseCase) *MovieService {
	return &MovieService{
		movieUC:  movieUC,
		reviewUC: reviewUC,
		ratingUC: ratingUC,
		actorUC:  actorUC,
	}
}

// ListMovies implements movie listing
func (s *MovieService) ListMovies(ctx context.Context, _ *v1.ListMoviesRequest) (*v1.ListMoviesReply, error) {
	movies, err := s.movieUC.ListMovies(ctx, ClientIPFromContext(ctx))
	if err != nil {
		return nil, toHTTPError(err)
	}

	reply := &v1.ListMoviesReply{Items: make([]*v1.MovieItem, 0, len(movies))}
	for _, m := range movies {
		reply.Items = append(reply.Items, &v1.MovieItem{
			Id:         uint64(m.ID),
			Title:      m.Title,
			Tagline:    m.Tagline,
			Category:   m.Category,
			RatingUser: m.RatingUser,
			MiddleStar: m.MiddleStar,
		})
	}
	return reply, nil
}

// GetMovie implements the movie detail view
func (s *MovieService) GetMovie(ctx context.Context, req *v1.GetMovieRequest) (*v1.GetMovieReply, error) {
	movie, reviews, err := s.movieUC.GetMovie(ctx, uint(req.Id))
	if err != nil {
		return nil, toHTTPError(err)
	}
	return movieDetailToProto(movie, reviews), nil
}

func (s *MovieService) ListMovieShots(ctx context.Context, req *v1.ListMovieShotsRequest) (*v1.ListMovieShotsReply, error) {
	shots, err := s.movieUC.ListShots(ctx, uint(req.Id))
	if err != nil {
		return nil, toHTTPError(err)
	}
	reply := &v1.ListMovieShotsReply{Items: make([]*v1.MovieShot, 0, len(shots))}
	for _, shot := range shots {
		reply.Items = append(reply.Items, shotToProto(shot))
	}
	return reply, nil
}

// CreateReview implements review submission
func (s *MovieService) CreateReview(ctx context.Context, req *v1.CreateReviewRequest) (*v1.CreateReviewReply, error) {
	review, err := s.reviewUC.CreateReview(ctx, &biz.CreateReviewRequest{
		Movie:  req.Movie,
		Name:   req.Name,
		Email:  req.Email,
		Text:   req.Text,
		Parent: req.Parent,
	})
	if err != nil {
		return nil, toHTTPError(err)
	}

	reply := &v1.CreateReviewReply{
		Id:    uint64(review.ID),
		Movie: uint64(review.MovieID),
		Name:  review.Name,
		Email: review.Email,
		Text:  review.Text,
	}
	if review.ParentID != nil {
		parent := uint64(*review.ParentID)
		reply.Parent = &parent
	}
	return reply, nil
}

// SubmitRating implements rating submission
func (s *MovieService) SubmitRating(ctx context.Context, req *v1.SubmitRatingRequest) (*v1.SubmitRatingReply, error) {
	rating, isNew, err := s.ratingUC.SubmitRating(ctx, ClientIPFromContext(ctx), &biz.SubmitRatingRequest{
		Star:  req.Star,
		Movie: req.Movie,
	})
	if err != nil {
		return nil, toHTTPError(err)
	}
	return &v1.SubmitRatingReply{
		Id:      uint64(rating.ID),
		Star:    rating.Star,
		Movie:   uint64(rating.MovieID),
		Created: isNew,
	}, nil
}

func (s *MovieService) ListStars(ctx context.Context, _ *v1.ListStarsRequest) (*v1.ListStarsReply, error) {
	stars, err := s.ratingUC.ListStars(ctx)
	if err != nil {
		return nil, toHTTPError(err)
	}
	reply := &v1.ListStarsReply{Values: make([]int32, 0, len(stars))}
	for _, star := range stars {
		reply.Values = append(reply.Values, star.Value)
	}
	return reply, nil
}

func (s *MovieService) ListActors(ctx context.Context, _ *v1.ListActorsRequest) (*v1.ListActorsReply, error) {
	actors, err := s.actorUC.ListActors(ctx)
	if err != nil {
		return nil, toHTTPError(err)
	}
	reply := &v1.ListActorsReply{Items: make([]*v1.ActorItem, 0, len(actors))}
	for _, a := range actors {
		reply.Items = append(reply.Items, actorToProto(a))
	}
	return reply, nil
}

func (s *MovieService) GetActor(ctx context.Context, req *v1.GetActorRequest) (*v1.GetActorReply, error) {
	actor, err := s.actorUC.GetActor(ctx, uint(req.Id))
	if err != nil {
		return nil, toHTTPError(err)
	}
	return &v1.GetActorReply{
		Id:          uint64(actor.ID),
		Name:        actor.Name,
		Age:         actor.Age,
		Description: actor.Description,
		Image:       actor.Image,
	}, nil
}

func (s *MovieService) TopRated(ctx context.Context, req *v1.RankingRequest) (*v1.RankingReply, error) {
	ranked, err := s.ratingUC.TopRated(ctx, int(req.Limit))
	if err != nil {
		return nil, toHTTPError(err)
	}
	return rankingToProto(ranked), nil
}

func (s *MovieService) Popular(ctx context.Context, req *v1.RankingRequest) (*v1.RankingReply, error) {
	ranked, err := s.ratingUC.Popular(ctx, int(req.Limit))
	if err != nil {
		return nil, toHTTPError(err)
	}
	return rankingToProto(ranked), nil
}

// HealthCheck implements health check
func (s *MovieService) HealthCheck(ctx context.Context, _ *v1.HealthCheckRequest) (*v1.HealthCheckReply, error) {
	return &v1.HealthCheckReply{
		Status: "ok",
	}, nil
}

// Helper functions

func movieDetailToProto(m *biz.MovieDetail, reviews []*biz.ReviewNode) *v1.GetMovieReply {
	reply := &v1.GetMovieReply{
		Id:          uint64(m.ID),
		Title:       m.Title,
		Tagline:     m.Tagline,
		Description: m.Description,
		Poster:      m.Poster,
		Year:        m.Year,
		Country:     m.Country,
		Budget:      m.Budget,
		FeesInUsa:   m.FeesInUSA,
		FeesInWorld: m.FeesInWorld,
		Url:         m.URL,
		Category:    m.Category,
		Directors:   make([]*v1.ActorItem, 0, len(m.Directors)),
		Actors:      make([]*v1.ActorItem, 0, len(m.Actors)),
		Genres:      m.Genres,
		Reviews:     reviewNodesToProto(reviews),
	}
	if !m.WorldPremiere.IsZero() {
		reply.WorldPremiere = m.WorldPremiere.Format(dateLayout)
	}
	if reply.Genres == nil {
		reply.Genres = []string{}
	}
	for _, a := range m.Directors {
		reply.Directors = append(reply.Directors, actorToProto(a))
	}
	for _, a := range m.Actors {
		reply.Actors = append(reply.Actors, actorToProto(a))
	}
	return reply
}

func reviewNodesToProto(nodes []*biz.ReviewNode) []*v1.ReviewNode {
	out := make([]*v1.ReviewNode, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, &v1.ReviewNode{
			Name:     n.Name,
			Text:     n.Text,
			Children: reviewNodesToProto(n.Children),
		})
	}
	return out
}

func actorToProto(a *biz.ActorSummary) *v1.ActorItem {
	return &v1.ActorItem{Id: uint64(a.ID), Name: a.Name, Image: a.Image}
}

func shotToProto(s *biz.MovieShot) *v1.MovieShot {
	return &v1.MovieShot{
		Id:          uint64(s.ID),
		Title:       s.Title,
		Description: s.Description,
		Image:       s.Image,
		Movie:       uint64(s.MovieID),
	}
}

func rankingToProto(ranked []*biz.RankedMovie) *v1.RankingReply {
	reply := &v1.RankingReply{Items: make([]*v1.RankedMovie, 0, len(ranked))}
	for _, r := range ranked {
		reply.Items = append(reply.Items, &v1.RankedMovie{Movie: uint64(r.MovieID), Title: r.Title, Score: r.Score})
	}
	return reply
}
