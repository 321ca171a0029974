package v1

import (
	context "context"

	errors "github.com/go-kratos/kratos/v2/errors"
	http "github.com/go-kratos/kratos/v2/transport/http"
)

const (
	OperationMovieServiceListMovies     = "/api.movie.v1.MovieService/ListMovies"
	OperationMovieServiceGetMovie       = "/api.movie.v1.MovieService/GetMovie"
	OperationMovieServiceListMovieShots = "/api.movie.v1.MovieService/ListMovieShots"
	OperationMovieServiceCreateReview   = "/api.movie.v1.MovieService/CreateReview"
	OperationMovieServiceSubmitRating   = "/api.movie.v1.MovieService/SubmitRating"
	OperationMovieServiceListStars      = "/api.movie.v1.MovieService/ListStars"
	OperationMovieServiceListActors     = "/api.movie.v1.MovieService/ListActors"
	OperationMovieServiceGetActor       = "/api.movie.v1.MovieService/GetActor"
	OperationMovieServiceTopRated       = "/api.movie.v1.MovieService/TopRated"
	OperationMovieServicePopular        = "/api.movie.v1.MovieService/Popular"
	OperationMovieServiceHealthCheck    = "/api.movie.v1.MovieService/HealthCheck"
)

type MovieServiceHTTPServer interface {
	ListMovies(context.Context, *ListMoviesRequest) (*ListMoviesReply, error)
	GetMovie(context.Context, *GetMovieRequest) (*GetMovieReply, error)
	ListMovieShots(context.Context, *ListMovieShotsRequest) (*ListMovieShotsReply, error)
	CreateReview(context.Context, *CreateReviewRequest) (*CreateReviewReply, error)
	SubmitRating(context.Context, *SubmitRatingRequest) (*SubmitRatingReply, error)
	ListStars(context.Context, *ListStarsRequest) (*ListStarsReply, error)
	ListActors(context.Context, *ListActorsRequest) (*ListActorsReply, error)
	GetActor(context.Context, *GetActorRequest) (*GetActorReply, error)
	TopRated(context.Context, *RankingRequest) (*RankingReply, error)
	Popular(context.Context, *RankingRequest) (*RankingReply, error)
	HealthCheck(context.Context, *HealthCheckRequest) (*HealthCheckReply, error)
}

func RegisterMovieServiceHTTPServer(s *http.Server, srv MovieServiceHTTPServer) {
	r := s.Route("/")
	r.GET("/movies", handler(OperationMovieServiceListMovies, srv.ListMovies, bindQuery))
	r.GET("/movies/{id:[0-9]+}", handler(OperationMovieServiceGetMovie, srv.GetMovie, bindVars))
	r.GET("/movies/{id:[0-9]+}/shots", handler(OperationMovieServiceListMovieShots, srv.ListMovieShots, bindVars))
	r.POST("/reviews", handler(OperationMovieServiceCreateReview, srv.CreateReview, bindBody))
	r.POST("/ratings", handler(OperationMovieServiceSubmitRating, srv.SubmitRating, bindBody))
	r.GET("/rating-stars", handler(OperationMovieServiceListStars, srv.ListStars, bindQuery))
	r.GET("/actors", handler(OperationMovieServiceListActors, srv.ListActors, bindQuery))
	r.GET("/actors/{id:[0-9]+}", handler(OperationMovieServiceGetActor, srv.GetActor, bindVars))
	r.GET("/rankings/top-rated", handler(OperationMovieServiceTopRated, srv.TopRated, bindQuery))
	r.GET("/rankings/popular", handler(OperationMovieServicePopular, srv.Popular, bindQuery))
	r.GET("/healthz", handler(OperationMovieServiceHealthCheck, srv.HealthCheck, bindQuery))
}

type binder func(ctx http.Context, v interface{}) error

var (
	bindBody  binder = func(ctx http.Context, v interface{}) error { return ctx.Bind(v) }
	bindQuery binder = func(ctx http.Context, v interface{}) error { return ctx.BindQuery(v) }
	bindVars  binder = func(ctx http.Context, v interface{}) error { return ctx.BindVars(v) }
)

// handler decodes the request, runs it through the server middleware chain
// under operation and encodes the reply.
func handler[Req, Reply any](operation string, call func(context.Context, *Req) (*Reply, error), binds ...binder) func(http.Context) error {
	return func(ctx http.Context) error {
		var in Req
		for _, bind := range binds {
			if err := bind(ctx, &in); err != nil {
				return errors.New(422, "VALIDATION_ERROR", "malformed request payload").WithCause(err)
			}
		}
		http.SetOperation(ctx, operation)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(ctx, req.(*Req))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*Reply))
	}
}
