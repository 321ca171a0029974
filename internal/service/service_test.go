package service

import (
	"context"
	"path/filepath"
	"testing"

	kerrors "github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/yixianOu/movie-review/api/movie/v1"
	"github.com/yixianOu/movie-review/internal/biz"
	"github.com/yixianOu/movie-review/internal/conf"
	"github.com/yixianOu/movie-review/internal/data"
)

type testServices struct {
	movie *MovieService
	admin *AdminService
}

// setupServices wires the full stack over a throwaway SQLite file.
func setupServices(t *testing.T) *testServices {
	t.Helper()
	logger := log.NewFilter(log.DefaultLogger, log.FilterLevel(log.LevelError))
	d, cleanup, err := data.NewData(&conf.Data{
		Database: &conf.Data_Database{
			Driver: "sqlite",
			Source: filepath.Join(t.TempDir(), "movies.db"),
		},
		RatingStars: []int32{1, 2, 3, 4, 5},
	}, logger)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	movieRepo := data.NewMovieRepo(d, logger)
	reviewRepo := data.NewReviewRepo(d, logger)
	ratingRepo := data.NewRatingRepo(d, logger)
	actorRepo := data.NewActorRepo(d, logger)
	catalogRepo := data.NewCatalogRepo(d, logger)
	boxOffice := data.NewBoxOfficeClient(&conf.BoxOffice{}, logger)

	return &testServices{
		movie: NewMovieService(
			biz.NewMovieUseCase(movieRepo, logger),
			biz.NewReviewUseCase(movieRepo, reviewRepo, logger),
			biz.NewRatingUseCase(movieRepo, ratingRepo, logger),
			biz.NewActorUseCase(actorRepo, logger),
		),
		admin: NewAdminService(biz.NewCatalogUseCase(
			movieRepo, actorRepo, ratingRepo, reviewRepo, catalogRepo, boxOffice, logger,
		)),
	}
}

func (s *testServices) seedMovie(t *testing.T, title, url string) *v1.CreateMovieReply {
	t.Helper()
	ctx := context.Background()
	category, err := s.admin.CreateCategory(ctx, &v1.CreateCategoryRequest{Name: "Drama", Url: "drama-" + url})
	require.NoError(t, err)
	actor, err := s.admin.CreateActor(ctx, &v1.CreateActorRequest{Name: "Jane Doe", Age: 40})
	require.NoError(t, err)

	reply, err := s.admin.CreateMovie(ctx, &v1.CreateMovieRequest{
		Title:         title,
		Tagline:       "tagline",
		WorldPremiere: "2020-02-14",
		Url:           url,
		Category:      &category.Id,
		Actors:        []uint64{actor.Id},
		Directors:     []uint64{actor.Id},
	})
	require.NoError(t, err)
	return reply
}

func int64ptr(v int64) *int64 { return &v }
func int32ptr(v int32) *int32 { return &v }

func errorCode(t *testing.T, err error) (int32, string) {
	t.Helper()
	require.Error(t, err)
	e := kerrors.FromError(err)
	return e.Code, e.Reason
}

func TestRatingFlowThroughServices(t *testing.T) {
	s := setupServices(t)
	movie := s.seedMovie(t, "Heat", "heat")
	ctx := WithClientIP(context.Background(), "10.0.0.1")

	first, err := s.movie.SubmitRating(ctx, &v1.SubmitRatingRequest{Star: int32ptr(3), Movie: int64ptr(int64(movie.Id))})
	require.NoError(t, err)
	assert.Equal(t, 201, first.HTTPStatus())

	second, err := s.movie.SubmitRating(ctx, &v1.SubmitRatingRequest{Star: int32ptr(5), Movie: int64ptr(int64(movie.Id))})
	require.NoError(t, err)
	assert.Equal(t, 200, second.HTTPStatus())
	assert.Equal(t, first.Id, second.Id)
	assert.Equal(t, int32(5), second.Star)

	list, err := s.movie.ListMovies(ctx, &v1.ListMoviesRequest{})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	item := list.Items[0]
	assert.True(t, item.RatingUser)
	require.NotNil(t, item.MiddleStar)
	assert.InDelta(t, 5.0, *item.MiddleStar, 1e-9)
	require.NotNil(t, item.Category)
	assert.Equal(t, "Drama", *item.Category)

	other, err := s.movie.ListMovies(WithClientIP(context.Background(), "10.0.0.2"), &v1.ListMoviesRequest{})
	require.NoError(t, err)
	assert.False(t, other.Items[0].RatingUser)
}

func TestSubmitRatingErrors(t *testing.T) {
	s := setupServices(t)
	movie := s.seedMovie(t, "Alien", "alien")
	ctx := WithClientIP(context.Background(), "10.0.0.1")

	_, err := s.movie.SubmitRating(ctx, &v1.SubmitRatingRequest{Star: int32ptr(9), Movie: int64ptr(int64(movie.Id))})
	code, reason := errorCode(t, err)
	assert.Equal(t, int32(422), code)
	assert.Equal(t, "INVALID_STAR", reason)

	_, err = s.movie.SubmitRating(ctx, &v1.SubmitRatingRequest{Star: int32ptr(4), Movie: int64ptr(9999)})
	code, reason = errorCode(t, err)
	assert.Equal(t, int32(404), code)
	assert.Equal(t, "MOVIE_NOT_FOUND", reason)

	_, err = s.movie.SubmitRating(ctx, &v1.SubmitRatingRequest{Movie: int64ptr(int64(movie.Id))})
	code, reason = errorCode(t, err)
	assert.Equal(t, int32(422), code)
	assert.Equal(t, "VALIDATION_ERROR", reason)
}

func TestReviewsRenderAsTree(t *testing.T) {
	s := setupServices(t)
	movie := s.seedMovie(t, "Ran", "ran")
	ctx := context.Background()

	root, err := s.movie.CreateReview(ctx, &v1.CreateReviewRequest{
		Movie: int64ptr(int64(movie.Id)),
		Name:  "ann",
		Email: "ann@example.com",
		Text:  "great",
	})
	require.NoError(t, err)
	assert.Equal(t, 201, root.HTTPStatus())
	assert.Nil(t, root.Parent)

	reply, err := s.movie.CreateReview(ctx, &v1.CreateReviewRequest{
		Movie:  int64ptr(int64(movie.Id)),
		Name:   "bob",
		Email:  "bob@example.com",
		Text:   "agreed",
		Parent: int64ptr(int64(root.Id)),
	})
	require.NoError(t, err)
	require.NotNil(t, reply.Parent)
	assert.Equal(t, root.Id, *reply.Parent)

	detail, err := s.movie.GetMovie(ctx, &v1.GetMovieRequest{Id: movie.Id})
	require.NoError(t, err)
	assert.Equal(t, "2020-02-14", detail.WorldPremiere)
	assert.Equal(t, int32(2020), detail.Year)
	require.Len(t, detail.Reviews, 1)
	assert.Equal(t, "ann", detail.Reviews[0].Name)
	require.Len(t, detail.Reviews[0].Children, 1)
	assert.Equal(t, "bob", detail.Reviews[0].Children[0].Name)
	assert.Empty(t, detail.Reviews[0].Children[0].Children)
	assert.Len(t, detail.Actors, 1)
	assert.Len(t, detail.Directors, 1)
	assert.Equal(t, []string{}, detail.Genres)
}

func TestCreateReviewValidationMetadata(t *testing.T) {
	s := setupServices(t)
	movie := s.seedMovie(t, "Jaws", "jaws")

	_, err := s.movie.CreateReview(context.Background(), &v1.CreateReviewRequest{
		Movie:  int64ptr(int64(movie.Id)),
		Name:   "  ",
		Email:  "not-an-email",
		Text:   "x",
		Parent: int64ptr(12345),
	})
	require.Error(t, err)
	e := kerrors.FromError(err)
	assert.Equal(t, int32(422), e.Code)
	assert.Contains(t, e.Metadata, "name")
	assert.Contains(t, e.Metadata, "email")
	assert.Contains(t, e.Metadata, "parent")

	detail, err := s.movie.GetMovie(context.Background(), &v1.GetMovieRequest{Id: movie.Id})
	require.NoError(t, err)
	assert.Empty(t, detail.Reviews)
}

func TestGetMissingResources(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	_, err := s.movie.GetMovie(ctx, &v1.GetMovieRequest{Id: 42})
	code, _ := errorCode(t, err)
	assert.Equal(t, int32(404), code)

	_, err = s.movie.GetActor(ctx, &v1.GetActorRequest{Id: 42})
	code, _ = errorCode(t, err)
	assert.Equal(t, int32(404), code)

	_, err = s.admin.CreateMovieShot(ctx, &v1.CreateMovieShotRequest{Id: 42, Title: "still"})
	code, _ = errorCode(t, err)
	assert.Equal(t, int32(404), code)
}

func TestDraftMoviesAreHidden(t *testing.T) {
	s := setupServices(t)
	movie := s.seedMovie(t, "Brazil", "brazil")
	ctx := context.Background()

	_, err := s.admin.SetDraft(ctx, &v1.SetDraftRequest{Id: movie.Id, Draft: true})
	require.NoError(t, err)

	list, err := s.movie.ListMovies(ctx, &v1.ListMoviesRequest{})
	require.NoError(t, err)
	assert.Empty(t, list.Items)

	_, err = s.movie.GetMovie(ctx, &v1.GetMovieRequest{Id: movie.Id})
	code, _ := errorCode(t, err)
	assert.Equal(t, int32(404), code)
}

func TestCreateMovieRejectsBadPremiere(t *testing.T) {
	s := setupServices(t)
	_, err := s.admin.CreateMovie(context.Background(), &v1.CreateMovieRequest{
		Title:         "Vertigo",
		Url:           "vertigo",
		WorldPremiere: "14/02/2020",
	})
	e := kerrors.FromError(err)
	require.NotNil(t, e)
	assert.Equal(t, int32(422), e.Code)
	assert.Contains(t, e.Metadata, "world_premiere")
}

func TestListStarsAndActors(t *testing.T) {
	s := setupServices(t)
	s.seedMovie(t, "Up", "up")
	ctx := context.Background()

	stars, err := s.movie.ListStars(ctx, &v1.ListStarsRequest{})
	require.NoError(t, err)
	assert.Equal(t, []int32{5, 4, 3, 2, 1}, stars.Values)

	actors, err := s.movie.ListActors(ctx, &v1.ListActorsRequest{})
	require.NoError(t, err)
	require.Len(t, actors.Items, 1)
	assert.Equal(t, "Jane Doe", actors.Items[0].Name)

	health, err := s.movie.HealthCheck(ctx, &v1.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, "ok", health.Status)
}
