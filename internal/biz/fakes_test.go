package biz

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/mock"
)

var testLogger = log.DefaultLogger

type fakeMovieRepo struct {
	MovieRepo
	movies  map[uint]*Movie
	created []*Movie
}

func newFakeMovieRepo(movies ...*Movie) *fakeMovieRepo {
	r := &fakeMovieRepo{movies: make(map[uint]*Movie)}
	for _, m := range movies {
		r.movies[m.ID] = m
	}
	return r
}

func (r *fakeMovieRepo) GetPublishedMovie(_ context.Context, id uint) (*Movie, error) {
	m, ok := r.movies[id]
	if !ok || m.Draft {
		return nil, ErrNotFound
	}
	return m, nil
}

func (r *fakeMovieRepo) CreateMovie(_ context.Context, movie *Movie) error {
	movie.ID = uint(len(r.movies) + 1)
	r.movies[movie.ID] = movie
	r.created = append(r.created, movie)
	return nil
}

func (r *fakeMovieRepo) GetMovieDetail(_ context.Context, id uint) (*MovieDetail, error) {
	m, ok := r.movies[id]
	if !ok || m.Draft {
		return nil, ErrNotFound
	}
	return &MovieDetail{ID: m.ID, Title: m.Title}, nil
}

type fakeReviewRepo struct {
	ReviewRepo
	reviews map[uint]*Review
}

func newFakeReviewRepo(reviews ...*Review) *fakeReviewRepo {
	r := &fakeReviewRepo{reviews: make(map[uint]*Review)}
	for _, rv := range reviews {
		r.reviews[rv.ID] = rv
	}
	return r
}

func (r *fakeReviewRepo) GetReview(_ context.Context, id uint) (*Review, error) {
	rv, ok := r.reviews[id]
	if !ok {
		return nil, ErrNotFound
	}
	return rv, nil
}

func (r *fakeReviewRepo) CreateReview(_ context.Context, review *Review) error {
	review.ID = uint(len(r.reviews) + 100)
	r.reviews[review.ID] = review
	return nil
}

type fakeRatingRepo struct {
	RatingRepo
	mu      sync.Mutex
	stars   []*RatingStar
	ratings map[string]*Rating
}

func newFakeRatingRepo(values ...int32) *fakeRatingRepo {
	r := &fakeRatingRepo{ratings: make(map[string]*Rating)}
	for i, v := range values {
		r.stars = append(r.stars, &RatingStar{ID: uint(i + 1), Value: v})
	}
	return r
}

func (r *fakeRatingRepo) FindStar(_ context.Context, value int32) (*RatingStar, error) {
	for _, s := range r.stars {
		if s.Value == value {
			return s, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fakeRatingRepo) CreateStar(_ context.Context, star *RatingStar) error {
	star.ID = uint(len(r.stars) + 1)
	r.stars = append(r.stars, star)
	return nil
}

func (r *fakeRatingRepo) UpsertRating(_ context.Context, rating *Rating) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := fmt.Sprintf("%s/%d", rating.IP, rating.MovieID)
	existing, ok := r.ratings[key]
	if ok {
		existing.StarID = rating.StarID
		existing.Star = rating.Star
		rating.ID = existing.ID
		return false, nil
	}
	rating.ID = uint(len(r.ratings) + 1)
	stored := *rating
	r.ratings[key] = &stored
	return true, nil
}

func (r *fakeRatingRepo) TopRated(_ context.Context, limit int) ([]*RankedMovie, error) {
	return make([]*RankedMovie, 0, limit), nil
}

type mockBoxOfficeClient struct {
	mock.Mock
}

func (m *mockBoxOfficeClient) GetBoxOffice(ctx context.Context, title string) (*BoxOfficeData, error) {
	args := m.Called(ctx, title)
	data, _ := args.Get(0).(*BoxOfficeData)
	return data, args.Error(1)
}
