package biz

import (
	"context"
	"time"
)

// Category domain model
type Category struct {
	ID          uint
	Name        string `json:"name" validate:"required,max=150"`
	Description string `json:"description"`
	URL         string `json:"url" validate:"required,max=160,slug"`
}

// Genre domain model
type Genre struct {
	ID          uint
	Name        string `json:"name" validate:"required,max=150"`
	Description string `json:"description"`
	URL         string `json:"url" validate:"required,max=160,slug"`
}

// Actor domain model, used for both actors and directors
type Actor struct {
	ID          uint
	Name        string `json:"name" validate:"required,max=100"`
	Age         int32  `json:"age" validate:"min=0"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// ActorSummary is the lightweight actor projection
type ActorSummary struct {
	ID    uint
	Name  string
	Image string
}

// Movie domain model
type Movie struct {
	ID            uint
	Title         string `json:"title" validate:"required,max=100"`
	Tagline       string `json:"tagline" validate:"max=100"`
	Description   string `json:"description"`
	Poster        string `json:"poster"`
	Year          int32  `json:"year" validate:"min=0"`
	Country       string `json:"country" validate:"max=30"`
	WorldPremiere time.Time
	Budget        int64 `json:"budget" validate:"min=0"`
	FeesInUSA     int64 `json:"fees_in_usa" validate:"min=0"`
	FeesInWorld   int64 `json:"fees_in_world" validate:"min=0"`
	URL           string `json:"url" validate:"required,max=160,slug"`
	Draft         bool
	CategoryID    *uint
	ActorIDs      []uint
	DirectorIDs   []uint
	GenreIDs      []uint
}

// MovieSummary is one row of the public movie list
type MovieSummary struct {
	ID       uint
	Title    string
	Tagline  string
	Category *string
	// RatingUser reports whether the requesting client has rated the movie.
	RatingUser bool
	// MiddleStar is nil when the movie has no ratings.
	MiddleStar *float64
}

// MovieDetail is the public movie projection, with reviews still flat
type MovieDetail struct {
	ID            uint
	Title         string
	Tagline       string
	Description   string
	Poster        string
	Year          int32
	Country       string
	WorldPremiere time.Time
	Budget        int64
	FeesInUSA     int64
	FeesInWorld   int64
	URL           string
	Category      *string
	Directors     []*ActorSummary
	Actors        []*ActorSummary
	Genres        []string
	Reviews       []*Review
}

// MovieShot domain model
type MovieShot struct {
	ID          uint
	Title       string `json:"title" validate:"required,max=100"`
	Description string `json:"description"`
	Image       string `json:"image"`
	MovieID     uint
}

// RatingStar is one allowed star level
type RatingStar struct {
	ID    uint
	Value int32
}

// Rating domain model
type Rating struct {
	ID      uint
	IP      string
	MovieID uint
	StarID  uint
	Star    int32
}

// RankedMovie is one entry of a ranking
type RankedMovie struct {
	MovieID uint
	Title   string
	Score   float64
}

// Review domain model
type Review struct {
	ID       uint
	Email    string
	Name     string
	Text     string
	MovieID  uint
	ParentID *uint
}

// ReviewNode is one node of a movie's review tree
type ReviewNode struct {
	Name     string
	Text     string
	Children []*ReviewNode
}

// CreateReviewRequest domain model
type CreateReviewRequest struct {
	Movie  *int64 `json:"movie" validate:"required,gt=0"`
	Name   string `json:"name" validate:"required,max=100"`
	Email  string `json:"email" validate:"required,email,max=254"`
	Text   string `json:"text" validate:"required,max=5000"`
	Parent *int64 `json:"parent" validate:"omitempty,gt=0"`
}

// SubmitRatingRequest domain model
type SubmitRatingRequest struct {
	Star  *int32 `json:"star" validate:"required"`
	Movie *int64 `json:"movie" validate:"required,gt=0"`
}

// MovieRepo defines the repository interface for movies
type MovieRepo interface {
	// ListMovies returns published movies with rating aggregates for clientIP, in one query.
	ListMovies(ctx context.Context, clientIP string) ([]*MovieSummary, error)
	GetMovieDetail(ctx context.Context, id uint) (*MovieDetail, error)
	GetPublishedMovie(ctx context.Context, id uint) (*Movie, error)
	CreateMovie(ctx context.Context, movie *Movie) error
	SetDraft(ctx context.Context, id uint, draft bool) error
	DeleteMovie(ctx context.Context, id uint) error
	ListShots(ctx context.Context, movieID uint) ([]*MovieShot, error)
	CreateShot(ctx context.Context, shot *MovieShot) error
}

// ReviewRepo defines the repository interface for reviews
type ReviewRepo interface {
	GetReview(ctx context.Context, id uint) (*Review, error)
	CreateReview(ctx context.Context, review *Review) error
	DeleteReview(ctx context.Context, id uint) error
}

// RatingRepo defines the repository interface for stars and ratings
type RatingRepo interface {
	FindStar(ctx context.Context, value int32) (*RatingStar, error)
	ListStars(ctx context.Context) ([]*RatingStar, error)
	CreateStar(ctx context.Context, star *RatingStar) error
	UpsertRating(ctx context.Context, rating *Rating) (isNew bool, err error)
	TopRated(ctx context.Context, limit int) ([]*RankedMovie, error)
	Popular(ctx context.Context, limit int) ([]*RankedMovie, error)
}

// ActorRepo defines the repository interface for actors
type ActorRepo interface {
	ListActors(ctx context.Context) ([]*ActorSummary, error)
	GetActor(ctx context.Context, id uint) (*Actor, error)
	CreateActor(ctx context.Context, actor *Actor) error
}

// CatalogRepo defines the repository interface for categories and genres
type CatalogRepo interface {
	CreateCategory(ctx context.Context, category *Category) error
	DeleteCategory(ctx context.Context, id uint) error
	CreateGenre(ctx context.Context, genre *Genre) error
}

// BoxOfficeClient defines the interface for box office API client
type BoxOfficeClient interface {
	GetBoxOffice(ctx context.Context, title string) (*BoxOfficeData, error)
}

// BoxOfficeData represents data from box office API
type BoxOfficeData struct {
	Title       string
	Budget      int64
	FeesInUSA   int64
	FeesInWorld int64
}
