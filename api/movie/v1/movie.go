package v1

import "net/http"

type ListMoviesRequest struct{}

type ListMoviesReply struct {
	Items []*MovieItem `json:"items"`
}

// MovieItem is one entry of the public movie list.
type MovieItem struct {
	Id         uint64   `json:"id"`
	Title      string   `json:"title"`
	Tagline    string   `json:"tagline"`
	Category   *string  `json:"category"`
	RatingUser bool     `json:"rating_user"`
	MiddleStar *float64 `json:"middle_star"`
}

type GetMovieRequest struct {
	Id uint64 `json:"id"`
}

type ActorItem struct {
	Id    uint64 `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

type ReviewNode struct {
	Name     string        `json:"name"`
	Text     string        `json:"text"`
	Children []*ReviewNode `json:"children"`
}

type GetMovieReply struct {
	Id            uint64        `json:"id"`
	Title         string        `json:"title"`
	Tagline       string        `json:"tagline"`
	Description   string        `json:"description"`
	Poster        string        `json:"poster"`
	Year          int32         `json:"year"`
	Country       string        `json:"country"`
	WorldPremiere string        `json:"world_premiere"`
	Budget        int64         `json:"budget"`
	FeesInUsa     int64         `json:"fees_in_usa"`
	FeesInWorld   int64         `json:"fees_in_world"`
	Url           string        `json:"url"`
	Category      *string       `json:"category"`
	Directors     []*ActorItem  `json:"directors"`
	Actors        []*ActorItem  `json:"actors"`
	Genres        []string      `json:"genres"`
	Reviews       []*ReviewNode `json:"reviews"`
}

type ListMovieShotsRequest struct {
	Id uint64 `json:"id"`
}

type MovieShot struct {
	Id          uint64 `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Movie       uint64 `json:"movie"`
}

type ListMovieShotsReply struct {
	Items []*MovieShot `json:"items"`
}

type CreateReviewRequest struct {
	Movie  *int64 `json:"movie"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Text   string `json:"text"`
	Parent *int64 `json:"parent"`
}

type CreateReviewReply struct {
	Id     uint64  `json:"id"`
	Movie  uint64  `json:"movie"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Text   string  `json:"text"`
	Parent *uint64 `json:"parent"`
}

func (*CreateReviewReply) HTTPStatus() int { return http.StatusCreated }

type SubmitRatingRequest struct {
	Star  *int32 `json:"star"`
	Movie *int64 `json:"movie"`
}

type SubmitRatingReply struct {
	Id      uint64 `json:"id"`
	Star    int32  `json:"star"`
	Movie   uint64 `json:"movie"`
	Created bool   `json:"-"`
}

// HTTPStatus is 201 for a first vote and 200 when the vote was changed.
func (r *SubmitRatingReply) HTTPStatus() int {
	if r.Created {
		return http.StatusCreated
	}
	return http.StatusOK
}

type ListActorsRequest struct{}

type ListActorsReply struct {
	Items []*ActorItem `json:"items"`
}

type GetActorRequest struct {
	Id uint64 `json:"id"`
}

type GetActorReply struct {
	Id          uint64 `json:"id"`
	Name        string `json:"name"`
	Age         int32  `json:"age"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type ListStarsRequest struct{}

type ListStarsReply struct {
	Values []int32 `json:"values"`
}

type RankingRequest struct {
	Limit int32 `json:"limit"`
}

type RankedMovie struct {
	Movie uint64  `json:"movie"`
	Title string  `json:"title"`
	Score float64 `json:"score"`
}

type RankingReply struct {
	Items []*RankedMovie `json:"items"`
}

type HealthCheckRequest struct{}

type HealthCheckReply struct {
	Status string `json:"status"`
}
