package v1

import "net/http"

type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Url         string `json:"url"`
}

type CreateGenreRequest = CreateCategoryRequest

// CatalogEntryReply describes a created category or genre.
type CatalogEntryReply struct {
	Id          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Url         string `json:"url"`
}

func (*CatalogEntryReply) HTTPStatus() int { return http.StatusCreated }

type CreateActorRequest struct {
	Name        string `json:"name"`
	Age         int32  `json:"age"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type CreateActorReply GetActorReply

func (*CreateActorReply) HTTPStatus() int { return http.StatusCreated }

type CreateRatingStarRequest struct {
	Value int32 `json:"value"`
}

type CreateRatingStarReply struct {
	Id    uint64 `json:"id"`
	Value int32  `json:"value"`
}

func (*CreateRatingStarReply) HTTPStatus() int { return http.StatusCreated }

type CreateMovieRequest struct {
	Title         string   `json:"title"`
	Tagline       string   `json:"tagline"`
	Description   string   `json:"description"`
	Poster        string   `json:"poster"`
	Year          int32    `json:"year"`
	Country       string   `json:"country"`
	WorldPremiere string   `json:"world_premiere"`
	Budget        int64    `json:"budget"`
	FeesInUsa     int64    `json:"fees_in_usa"`
	FeesInWorld   int64    `json:"fees_in_world"`
	Url           string   `json:"url"`
	Draft         bool     `json:"draft"`
	Category      *uint64  `json:"category"`
	Actors        []uint64 `json:"actors"`
	Directors     []uint64 `json:"directors"`
	Genres        []uint64 `json:"genres"`
}

type CreateMovieReply struct {
	Id          uint64 `json:"id"`
	Title       string `json:"title"`
	Url         string `json:"url"`
	Draft       bool   `json:"draft"`
	Budget      int64  `json:"budget"`
	FeesInUsa   int64  `json:"fees_in_usa"`
	FeesInWorld int64  `json:"fees_in_world"`
}

func (*CreateMovieReply) HTTPStatus() int { return http.StatusCreated }

type CreateMovieShotRequest struct {
	Id          uint64 `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type CreateMovieShotReply MovieShot

func (*CreateMovieShotReply) HTTPStatus() int { return http.StatusCreated }

type SetDraftRequest struct {
	Id    uint64 `json:"id"`
	Draft bool   `json:"draft"`
}

type DeleteRequest struct {
	Id uint64 `json:"id"`
}

type EmptyReply struct{}
