package v1

import (
	context "context"

	http "github.com/go-kratos/kratos/v2/transport/http"
)

// AdminServicePrefix selects every admin operation.
const AdminServicePrefix = "/api.movie.v1.AdminService/"

const (
	OperationAdminServiceCreateCategory  = AdminServicePrefix + "CreateCategory"
	OperationAdminServiceDeleteCategory  = AdminServicePrefix + "DeleteCategory"
	OperationAdminServiceCreateGenre     = AdminServicePrefix + "CreateGenre"
	OperationAdminServiceCreateActor     = AdminServicePrefix + "CreateActor"
	OperationAdminServiceCreateStar      = AdminServicePrefix + "CreateRatingStar"
	OperationAdminServiceCreateMovie     = AdminServicePrefix + "CreateMovie"
	OperationAdminServiceSetDraft        = AdminServicePrefix + "SetDraft"
	OperationAdminServiceDeleteMovie     = AdminServicePrefix + "DeleteMovie"
	OperationAdminServiceCreateMovieShot = AdminServicePrefix + "CreateMovieShot"
	OperationAdminServiceDeleteReview    = AdminServicePrefix + "DeleteReview"
)

type AdminServiceHTTPServer interface {
	CreateCategory(context.Context, *CreateCategoryRequest) (*CatalogEntryReply, error)
	DeleteCategory(context.Context, *DeleteRequest) (*EmptyReply, error)
	CreateGenre(context.Context, *CreateGenreRequest) (*CatalogEntryReply, error)
	CreateActor(context.Context, *CreateActorRequest) (*CreateActorReply, error)
	CreateRatingStar(context.Context, *CreateRatingStarRequest) (*CreateRatingStarReply, error)
	CreateMovie(context.Context, *CreateMovieRequest) (*CreateMovieReply, error)
	SetDraft(context.Context, *SetDraftRequest) (*EmptyReply, error)
	DeleteMovie(context.Context, *DeleteRequest) (*EmptyReply, error)
	CreateMovieShot(context.Context, *CreateMovieShotRequest) (*CreateMovieShotReply, error)
	DeleteReview(context.Context, *DeleteRequest) (*EmptyReply, error)
}

func RegisterAdminServiceHTTPServer(s *http.Server, srv AdminServiceHTTPServer) {
	r := s.Route("/admin")
	r.POST("/categories", handler(OperationAdminServiceCreateCategory, srv.CreateCategory, bindBody))
	r.DELETE("/categories/{id:[0-9]+}", handler(OperationAdminServiceDeleteCategory, srv.DeleteCategory, bindVars))
	r.POST("/genres", handler(OperationAdminServiceCreateGenre, srv.CreateGenre, bindBody))
	r.POST("/actors", handler(OperationAdminServiceCreateActor, srv.CreateActor, bindBody))
	r.POST("/rating-stars", handler(OperationAdminServiceCreateStar, srv.CreateRatingStar, bindBody))
	r.POST("/movies", handler(OperationAdminServiceCreateMovie, srv.CreateMovie, bindBody))
	r.PUT("/movies/{id:[0-9]+}/draft", handler(OperationAdminServiceSetDraft, srv.SetDraft, bindBody, bindVars))
	r.DELETE("/movies/{id:[0-9]+}", handler(OperationAdminServiceDeleteMovie, srv.DeleteMovie, bindVars))
	r.POST("/movies/{id:[0-9]+}/shots", handler(OperationAdminServiceCreateMovieShot, srv.CreateMovieShot, bindBody, bindVars))
	r.DELETE("/reviews/{id:[0-9]+}", handler(OperationAdminServiceDeleteReview, srv.DeleteReview, bindVars))
}
