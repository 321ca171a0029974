package server

import (
	"net/http"

	v1 "github.com/yixianOu/movie-review/api/movie/v1"
	"github.com/yixianOu/movie-review/internal/conf"
	"github.com/yixianOu/movie-review/internal/service"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/logging"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/middleware/selector"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
)

// statusResponse lets a reply choose its HTTP status, e.g. 201 on creation
type statusResponse interface {
	HTTPStatus() int
}

func customResponseEncoder(w http.ResponseWriter, r *http.Request, v interface{}) error {
	if sr, ok := v.(statusResponse); ok {
		w.WriteHeader(sr.HTTPStatus())
	}
	return khttp.DefaultResponseEncoder(w, r, v)
}

// NewHTTPServer new an HTTP server.
func NewHTTPServer(c *conf.Server, auth *conf.Auth, movieSvc *service.MovieService, adminSvc *service.AdminService, logger log.Logger) *khttp.Server {
	var opts = []khttp.ServerOption{
		khttp.Middleware(
			recovery.Recovery(),
			RequestIDMiddleware(),
			logging.Server(logger),
			ClientIPMiddleware(c.Http.TrustForwarded),
			selector.Server(AuthMiddleware(auth.Token)).Prefix(v1.AdminServicePrefix).Build(),
		),
		khttp.ResponseEncoder(customResponseEncoder),
	}
	if c.Http.Network != "" {
		opts = append(opts, khttp.Network(c.Http.Network))
	}
	if c.Http.Addr != "" {
		opts = append(opts, khttp.Address(c.Http.Addr))
	}
	if c.Http.Timeout != nil {
		opts = append(opts, khttp.Timeout(c.Http.Timeout.AsDuration()))
	}
	srv := khttp.NewServer(opts...)
	v1.RegisterMovieServiceHTTPServer(srv, movieSvc)
	v1.RegisterAdminServiceHTTPServer(srv, adminSvc)
	return srv
}
