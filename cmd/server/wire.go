//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package main

import (
	"github.com/yixianOu/movie-review/internal/biz"
	"github.com/yixianOu/movie-review/internal/conf"
	"github.com/yixianOu/movie-review/internal/data"
	"github.com/yixianOu/movie-review/internal/server"
	"github.com/yixianOu/movie-review/internal/service"

	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
)

// wireApp init kratos application.
func wireApp(*conf.Server, *conf.Data, *conf.Auth, *conf.BoxOffice, log.Logger) (*kratos.App, func(), error) {
	panic(wire.Build(server.ProviderSet, data.ProviderSet, biz.ProviderSet, service.ProviderSet, newApp))
}
