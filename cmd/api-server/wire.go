//go:build wireinject
// +build wireinject

package main

import (
	"github.com/Himanshu3141/Creatrr/config"
	"github.com/Himanshu3141/Creatrr/dao"
	"github.com/Himanshu3141/Creatrr/dao/cache"
	"github.com/Himanshu3141/Creatrr/handler"
	"github.com/Himanshu3141/Creatrr/pkg/client"
	"github.com/Himanshu3141/Creatrr/pkg/database"
	"github.com/Himanshu3141/Creatrr/pkg/server"
	"github.com/Himanshu3141/Creatrr/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,
		server.NewGinEngine,

		dao.ProviderSet,
		cache.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Post), "*"),
		wire.Struct(new(handler.Feed), "*"),
		wire.Struct(new(handler.Dashboard), "*"),
		wire.Struct(new(handler.Like), "*"),
		wire.Struct(new(handler.Comment), "*"),
		wire.Struct(new(handler.Follow), "*"),

		wire.Struct(new(server.Handlers), "*"),
		wire.Struct(new(server.AppProvider), "*"),
	)
	return nil
}
