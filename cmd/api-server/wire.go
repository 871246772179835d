//go:build wireinject
// +build wireinject

package main

import (
	"storefront/config"
	"storefront/dao"
	"storefront/handler"
	"storefront/pkg/client"
	"storefront/pkg/database"
	"storefront/pkg/oss"
	"storefront/pkg/rocketmq"
	"storefront/pkg/server"
	"storefront/service"

	"github.com/google/wire"
)

var configSet = wire.NewSet(
	config.ProvideAppConfig,
	config.ProvideAdminConfig,
	config.ProvideJwtConfig,
	config.ProvideOssConfig,
	config.ProvideRocketMQConfig,
	config.ProvideShopConfig,
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		configSet,
		client.NewRedisClient,
		database.NewDB,
		oss.NewClient,
		rocketmq.NewPublisher,
		server.NewGinEngine,

		wire.Struct(new(handler.Storefront), "*"),
		wire.Struct(new(handler.Cart), "*"),
		wire.Struct(new(handler.Checkout), "*"),
		wire.Struct(new(handler.Tracking), "*"),
		wire.Struct(new(handler.AdminAuth), "*"),
		wire.Struct(new(handler.AdminProduct), "*"),
		wire.Struct(new(handler.AdminOrder), "*"),
		wire.Struct(new(handler.AdminCatalog), "*"),
		wire.Struct(new(handler.AdminImage), "*"),
		wire.Struct(new(handler.AdminInventory), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,
		service.ProviderSet,
	)
	return nil
}

func InitEscalation(cfg *config.Config) *service.OrderEventService {
	wire.Build(
		config.ProvideRocketMQConfig,
		database.NewDB,
		dao.NewOrder,
		rocketmq.NewPublisher,
		wire.Bind(new(service.EventPublisher), new(*rocketmq.Publisher)),
		wire.Struct(new(service.OrderEventService), "*"),
	)
	return nil
}
