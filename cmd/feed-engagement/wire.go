//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package main

import (
	"feed-engagement/internal/biz"
	"feed-engagement/internal/conf"
	"feed-engagement/internal/data"
	"feed-engagement/internal/infra/eventbus"
	"feed-engagement/internal/server"
	"feed-engagement/internal/service"

	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
)

// wireApp init kratos application.
func wireApp(*conf.Bootstrap, log.Logger) (*kratos.App, func(), error) {
	panic(wire.Build(
		wire.FieldsOf(new(*conf.Bootstrap), "Server", "Data", "Engagement", "Outbox"),
		server.ProviderSet,
		data.ProviderSet,
		biz.ProviderSet,
		service.ProviderSet,
		eventbus.ProviderSet,
		wire.Bind(new(biz.EventPublisher), new(*eventbus.EventBus)),
		newApp,
	))
}
