//go:build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/loorthu/vexa/internal/domain"
	"github.com/loorthu/vexa/internal/infrastructure"
	"github.com/loorthu/vexa/internal/interfaces"
	"github.com/loorthu/vexa/internal/interfaces/httpserver/routes"
)

func CreateApplication() (*Application, error) {
	wire.Build(
		infrastructure.InfrastructureProvider,
		domain.ServiceProvider,
		routes.RouteProvider,
		interfaces.InterfacesProvider,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil
}
