package di

import (
	"go.uber.org/fx"

	"github.com/bookery/bookery/internal/adapter/fulfillment"
	"github.com/bookery/bookery/internal/app"
	"github.com/bookery/bookery/internal/config"
	"github.com/bookery/bookery/internal/logger"
	"github.com/bookery/bookery/internal/pkg/auth"
	"github.com/bookery/bookery/internal/server/http/handlers"
	"github.com/bookery/bookery/internal/server/http/router"
	"github.com/bookery/bookery/internal/storage/postgres"
	"github.com/bookery/bookery/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		fulfillment.Module,
		usecase.Module,
		fx.Provide(func(client fulfillment.Client) app.FulfillmentProvider { return client }),
		fx.Provide(func(f *app.StoreFacade) handlers.StoreFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
