package fulfillment

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/bookery/bookery/internal/config"
)

// Module exposes fulfillment client implementation to fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.FulfillmentAddress, p.Logger)
}
