package shipping

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/sugarline/cakeshop/internal/config"
)

// Module exposes the shipping client to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.ShippingAddress, p.Config.RequestTimeout, p.Logger)
}
