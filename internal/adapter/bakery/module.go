package bakery

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/sugarline/cakeshop/internal/config"
)

// Module exposes the bakery platform client to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.BakeryAddress, p.Config.RequestTimeout, p.Logger)
}
