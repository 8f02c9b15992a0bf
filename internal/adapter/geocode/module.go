package geocode

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/sugarline/cakeshop/internal/config"
)

// Module exposes the geocoding client to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.GeocoderAddress, p.Config.GeocoderAPIKey, p.Config.RequestTimeout, p.Logger)
}
