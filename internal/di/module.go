package di

import (
	"go.uber.org/fx"

	"github.com/sugarline/cakeshop/internal/adapter/bakery"
	"github.com/sugarline/cakeshop/internal/adapter/geocode"
	"github.com/sugarline/cakeshop/internal/adapter/shipping"
	"github.com/sugarline/cakeshop/internal/app"
	"github.com/sugarline/cakeshop/internal/config"
	"github.com/sugarline/cakeshop/internal/logger"
	"github.com/sugarline/cakeshop/internal/pkg/auth"
	"github.com/sugarline/cakeshop/internal/server/http/handlers"
	"github.com/sugarline/cakeshop/internal/server/http/router"
	"github.com/sugarline/cakeshop/internal/storage/postgres"
	"github.com/sugarline/cakeshop/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		bakery.Module,
		geocode.Module,
		shipping.Module,
		usecase.Module,
		fx.Provide(
			func(c bakery.Client) usecase.CatalogProvider { return c },
			func(c bakery.Client) usecase.CartService { return c },
			func(c bakery.Client) usecase.OrderService { return c },
			func(c bakery.Client) usecase.VoucherService { return c },
			func(c bakery.Client) usecase.CustomerService { return c },
			func(c bakery.Client) usecase.BakeryService { return c },
			func(c bakery.Client) usecase.CustomCakeService { return c },
			func(c bakery.Client) usecase.ReviewService { return c },
			func(c bakery.Client) usecase.ReportService { return c },
			func(c bakery.Client) app.FileUploader { return c },
			func(c geocode.Client) usecase.Geocoder { return c },
			func(c shipping.Client) usecase.ShippingService { return c },
			func(f *app.StorefrontFacade) handlers.StorefrontFacade { return f },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
