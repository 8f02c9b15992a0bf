package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/sugarline/cakeshop/internal/config"
	"github.com/sugarline/cakeshop/internal/domain/repository"
	"github.com/sugarline/cakeshop/internal/usecase"
	"github.com/sugarline/cakeshop/internal/worker"
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		newCheckoutUseCase,
		NewStorefrontFacade,
		newHTTPServer,
		newPaymentWatcher,
	),
	fx.Invoke(registerLifecycle),
)

type checkoutParams struct {
	fx.In

	Carts       usecase.CartService
	Orders      usecase.OrderService
	Shipping    usecase.ShippingService
	Customers   usecase.CustomerService
	Bakeries    usecase.BakeryService
	CustomCakes usecase.CustomCakeService
	Resolver    *usecase.AddressResolver
	Pending     repository.PendingPaymentRepository
	Config      *config.Config
}

func newCheckoutUseCase(p checkoutParams) *usecase.CheckoutUseCase {
	return usecase.NewCheckoutUseCase(
		p.Carts,
		p.Orders,
		p.Shipping,
		p.Customers,
		p.Bakeries,
		p.CustomCakes,
		p.Resolver,
		p.Pending,
		p.Config.PaymentCountdown,
	)
}

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
}

type watcherParams struct {
	fx.In

	Facade *StorefrontFacade
	Config *config.Config
	Logger *slog.Logger
}

func newPaymentWatcher(p watcherParams) *worker.PaymentWatcher {
	return worker.NewPaymentWatcher(
		p.Facade,
		p.Config.PaymentPoll,
		p.Config.PaymentBatch,
		p.Config.WorkerPoolSize,
		p.Logger,
	)
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Worker     *worker.PaymentWatcher
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting cakeshop", slog.String("addr", p.Server.Addr))
			p.Worker.Start(ctx)
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			p.Worker.Stop()

			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			if err := p.Server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			p.Logger.Info("cakeshop stopped")
			return nil
		},
	})
}
