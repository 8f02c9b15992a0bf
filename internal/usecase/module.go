package usecase

import "go.uber.org/fx"

// Module provides core storefront use cases to the fx container. The checkout
// use case is assembled in the app module because it carries configuration.
var Module = fx.Provide(
	NewConfiguratorUseCase,
	NewStudioUseCase,
	NewVoucherUseCase,
	NewOrderUseCase,
	NewAddressResolver,
)
