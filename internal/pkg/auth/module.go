package auth

import "go.uber.org/fx"

// Module provides the bearer claims decoder via fx.
var Module = fx.Provide(
	func() Decoder { return NewJWTDecoder() },
)
