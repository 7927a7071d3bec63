package bootstrap

import (
	"coupon-market/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	WorkerModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
