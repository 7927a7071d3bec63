package components

import (
	"coupon-market/internal/pkg/clock"
	"coupon-market/internal/usecase/commands"
	"coupon-market/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthUseCase,
		commands.NewCompanyUseCase,
		commands.NewCustomerUseCase,
		commands.NewCouponUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCompanyQueries,
		queries.NewCustomerQueries,
		queries.NewCouponQueries,
	),
)
