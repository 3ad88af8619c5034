package components

import (
	"gateops/internal/domain/bay"
	"gateops/internal/pkg/clock"
	"gateops/internal/pkg/config"
	"gateops/internal/usecase"
	"gateops/internal/usecase/commands"
	"gateops/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewAllocator,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewRequestCommands,
		commands.NewVisitCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewRequestQueries,
		queries.NewVisitQueries,
		queries.NewClientQueries,
		queries.NewBayQueries,
		queries.NewStatsQueries,
		queries.NewDurationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// NewAllocator builds the yard from configuration. Codes normalize to lower
// case, so "3A" and "3a" in config name the same bay.
func NewAllocator(cfg config.Config) (*bay.Allocator, error) {
	yard := make([]bay.Code, 0, len(cfg.Yard.Bays))
	for _, s := range cfg.Yard.Bays {
		code, err := bay.NewCode(s)
		if err != nil {
			return nil, err
		}
		yard = append(yard, code)
	}
	return bay.NewAllocator(yard), nil
}
