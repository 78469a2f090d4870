package components

import (
	"petpromise/internal/pkg/clock"
	"petpromise/internal/pkg/config"
	"petpromise/internal/usecase/commands"
	"petpromise/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
	),
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewPetQueries,
		queries.NewAdoptionQueries,
		queries.NewCampaignQueries,
		queries.NewDonationQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewUserCommands,
		commands.NewPetCommands,
		commands.NewAdoptionCommands,
		commands.NewCampaignCommands,
		commands.NewMutationCommands,
		func(u commands.UnitOfWork, p commands.PaymentService, cfg config.Config, clk clock.Clock) commands.DonationCommands {
			return commands.NewDonationCommands(u, p, cfg.Payment.Currency, clk)
		},
	),
)
