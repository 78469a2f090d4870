package components

import (
	"petpromise/internal/handler/api"
	"petpromise/internal/infra/postgres"
	"petpromise/internal/infra/uow"
	"petpromise/internal/usecase/commands"
	"petpromise/internal/usecase/queries"

	"go.uber.org/fx"
)

// Each postgres repository backs the write-side repository port, the
// read-side store and (where routes mutate it) the partial-update target, so
// the concrete type is provided once and narrowed per consumer.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		postgres.NewUserRepository,
		postgres.NewPetRepository,
		postgres.NewRequestRepository,
		postgres.NewCampaignRepository,
		postgres.NewDonationRepository,

		func(r *postgres.UserRepository) commands.UserRepository { return r },
		func(r *postgres.UserRepository) queries.UserReadStore { return r },
		func(r *postgres.PetRepository) commands.PetRepository { return r },
		func(r *postgres.PetRepository) queries.PetReadStore { return r },
		func(r *postgres.RequestRepository) commands.RequestRepository { return r },
		func(r *postgres.RequestRepository) queries.RequestReadStore { return r },
		func(r *postgres.CampaignRepository) commands.CampaignRepository { return r },
		func(r *postgres.CampaignRepository) queries.CampaignReadStore { return r },
		func(r *postgres.DonationRepository) queries.DonationReadStore { return r },

		newMutationStores,

		uow.NewPostgresUoW,
	),
)

func newMutationStores(
	users *postgres.UserRepository,
	pets *postgres.PetRepository,
	requests *postgres.RequestRepository,
	campaigns *postgres.CampaignRepository,
) api.MutationStores {
	return api.MutationStores{
		Users:     users,
		Pets:      pets,
		Requests:  requests,
		Campaigns: campaigns,
	}
}
