package components

import (
	"petpromise/internal/handler"
	"petpromise/internal/handler/api"
	"petpromise/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewUserHandler,
		api.NewPetHandler,
		api.NewAdoptionHandler,
		api.NewCampaignHandler,
		api.NewDonationHandler,
		api.NewMutationHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	users *api.UserHandler,
	pets *api.PetHandler,
	adoptions *api.AdoptionHandler,
	campaigns *api.CampaignHandler,
	donations *api.DonationHandler,
	mutations *api.MutationHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:      auth,
		Users:     users,
		Pets:      pets,
		Adoptions: adoptions,
		Campaigns: campaigns,
		Donations: donations,
		Mutations: mutations,
	}
}
