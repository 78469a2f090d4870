package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"petpromise/internal/handler/api"
	"petpromise/internal/handler/middleware"
	"petpromise/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Auth      *api.AuthHandler
	Users     *api.UserHandler
	Pets      *api.PetHandler
	Adoptions *api.AdoptionHandler
	Campaigns *api.CampaignHandler
	Donations *api.DonationHandler
	Mutations *api.MutationHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, auth *middleware.AuthMiddleware) {
	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "petpromise is running")
	})
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Public routes: browsing and registration need no token.
	addRoutes(&engine.RouterGroup, []route{
		{Method: http.MethodPost, Path: "/jwt", Handler: h.Auth.IssueToken},
		{Method: http.MethodPost, Path: "/users", Handler: h.Users.Create},
		{Method: http.MethodGet, Path: "/pet-listing", Handler: h.Pets.Listing},
		{Method: http.MethodGet, Path: "/pet-details/:id", Handler: h.Pets.Details},
		{Method: http.MethodGet, Path: "/donation-campaigns", Handler: h.Campaigns.Listing},
		{Method: http.MethodGet, Path: "/recommended-donation/:id", Handler: h.Campaigns.Recommended},
		{Method: http.MethodGet, Path: "/recommended-donation-homePage", Handler: h.Campaigns.HomePage},
		{Method: http.MethodGet, Path: "/donation-details-page-data/:id", Handler: h.Campaigns.Details},
	})

	// Authenticated routes.
	authed := engine.Group("")
	authed.Use(auth.RequireAuth())
	{
		addRoutes(authed, []route{
			{Method: http.MethodPost, Path: "/add-a-pet", Handler: h.Pets.Add},
			{Method: http.MethodPost, Path: "/requested-pets/:id", Handler: h.Adoptions.Submit},
			{Method: http.MethodPost, Path: "/post-campaign", Handler: h.Campaigns.Create},
			{Method: http.MethodPost, Path: "/create-payment-intent", Handler: h.Donations.CreateIntent},
			{Method: http.MethodPost, Path: "/donations", Handler: h.Donations.Record},
			{Method: http.MethodGet, Path: "/payment-confirmation/:id", Handler: h.Donations.Confirmation},
			{Method: http.MethodGet, Path: "/donators/:id", Handler: h.Donations.Donators},
		})

		// Personal listings: the email parameter must be the caller's own.
		self := authed.Group("")
		self.Use(auth.RequireSelf("email"))
		addRoutes(self, []route{
			{Method: http.MethodGet, Path: "/user-role", Handler: h.Users.Role},
			{Method: http.MethodGet, Path: "/my-added-pets", Handler: h.Pets.MyPets},
			{Method: http.MethodGet, Path: "/adoption-requests", Handler: h.Adoptions.List},
			{Method: http.MethodGet, Path: "/my-campaign-data", Handler: h.Campaigns.MyCampaigns},
			{Method: http.MethodGet, Path: "/donation-history", Handler: h.Donations.History},
		})

		// Status transitions and deletes resolve the caller's role so
		// owner-or-admin guards can honor the admin override.
		roled := authed.Group("")
		roled.Use(auth.AttachRole())
		addRoutes(roled, []route{
			{Method: http.MethodPut, Path: "/update-pets/:id", Handler: h.Mutations.UpdatePet()},
			{Method: http.MethodPut, Path: "/update-campaign/:id", Handler: h.Mutations.UpdateCampaign()},
			{Method: http.MethodPatch, Path: "/change-pet-status/:id", Handler: h.Mutations.ChangePetStatus()},
			{Method: http.MethodPatch, Path: "/change-status-to-requested/:id", Handler: h.Mutations.ChangeStatusToRequested()},
			{Method: http.MethodPatch, Path: "/accept-request-change-adoptedStatus/:id", Handler: h.Mutations.AcceptAdoptedStatusOnPet()},
			{Method: http.MethodPatch, Path: "/accept-request-change-reqStatus-petCollection/:id", Handler: h.Mutations.AcceptRequestStatusOnPet()},
			{Method: http.MethodPatch, Path: "/accept-request-change-reqStatus/:id", Handler: h.Mutations.AcceptRequestStatus()},
			{Method: http.MethodPatch, Path: "/accept-request-change-adoptedStatus-requestedPets/:id", Handler: h.Mutations.AcceptAdoptedStatusOnRequest()},
			{Method: http.MethodPatch, Path: "/reject-request-status-change/:id", Handler: h.Mutations.RejectRequestStatus()},
			{Method: http.MethodPatch, Path: "/change-isPaused-status/:id", Handler: h.Mutations.ChangePausedStatus()},
			{Method: http.MethodPatch, Path: "/change-donated-amount/:id", Handler: h.Mutations.ChangeDonatedAmount()},
			{Method: http.MethodPatch, Path: "/amount-change-for-refund/:id", Handler: h.Mutations.ChangeAmountForRefund()},
			{Method: http.MethodDelete, Path: "/delete-pet/:id", Handler: h.Pets.Delete},
			{Method: http.MethodDelete, Path: "/reject-request/:id", Handler: h.Adoptions.Reject},
			{Method: http.MethodDelete, Path: "/delete-payment-after-refund/:id", Handler: h.Donations.Refund},
		})

		// Admin-gated routes.
		admin := authed.Group("")
		admin.Use(auth.RequireAdmin())
		addRoutes(admin, []route{
			{Method: http.MethodGet, Path: "/all-users", Handler: h.Users.ListAll},
			{Method: http.MethodGet, Path: "/all-pets", Handler: h.Pets.AllPets},
			{Method: http.MethodGet, Path: "/all-campaign-data", Handler: h.Campaigns.AllCampaigns},
			{Method: http.MethodPatch, Path: "/make-admin/:id", Handler: h.Mutations.MakeAdmin()},
			{Method: http.MethodDelete, Path: "/delete-campaign/:id", Handler: h.Campaigns.Delete},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
