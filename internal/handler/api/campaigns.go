package api

import (
	"net/http"

	reqdto "petpromise/internal/handler/dto/request"
	resdto "petpromise/internal/handler/dto/response"
	"petpromise/internal/handler/httperr"
	"petpromise/internal/handler/middleware"
	"petpromise/internal/infra"
	"petpromise/internal/pkg/clock"
	"petpromise/internal/pkg/errs"
	"petpromise/internal/usecase/commands"
	"petpromise/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CampaignHandler struct {
	cmds  commands.CampaignCommands
	q     queries.CampaignQueries
	clock clock.Clock
}

func NewCampaignHandler(cmds commands.CampaignCommands, q queries.CampaignQueries, clk clock.Clock) *CampaignHandler {
	return &CampaignHandler{cmds: cmds, q: q, clock: clk}
}

// @Summary Public campaign listing
// @Description Paginated campaign listing with the derived expired flag
// @Tags campaigns
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size (default 12)"
// @Success 200 {array} resdto.CampaignResponse
// @Failure 500 {object} map[string]string
// @Router /donation-campaigns [get]
func (h *CampaignHandler) Listing(c *gin.Context) {
	page := queries.NewPageRequest(c.Query("page"), c.Query("limit"), queries.DefaultPublicCampaignLimit)

	result, err := h.q.PublicListing(c.Request.Context(), page)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCampaigns(result.Items, h.clock.Now()))
}

// @Summary Recommended campaigns
// @Description Three random active campaigns, excluding the one being viewed
// @Tags campaigns
// @Produce json
// @Param id path string true "Campaign ID to exclude"
// @Success 200 {array} resdto.CampaignResponse
// @Failure 400 {object} map[string]string
// @Router /recommended-donation/{id} [get]
func (h *CampaignHandler) Recommended(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	campaigns, err := h.q.Recommended(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCampaigns(campaigns, h.clock.Now()))
}

// @Summary Active campaigns for the home page
// @Description All unexpired, unpaused campaigns
// @Tags campaigns
// @Produce json
// @Success 200 {array} resdto.CampaignResponse
// @Failure 500 {object} map[string]string
// @Router /recommended-donation-homePage [get]
func (h *CampaignHandler) HomePage(c *gin.Context) {
	campaigns, err := h.q.ListActive(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCampaigns(campaigns, h.clock.Now()))
}

// @Summary Campaign details
// @Description One campaign with the derived expired flag; unknown ids answer with a null body
// @Tags campaigns
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {object} resdto.CampaignResponse
// @Failure 400 {object} map[string]string
// @Router /donation-details-page-data/{id} [get]
func (h *CampaignHandler) Details(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	cmp, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCampaign(cmp, h.clock.Now()))
}

// @Summary My campaigns
// @Description Paginated listing of the caller's own campaigns
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Param email query string true "Caller email"
// @Param page query int false "Page number"
// @Param limit query int false "Page size (default 6)"
// @Success 200 {object} resdto.CampaignListResponse
// @Failure 403 {object} map[string]string
// @Router /my-campaign-data [get]
func (h *CampaignHandler) MyCampaigns(c *gin.Context) {
	email := c.Query("email")
	page := queries.NewPageRequest(c.Query("page"), c.Query("limit"), queries.DefaultCampaignLimit)

	result, err := h.q.ListByOwner(c.Request.Context(), email, page)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCampaignList(result, h.clock.Now()))
}

// @Summary All campaigns
// @Description Admin-wide campaign listing, excluding the calling admin's own campaigns
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Param email query string true "Caller email to exclude"
// @Param page query int false "Page number"
// @Param limit query int false "Page size (default 6)"
// @Success 200 {object} resdto.CampaignListResponse
// @Failure 403 {object} map[string]string
// @Router /all-campaign-data [get]
func (h *CampaignHandler) AllCampaigns(c *gin.Context) {
	email := c.Query("email")
	page := queries.NewPageRequest(c.Query("page"), c.Query("limit"), queries.DefaultCampaignLimit)

	result, err := h.q.ListExceptOwner(c.Request.Context(), email, page)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCampaignList(result, h.clock.Now()))
}

// @Summary Create campaign
// @Description Open a donation campaign owned by the caller
// @Tags campaigns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCampaignRequest true "Create campaign request"
// @Success 201 {object} resdto.InsertResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /post-campaign [post]
func (h *CampaignHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithDomainError(c, errs.ErrUnauthenticated)
		return
	}

	var req reqdto.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	cmp, err := h.cmds.Create(c.Request.Context(), req.ToInput(), actor)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.Inserted(cmp.ID.String()))
}

// @Summary Delete campaign
// @Description Remove a campaign; admin only
// @Tags campaigns
// @Security BearerAuth
// @Param id path string true "Campaign ID"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /delete-campaign/{id} [delete]
func (h *CampaignHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithDomainError(c, errs.ErrUnauthenticated)
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), id, actor); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "deletedCount": 1})
}
