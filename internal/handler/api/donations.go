package api

import (
	"net/http"

	reqdto "petpromise/internal/handler/dto/request"
	resdto "petpromise/internal/handler/dto/response"
	"petpromise/internal/handler/httperr"
	"petpromise/internal/handler/middleware"
	"petpromise/internal/infra"
	"petpromise/internal/pkg/errs"
	"petpromise/internal/usecase/commands"
	"petpromise/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DonationHandler struct {
	cmds commands.DonationCommands
	q    queries.DonationQueries
}

func NewDonationHandler(cmds commands.DonationCommands, q queries.DonationQueries) *DonationHandler {
	return &DonationHandler{cmds: cmds, q: q}
}

// @Summary Create payment intent
// @Description Ask the payment processor for a charge intent over the given amount
// @Tags donations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateIntentRequest true "Create intent request"
// @Success 200 {object} resdto.PaymentIntentResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /create-payment-intent [post]
func (h *DonationHandler) CreateIntent(c *gin.Context) {
	var req reqdto.CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	intent, err := h.cmds.CreateIntent(c.Request.Context(), req.DonationAmount)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.PaymentIntentResponse{ClientSecret: intent.ClientSecret})
}

// @Summary Record donation
// @Description Persist a completed donation; replaying the same transaction id writes nothing
// @Tags donations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RecordDonationRequest true "Record donation request"
// @Success 201 {object} resdto.InsertResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /donations [post]
func (h *DonationHandler) Record(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithDomainError(c, errs.ErrUnauthenticated)
		return
	}

	var req reqdto.RecordDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Record(c.Request.Context(), req.ToInput(), actor)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	if result.Replayed {
		c.JSON(http.StatusOK, resdto.NotInserted("DONATION ALREADY RECORDED"))
		return
	}
	c.JSON(http.StatusCreated, resdto.Inserted(result.Donation.TransactionID))
}

// @Summary Payment confirmation
// @Description Fetch one donation by its transaction id
// @Tags donations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {object} resdto.DonationResponse
// @Failure 404 {object} map[string]string
// @Router /payment-confirmation/{id} [get]
func (h *DonationHandler) Confirmation(c *gin.Context) {
	d, err := h.q.GetByTransactionID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDonation(d))
}

// @Summary Campaign donators
// @Description Donations against one campaign, newest first
// @Tags donations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Campaign ID"
// @Success 200 {array} resdto.DonationResponse
// @Failure 400 {object} map[string]string
// @Router /donators/{id} [get]
func (h *DonationHandler) Donators(c *gin.Context) {
	campaignID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid campaign id", nil)
		return
	}

	donations, err := h.q.ListByCampaign(c.Request.Context(), campaignID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDonations(donations))
}

// @Summary Donation history
// @Description Paginated donation history of the caller
// @Tags donations
// @Produce json
// @Security BearerAuth
// @Param email query string true "Caller email"
// @Param page query int false "Page number"
// @Param limit query int false "Page size (default 6)"
// @Success 200 {object} resdto.DonationHistoryResponse
// @Failure 403 {object} map[string]string
// @Router /donation-history [get]
func (h *DonationHandler) History(c *gin.Context) {
	email := c.Query("email")
	page := queries.NewPageRequest(c.Query("page"), c.Query("limit"), queries.DefaultDonationLimit)

	result, err := h.q.History(c.Request.Context(), email, page)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDonationHistory(result))
}

// @Summary Refund donation
// @Description Delete a donation and walk the campaign total back in the same transaction
// @Tags donations
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {object} map[string]any
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /delete-payment-after-refund/{id} [delete]
func (h *DonationHandler) Refund(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithDomainError(c, errs.ErrUnauthenticated)
		return
	}

	d, err := h.cmds.Refund(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"acknowledged":  true,
		"deletedCount":  1,
		"transactionId": d.TransactionID,
	})
}
