package api

import (
	"net/http"

	reqdto "petpromise/internal/handler/dto/request"
	resdto "petpromise/internal/handler/dto/response"
	"petpromise/internal/handler/httperr"
	"petpromise/internal/handler/middleware"
	"petpromise/internal/pkg/errs"
	"petpromise/internal/usecase/commands"
	"petpromise/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdoptionHandler struct {
	cmds commands.AdoptionCommands
	q    queries.AdoptionQueries
}

func NewAdoptionHandler(cmds commands.AdoptionCommands, q queries.AdoptionQueries) *AdoptionHandler {
	return &AdoptionHandler{cmds: cmds, q: q}
}

// @Summary Request adoption
// @Description Open an adoption request for a pet; a second request for the same pet conflicts
// @Tags adoptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pet ID"
// @Param request body reqdto.SubmitRequestRequest true "Adoption request"
// @Success 201 {object} resdto.InsertResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /requested-pets/{id} [post]
func (h *AdoptionHandler) Submit(c *gin.Context) {
	petID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid pet id", nil)
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithDomainError(c, errs.ErrUnauthenticated)
		return
	}

	var req reqdto.SubmitRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	r, err := h.cmds.SubmitRequest(c.Request.Context(), petID, req.ToInput(), actor)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.Inserted(r.ID.String()))
}

// @Summary List adoption requests
// @Description Open requests against the caller's own pets
// @Tags adoptions
// @Produce json
// @Security BearerAuth
// @Param email query string true "Caller email"
// @Param page query int false "Page number"
// @Param limit query int false "Page size (default 5)"
// @Success 200 {object} resdto.RequestListResponse
// @Failure 403 {object} map[string]string
// @Router /adoption-requests [get]
func (h *AdoptionHandler) List(c *gin.Context) {
	email := c.Query("email")
	page := queries.NewPageRequest(c.Query("page"), c.Query("limit"), queries.DefaultAdminListLimit)

	result, err := h.q.RequestsForOwner(c.Request.Context(), email, page)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRequestList(result))
}

// @Summary Reject adoption request
// @Description Delete a request; only the pet's owner or an admin may reject
// @Tags adoptions
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reject-request/{id} [delete]
func (h *AdoptionHandler) Reject(c *gin.Context) {
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

	if err := h.cmds.RejectRequest(c.Request.Context(), id, actor); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "deletedCount": 1})
}
