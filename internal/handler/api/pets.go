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

type PetHandler struct {
	cmds commands.PetCommands
	q    queries.PetQueries
}

func NewPetHandler(cmds commands.PetCommands, q queries.PetQueries) *PetHandler {
	return &PetHandler{cmds: cmds, q: q}
}

// @Summary Public pet listing
// @Description Paginated listing of non-adopted pets with category and name filters
// @Tags pets
// @Produce json
// @Param sortByCategory query string false "Category filter"
// @Param searchQuery query string false "Name substring filter"
// @Param page query int false "Page number"
// @Param limit query int false "Page size (default 10)"
// @Success 200 {object} resdto.PetListingResponse
// @Failure 500 {object} map[string]string
// @Router /pet-listing [get]
func (h *PetHandler) Listing(c *gin.Context) {
	page := queries.NewPageRequest(c.Query("page"), c.Query("limit"), queries.DefaultPetListingLimit)

	result, err := h.q.PublicListing(c.Request.Context(), c.Query("sortByCategory"), c.Query("searchQuery"), page)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPetListing(result))
}

// @Summary Pet details
// @Description Fetch one pet; unknown ids answer with a null body
// @Tags pets
// @Produce json
// @Param id path string true "Pet ID"
// @Success 200 {object} resdto.PetResponse
// @Failure 400 {object} map[string]string
// @Router /pet-details/{id} [get]
func (h *PetHandler) Details(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	p, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Matches the findOne contract the frontend expects.
			c.JSON(http.StatusOK, nil)
			return
		}
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPet(p))
}

// @Summary My added pets
// @Description Paginated listing of the caller's own pets
// @Tags pets
// @Produce json
// @Security BearerAuth
// @Param email query string true "Caller email"
// @Param page query int false "Page number"
// @Param limit query int false "Page size (default 8)"
// @Success 200 {object} resdto.MyPetsResponse
// @Failure 403 {object} map[string]string
// @Router /my-added-pets [get]
func (h *PetHandler) MyPets(c *gin.Context) {
	email := c.Query("email")
	page := queries.NewPageRequest(c.Query("page"), c.Query("limit"), queries.DefaultMyPetsLimit)

	result, err := h.q.ListByOwner(c.Request.Context(), email, page)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromMyPets(result))
}

// @Summary All pets
// @Description Admin-wide pet listing, excluding the calling admin's own pets
// @Tags pets
// @Produce json
// @Security BearerAuth
// @Param email query string true "Caller email to exclude"
// @Param page query int false "Page number"
// @Param limit query int false "Page size (default 5)"
// @Success 200 {object} resdto.AllPetsResponse
// @Failure 403 {object} map[string]string
// @Router /all-pets [get]
func (h *PetHandler) AllPets(c *gin.Context) {
	email := c.Query("email")
	page := queries.NewPageRequest(c.Query("page"), c.Query("limit"), queries.DefaultAdminListLimit)

	result, err := h.q.ListExceptOwner(c.Request.Context(), email, page)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAllPets(result))
}

// @Summary Add a pet
// @Description Create a pet owned by the caller
// @Tags pets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddPetRequest true "Add pet request"
// @Success 201 {object} resdto.InsertResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /add-a-pet [post]
func (h *PetHandler) Add(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithDomainError(c, errs.ErrUnauthenticated)
		return
	}

	var req reqdto.AddPetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	p, err := h.cmds.Add(c.Request.Context(), req.ToInput(), actor)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.Inserted(p.ID.String()))
}

// @Summary Delete a pet
// @Description Remove a pet; only its owner or an admin may do so
// @Tags pets
// @Security BearerAuth
// @Param id path string true "Pet ID"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /delete-pet/{id} [delete]
func (h *PetHandler) Delete(c *gin.Context) {
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
