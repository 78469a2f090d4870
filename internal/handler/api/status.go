package api

import (
	"net/http"

	"petpromise/internal/handler/httperr"
	"petpromise/internal/handler/middleware"
	"petpromise/internal/pkg/errs"
	"petpromise/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Writable field sets per target. The PUT routes accept the full mutable
// surface; the PATCH status routes accept exactly the flags they flip.
var (
	petMutableFields = []string{
		"petName", "petCategory", "petAge", "petLocation",
		"shortDescription", "longDescription", "petImage",
		"adopted", "isRequested",
	}
	campaignMutableFields = []string{
		"petName", "petImage", "maxDonationAmount", "lastDate",
		"shortDescription", "longDescription", "isPaused",
	}
)

// MutationStores groups the partial-update targets by document kind.
type MutationStores struct {
	Users     commands.DocStore
	Pets      commands.DocStore
	Requests  commands.DocStore
	Campaigns commands.DocStore
}

// MutationHandler serves every PUT/PATCH status route through the one
// conditional-update path; each route differs only in its transition config.
type MutationHandler struct {
	engine commands.MutationCommands
	stores MutationStores
}

func NewMutationHandler(engine commands.MutationCommands, stores MutationStores) *MutationHandler {
	return &MutationHandler{engine: engine, stores: stores}
}

func (h *MutationHandler) apply(t commands.Transition) gin.HandlerFunc {
	return func(c *gin.Context) {
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

		var docPatch map[string]any
		if err := c.ShouldBindJSON(&docPatch); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}

		result, err := h.engine.Apply(c.Request.Context(), t, id, docPatch, actor)
		if err != nil {
			httperr.AbortWithDomainError(c, err)
			return
		}

		if !result.Changed {
			c.JSON(http.StatusOK, gin.H{"message": "No changes detected, all fields match"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": t.Store.Kind() + " updated", "updated": true})
	}
}

// PUT /update-pets/:id
func (h *MutationHandler) UpdatePet() gin.HandlerFunc {
	return h.apply(commands.Transition{
		Store:   h.stores.Pets,
		Allowed: petMutableFields,
		Guard:   commands.GuardOwner("ownerEmail"),
	})
}

// PUT /update-campaign/:id
func (h *MutationHandler) UpdateCampaign() gin.HandlerFunc {
	return h.apply(commands.Transition{
		Store:   h.stores.Campaigns,
		Allowed: campaignMutableFields,
		Guard:   commands.GuardOwner("ownerEmail"),
	})
}

// PATCH /make-admin/:id
func (h *MutationHandler) MakeAdmin() gin.HandlerFunc {
	return h.apply(commands.Transition{
		Store:   h.stores.Users,
		Allowed: []string{"role"},
		Guard:   commands.GuardAdminOnly(),
	})
}

// PATCH /change-pet-status/:id. Owner marks a pet adopted from the dashboard.
func (h *MutationHandler) ChangePetStatus() gin.HandlerFunc {
	return h.apply(commands.Transition{
		Store:   h.stores.Pets,
		Allowed: []string{"adopted"},
		Guard:   commands.GuardOwner("ownerEmail"),
	})
}

// PATCH /change-status-to-requested/:id. Flipped by the requestor when
// submitting, so ownership is not required.
func (h *MutationHandler) ChangeStatusToRequested() gin.HandlerFunc {
	return h.apply(commands.Transition{
		Store:   h.stores.Pets,
		Allowed: []string{"isRequested"},
		Guard:   commands.GuardAuthenticated(),
	})
}

// PATCH /accept-request-change-adoptedStatus/:id
func (h *MutationHandler) AcceptAdoptedStatusOnPet() gin.HandlerFunc {
	return h.apply(commands.Transition{
		Store:   h.stores.Pets,
		Allowed: []string{"adopted"},
		Guard:   commands.GuardOwner("ownerEmail"),
	})
}

// PATCH /accept-request-change-reqStatus-petCollection/:id
func (h *MutationHandler) AcceptRequestStatusOnPet() gin.HandlerFunc {
	return h.apply(commands.Transition{
		Store:   h.stores.Pets,
		Allowed: []string{"isRequested"},
		Guard:   commands.GuardOwner("ownerEmail"),
	})
}

// PATCH /accept-request-change-reqStatus/:id
func (h *MutationHandler) AcceptRequestStatus() gin.HandlerFunc {
	return h.apply(commands.Transition{
		Store:   h.stores.Requests,
		Allowed: []string{"isRequested"},
		Guard:   commands.GuardOwner("ownerEmail"),
	})
}

// PATCH /accept-request-change-adoptedStatus-requestedPets/:id
func (h *MutationHandler) AcceptAdoptedStatusOnRequest() gin.HandlerFunc {
	return h.apply(commands.Transition{
		Store:   h.stores.Requests,
		Allowed: []string{"adopted"},
		Guard:   commands.GuardOwner("ownerEmail"),
	})
}

// PATCH /reject-request-status-change/:id
func (h *MutationHandler) RejectRequestStatus() gin.HandlerFunc {
	return h.apply(commands.Transition{
		Store:   h.stores.Pets,
		Allowed: []string{"isRequested"},
		Guard:   commands.GuardOwner("ownerEmail"),
	})
}

// PATCH /change-isPaused-status/:id
func (h *MutationHandler) ChangePausedStatus() gin.HandlerFunc {
	return h.apply(commands.Transition{
		Store:   h.stores.Campaigns,
		Allowed: []string{"isPaused"},
		Guard:   commands.GuardOwner("ownerEmail"),
	})
}

// PATCH /change-donated-amount/:id. Legacy direct-total write kept for the
// frontend's optimistic path; donors adjust totals they do not own.
func (h *MutationHandler) ChangeDonatedAmount() gin.HandlerFunc {
	return h.apply(commands.Transition{
		Store:   h.stores.Campaigns,
		Allowed: []string{"totalDonatedAmount"},
		Guard:   commands.GuardAuthenticated(),
	})
}

// PATCH /amount-change-for-refund/:id
func (h *MutationHandler) ChangeAmountForRefund() gin.HandlerFunc {
	return h.apply(commands.Transition{
		Store:   h.stores.Campaigns,
		Allowed: []string{"totalDonatedAmount"},
		Guard:   commands.GuardAuthenticated(),
	})
}
