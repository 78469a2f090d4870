package commands

import (
	"context"

	"petpromise/internal/domain/adoption"
	"petpromise/internal/domain/user"
	"petpromise/internal/infra"
	"petpromise/internal/pkg/clock"
	"petpromise/internal/pkg/errs"

	"github.com/google/uuid"
)

type SubmitRequestInput struct {
	RequestorEmail   string
	RequestorName    string
	RequestorPhone   string
	RequestorAddress string
}

type AdoptionCommands interface {
	// SubmitRequest opens an adoption request for the pet. At most one open
	// request per (requestor, pet) pair; the second submission fails with
	// ErrDuplicateRequest.
	SubmitRequest(ctx context.Context, petID uuid.UUID, in SubmitRequestInput, actor Actor) (*adoption.Request, error)
	// RejectRequest deletes the request. Only the pet's owner (or an admin)
	// may reject; resetting the pet's flags is a separate caller-issued write.
	RejectRequest(ctx context.Context, requestID uuid.UUID, actor Actor) error
}

type adoptionCommandsImpl struct {
	requests RequestRepository
	pets     PetRepository
	clock    clock.Clock
}

func NewAdoptionCommands(requests RequestRepository, pets PetRepository, clk clock.Clock) AdoptionCommands {
	return &adoptionCommandsImpl{requests: requests, pets: pets, clock: clk}
}

func (c *adoptionCommandsImpl) SubmitRequest(ctx context.Context, petID uuid.UUID, in SubmitRequestInput, actor Actor) (*adoption.Request, error) {
	requestor := user.NormalizeEmail(in.RequestorEmail)
	if requestor != actor.Email {
		return nil, errs.ErrForbidden
	}

	p, err := c.pets.FindByID(ctx, petID)
	if err != nil {
		return nil, err
	}
	if !p.CanBeRequested() {
		return nil, errs.ErrDuplicateRequest
	}

	r := adoption.NewRequest(petID, p.OwnerEmail, requestor, c.clock.Now())
	r.RequestorName = in.RequestorName
	r.RequestorPhone = in.RequestorPhone
	r.RequestorAddress = in.RequestorAddress
	r.PetName = p.Name
	r.PetImage = p.ImageURL

	// The existence check alone races with concurrent submissions; the unique
	// (requestor_email, pet_id) constraint is the real gate.
	if err := c.requests.Create(ctx, r); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.ErrDuplicateRequest
		}
		return nil, errs.Wrap(err, "failed to submit adoption request")
	}
	return r, nil
}

func (c *adoptionCommandsImpl) RejectRequest(ctx context.Context, requestID uuid.UUID, actor Actor) error {
	r, err := c.requests.FindByID(ctx, requestID)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() && r.OwnerEmail != actor.Email {
		return errs.ErrForbidden
	}
	return c.requests.Delete(ctx, requestID)
}
