package commands

import (
	"context"

	"petpromise/internal/domain/pet"
	"petpromise/internal/domain/user"
	"petpromise/internal/pkg/clock"
	"petpromise/internal/pkg/errs"

	"github.com/google/uuid"
)

type AddPetInput struct {
	OwnerEmail       string
	Name             string
	Category         string
	Age              string
	Location         string
	ShortDescription string
	LongDescription  string
	ImageURL         string
}

type PetCommands interface {
	// Add creates a pet owned by the actor. New pets start available.
	Add(ctx context.Context, in AddPetInput, actor Actor) (*pet.Pet, error)
	// Delete removes a pet; only its owner or an admin may do so.
	Delete(ctx context.Context, id uuid.UUID, actor Actor) error
}

type petCommandsImpl struct {
	pets  PetRepository
	clock clock.Clock
}

func NewPetCommands(pets PetRepository, clk clock.Clock) PetCommands {
	return &petCommandsImpl{pets: pets, clock: clk}
}

func (c *petCommandsImpl) Add(ctx context.Context, in AddPetInput, actor Actor) (*pet.Pet, error) {
	owner := user.NormalizeEmail(in.OwnerEmail)
	if owner != actor.Email {
		return nil, errs.ErrForbidden
	}
	if in.Name == "" || in.Category == "" {
		return nil, errs.ErrEmptyPayload
	}

	p := pet.New(owner, in.Name, in.Category, c.clock.Now())
	p.Age = in.Age
	p.Location = in.Location
	p.ShortDescription = in.ShortDescription
	p.LongDescription = in.LongDescription
	p.ImageURL = in.ImageURL

	if err := c.pets.Create(ctx, p); err != nil {
		return nil, errs.Wrap(err, "failed to add pet")
	}
	return p, nil
}

func (c *petCommandsImpl) Delete(ctx context.Context, id uuid.UUID, actor Actor) error {
	p, err := c.pets.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() && p.OwnerEmail != actor.Email {
		return errs.ErrForbidden
	}
	return c.pets.Delete(ctx, id)
}
