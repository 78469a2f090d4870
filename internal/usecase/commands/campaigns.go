package commands

import (
	"context"
	"time"

	"petpromise/internal/domain/campaign"
	"petpromise/internal/domain/user"
	"petpromise/internal/pkg/clock"
	"petpromise/internal/pkg/errs"

	"github.com/google/uuid"
)

type CreateCampaignInput struct {
	OwnerEmail        string
	PetName           string
	ImageURL          string
	MaxDonationAmount float64
	LastDate          time.Time
	ShortDescription  string
	LongDescription   string
}

type CampaignCommands interface {
	Create(ctx context.Context, in CreateCampaignInput, actor Actor) (*campaign.Campaign, error)
	// Delete is admin-only.
	Delete(ctx context.Context, id uuid.UUID, actor Actor) error
}

type campaignCommandsImpl struct {
	campaigns CampaignRepository
	clock     clock.Clock
}

func NewCampaignCommands(campaigns CampaignRepository, clk clock.Clock) CampaignCommands {
	return &campaignCommandsImpl{campaigns: campaigns, clock: clk}
}

func (c *campaignCommandsImpl) Create(ctx context.Context, in CreateCampaignInput, actor Actor) (*campaign.Campaign, error) {
	owner := user.NormalizeEmail(in.OwnerEmail)
	if owner != actor.Email {
		return nil, errs.ErrForbidden
	}
	if in.PetName == "" || in.LastDate.IsZero() {
		return nil, errs.ErrEmptyPayload
	}

	cmp := &campaign.Campaign{
		ID:                uuid.New(),
		OwnerEmail:        owner,
		PetName:           in.PetName,
		ImageURL:          in.ImageURL,
		MaxDonationAmount: in.MaxDonationAmount,
		LastDate:          in.LastDate,
		ShortDescription:  in.ShortDescription,
		LongDescription:   in.LongDescription,
		CampaignAddedDate: c.clock.Now(),
	}
	if err := c.campaigns.Create(ctx, cmp); err != nil {
		return nil, errs.Wrap(err, "failed to create campaign")
	}
	return cmp, nil
}

func (c *campaignCommandsImpl) Delete(ctx context.Context, id uuid.UUID, actor Actor) error {
	if !actor.IsAdmin() {
		return errs.ErrForbidden
	}
	if _, err := c.campaigns.FindByID(ctx, id); err != nil {
		return err
	}
	return c.campaigns.Delete(ctx, id)
}
