package commands

import (
	"context"

	"petpromise/internal/domain/adoption"
	"petpromise/internal/domain/campaign"
	"petpromise/internal/domain/donation"
	"petpromise/internal/domain/pet"
	"petpromise/internal/domain/user"

	"github.com/google/uuid"
)

// Actor identifies the authenticated caller. Role is resolved lazily by the
// admin gate; an empty role means "not looked up", not "no role".
type Actor struct {
	Email string
	Role  user.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role.IsAdmin()
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	Create(ctx context.Context, u *user.User) error
}

type PetRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*pet.Pet, error)
	Create(ctx context.Context, p *pet.Pet) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type RequestRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*adoption.Request, error)
	Create(ctx context.Context, r *adoption.Request) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CampaignRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*campaign.Campaign, error)
	Create(ctx context.Context, c *campaign.Campaign) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PaymentIntent is the client-usable handle returned by the external charge
// service.
type PaymentIntent struct {
	ID           string
	ClientSecret string
}

type PaymentService interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency string) (*PaymentIntent, error)
}

// Ledger groups the donation and campaign-total writes that must land
// together. All methods run inside the transaction opened by UnitOfWork.
type Ledger interface {
	// InsertDonation reports false when a record with the same transaction id
	// already exists; no row is written in that case.
	InsertDonation(ctx context.Context, d *donation.Donation) (bool, error)
	AddToCampaignTotal(ctx context.Context, campaignID uuid.UUID, amount float64) error
	// DeleteDonation returns the removed record, or a not-found error when the
	// transaction id is unknown (guards duplicate refunds).
	DeleteDonation(ctx context.Context, transactionID string) (*donation.Donation, error)
	// SubtractFromCampaignTotal floors the stored total at zero.
	SubtractFromCampaignTotal(ctx context.Context, campaignID uuid.UUID, amount float64) error
}

type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, ledger Ledger) error) error
}
