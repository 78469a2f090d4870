package queries

import (
	"context"

	"petpromise/internal/domain/adoption"
	"petpromise/internal/domain/campaign"
	"petpromise/internal/domain/donation"
	"petpromise/internal/domain/pet"
	"petpromise/internal/domain/user"

	"github.com/google/uuid"
)

// Filters are conjunctions of equality predicates. OwnerEmail and
// ExcludeOwnerEmail are mutually exclusive modes: personal listings set the
// former, admin-wide listings set the latter so admins never see their own
// records.

type PetFilter struct {
	Adopted           *bool
	Category          string
	NameSearch        string // case-insensitive substring
	OwnerEmail        string
	ExcludeOwnerEmail string
}

type RequestFilter struct {
	OwnerEmail  string
	IsRequested *bool
}

type CampaignFilter struct {
	OwnerEmail        string
	ExcludeOwnerEmail string
}

type DonationFilter struct {
	DonorEmail string
	CampaignID *uuid.UUID
}

// Read stores: count and fetch take the same filter; results are sorted by
// creation timestamp descending.

type PetReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*pet.Pet, error)
	List(ctx context.Context, f PetFilter, limit, offset int32) ([]pet.Pet, error)
	Count(ctx context.Context, f PetFilter) (int64, error)
}

type RequestReadStore interface {
	List(ctx context.Context, f RequestFilter, limit, offset int32) ([]adoption.Request, error)
	Count(ctx context.Context, f RequestFilter) (int64, error)
}

type UserReadStore interface {
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	ListExcept(ctx context.Context, email string, limit, offset int32) ([]user.User, error)
	CountExcept(ctx context.Context, email string) (int64, error)
}

type CampaignReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*campaign.Campaign, error)
	List(ctx context.Context, f CampaignFilter, limit, offset int32) ([]campaign.Campaign, error)
	Count(ctx context.Context, f CampaignFilter) (int64, error)
	ListActive(ctx context.Context) ([]campaign.Campaign, error)
	SampleActive(ctx context.Context, excludeID uuid.UUID, n int32) ([]campaign.Campaign, error)
}

type DonationReadStore interface {
	FindByTransactionID(ctx context.Context, transactionID string) (*donation.Donation, error)
	List(ctx context.Context, f DonationFilter, limit, offset int32) ([]donation.Donation, error)
	Count(ctx context.Context, f DonationFilter) (int64, error)
	ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]donation.Donation, error)
}
