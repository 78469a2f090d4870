package queries

import (
	"context"

	"petpromise/internal/domain/campaign"
	"petpromise/internal/domain/user"

	"github.com/google/uuid"
)

const recommendedSampleSize = 3

type CampaignQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*campaign.Campaign, error)
	PublicListing(ctx context.Context, page PageRequest) (PageResult[campaign.Campaign], error)
	ListByOwner(ctx context.Context, ownerEmail string, page PageRequest) (PageResult[campaign.Campaign], error)
	ListExceptOwner(ctx context.Context, callerEmail string, page PageRequest) (PageResult[campaign.Campaign], error)
	// Recommended returns a random sample of active campaigns, excluding the
	// one currently being viewed.
	Recommended(ctx context.Context, excludeID uuid.UUID) ([]campaign.Campaign, error)
	ListActive(ctx context.Context) ([]campaign.Campaign, error)
}

type campaignQueriesImpl struct {
	store CampaignReadStore
}

func NewCampaignQueries(store CampaignReadStore) CampaignQueries {
	return &campaignQueriesImpl{store: store}
}

func (q *campaignQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*campaign.Campaign, error) {
	return q.store.FindByID(ctx, id)
}

func (q *campaignQueriesImpl) PublicListing(ctx context.Context, page PageRequest) (PageResult[campaign.Campaign], error) {
	return q.list(ctx, CampaignFilter{}, page)
}

func (q *campaignQueriesImpl) ListByOwner(ctx context.Context, ownerEmail string, page PageRequest) (PageResult[campaign.Campaign], error) {
	return q.list(ctx, CampaignFilter{OwnerEmail: user.NormalizeEmail(ownerEmail)}, page)
}

func (q *campaignQueriesImpl) ListExceptOwner(ctx context.Context, callerEmail string, page PageRequest) (PageResult[campaign.Campaign], error) {
	return q.list(ctx, CampaignFilter{ExcludeOwnerEmail: user.NormalizeEmail(callerEmail)}, page)
}

func (q *campaignQueriesImpl) Recommended(ctx context.Context, excludeID uuid.UUID) ([]campaign.Campaign, error) {
	return q.store.SampleActive(ctx, excludeID, recommendedSampleSize)
}

func (q *campaignQueriesImpl) ListActive(ctx context.Context) ([]campaign.Campaign, error) {
	return q.store.ListActive(ctx)
}

func (q *campaignQueriesImpl) list(ctx context.Context, f CampaignFilter, page PageRequest) (PageResult[campaign.Campaign], error) {
	total, err := q.store.Count(ctx, f)
	if err != nil {
		return PageResult[campaign.Campaign]{}, err
	}
	items, err := q.store.List(ctx, f, page.Limit32(), page.Offset())
	if err != nil {
		return PageResult[campaign.Campaign]{}, err
	}
	return NewPageResult(items, total, page), nil
}
