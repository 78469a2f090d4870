package queries

import (
	"context"

	"petpromise/internal/domain/donation"
	"petpromise/internal/domain/user"

	"github.com/google/uuid"
)

type DonationQueries interface {
	GetByTransactionID(ctx context.Context, transactionID string) (*donation.Donation, error)
	ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]donation.Donation, error)
	History(ctx context.Context, donorEmail string, page PageRequest) (PageResult[donation.Donation], error)
}

type donationQueriesImpl struct {
	store DonationReadStore
}

func NewDonationQueries(store DonationReadStore) DonationQueries {
	return &donationQueriesImpl{store: store}
}

func (q *donationQueriesImpl) GetByTransactionID(ctx context.Context, transactionID string) (*donation.Donation, error) {
	return q.store.FindByTransactionID(ctx, transactionID)
}

func (q *donationQueriesImpl) ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]donation.Donation, error) {
	return q.store.ListByCampaign(ctx, campaignID)
}

func (q *donationQueriesImpl) History(ctx context.Context, donorEmail string, page PageRequest) (PageResult[donation.Donation], error) {
	f := DonationFilter{DonorEmail: user.NormalizeEmail(donorEmail)}

	total, err := q.store.Count(ctx, f)
	if err != nil {
		return PageResult[donation.Donation]{}, err
	}
	items, err := q.store.List(ctx, f, page.Limit32(), page.Offset())
	if err != nil {
		return PageResult[donation.Donation]{}, err
	}
	return NewPageResult(items, total, page), nil
}
