package queries

import (
	"context"

	"petpromise/internal/domain/adoption"
	"petpromise/internal/domain/user"
)

type AdoptionQueries interface {
	// RequestsForOwner lists open requests against the caller's own pets.
	RequestsForOwner(ctx context.Context, ownerEmail string, page PageRequest) (PageResult[adoption.Request], error)
}

type adoptionQueriesImpl struct {
	store RequestReadStore
}

func NewAdoptionQueries(store RequestReadStore) AdoptionQueries {
	return &adoptionQueriesImpl{store: store}
}

func (q *adoptionQueriesImpl) RequestsForOwner(ctx context.Context, ownerEmail string, page PageRequest) (PageResult[adoption.Request], error) {
	open := true
	f := RequestFilter{OwnerEmail: user.NormalizeEmail(ownerEmail), IsRequested: &open}

	total, err := q.store.Count(ctx, f)
	if err != nil {
		return PageResult[adoption.Request]{}, err
	}
	items, err := q.store.List(ctx, f, page.Limit32(), page.Offset())
	if err != nil {
		return PageResult[adoption.Request]{}, err
	}
	return NewPageResult(items, total, page), nil
}
