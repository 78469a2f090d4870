package queries

import (
	"context"

	"petpromise/internal/domain/pet"
	"petpromise/internal/domain/user"

	"github.com/google/uuid"
)

type PetQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*pet.Pet, error)
	PublicListing(ctx context.Context, category, search string, page PageRequest) (PageResult[pet.Pet], error)
	ListByOwner(ctx context.Context, ownerEmail string, page PageRequest) (PageResult[pet.Pet], error)
	ListExceptOwner(ctx context.Context, callerEmail string, page PageRequest) (PageResult[pet.Pet], error)
}

type petQueriesImpl struct {
	store PetReadStore
}

func NewPetQueries(store PetReadStore) PetQueries {
	return &petQueriesImpl{store: store}
}

func (q *petQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*pet.Pet, error) {
	return q.store.FindByID(ctx, id)
}

// PublicListing shows only pets still waiting for adoption.
func (q *petQueriesImpl) PublicListing(ctx context.Context, category, search string, page PageRequest) (PageResult[pet.Pet], error) {
	notAdopted := false
	f := PetFilter{
		Adopted:    &notAdopted,
		Category:   category,
		NameSearch: search,
	}
	return q.list(ctx, f, page)
}

func (q *petQueriesImpl) ListByOwner(ctx context.Context, ownerEmail string, page PageRequest) (PageResult[pet.Pet], error) {
	return q.list(ctx, PetFilter{OwnerEmail: user.NormalizeEmail(ownerEmail)}, page)
}

func (q *petQueriesImpl) ListExceptOwner(ctx context.Context, callerEmail string, page PageRequest) (PageResult[pet.Pet], error) {
	return q.list(ctx, PetFilter{ExcludeOwnerEmail: user.NormalizeEmail(callerEmail)}, page)
}

func (q *petQueriesImpl) list(ctx context.Context, f PetFilter, page PageRequest) (PageResult[pet.Pet], error) {
	total, err := q.store.Count(ctx, f)
	if err != nil {
		return PageResult[pet.Pet]{}, err
	}
	items, err := q.store.List(ctx, f, page.Limit32(), page.Offset())
	if err != nil {
		return PageResult[pet.Pet]{}, err
	}
	return NewPageResult(items, total, page), nil
}
