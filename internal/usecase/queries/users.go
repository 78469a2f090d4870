package queries

import (
	"context"

	"petpromise/internal/domain/user"
)

type UserQueries interface {
	// RoleByEmail backs both the role lookup endpoint and the admin gate.
	RoleByEmail(ctx context.Context, email string) (user.Role, error)
	ListExcept(ctx context.Context, callerEmail string, page PageRequest) (PageResult[user.User], error)
}

type userQueriesImpl struct {
	store UserReadStore
}

func NewUserQueries(store UserReadStore) UserQueries {
	return &userQueriesImpl{store: store}
}

func (q *userQueriesImpl) RoleByEmail(ctx context.Context, email string) (user.Role, error) {
	u, err := q.store.FindByEmail(ctx, user.NormalizeEmail(email))
	if err != nil {
		return "", err
	}
	return u.Role, nil
}

func (q *userQueriesImpl) ListExcept(ctx context.Context, callerEmail string, page PageRequest) (PageResult[user.User], error) {
	caller := user.NormalizeEmail(callerEmail)
	total, err := q.store.CountExcept(ctx, caller)
	if err != nil {
		return PageResult[user.User]{}, err
	}
	items, err := q.store.ListExcept(ctx, caller, page.Limit32(), page.Offset())
	if err != nil {
		return PageResult[user.User]{}, err
	}
	return NewPageResult(items, total, page), nil
}
