package commands

import (
	"context"

	"petpromise/internal/pkg/errs"
	"petpromise/internal/pkg/patch"

	"github.com/google/uuid"
)

// DocStore is a partial-update target. Fetch returns the stored document keyed
// by its public field names; Apply merges only the listed fields.
type DocStore interface {
	Kind() string
	Fetch(ctx context.Context, id uuid.UUID) (map[string]any, error)
	Apply(ctx context.Context, id uuid.UUID, fields map[string]any) error
}

// Guard decides whether the actor may mutate the fetched document.
type Guard func(doc map[string]any, actor Actor) error

// GuardOwner admits the actor whose email matches the document's owner field,
// or any admin.
func GuardOwner(ownerField string) Guard {
	return func(doc map[string]any, actor Actor) error {
		if actor.IsAdmin() {
			return nil
		}
		owner, _ := doc[ownerField].(string)
		if owner == "" || owner != actor.Email {
			return errs.ErrForbidden
		}
		return nil
	}
}

func GuardAdminOnly() Guard {
	return func(_ map[string]any, actor Actor) error {
		if !actor.IsAdmin() {
			return errs.ErrForbidden
		}
		return nil
	}
}

// GuardAuthenticated admits any caller that passed the auth middleware.
func GuardAuthenticated() Guard {
	return func(_ map[string]any, _ Actor) error { return nil }
}

// Transition binds one PUT/PATCH route to its target store, writable fields
// and permission predicate. All status endpoints share the one Apply path
// instead of duplicating per-entity handlers.
type Transition struct {
	Store   DocStore
	Allowed []string
	Guard   Guard
}

type MutationResult struct {
	// Changed is false when every supplied field already matched and no write
	// was performed. Callers rely on observing the no-op.
	Changed bool
	Doc     map[string]any
}

type MutationCommands interface {
	Apply(ctx context.Context, t Transition, id uuid.UUID, docPatch map[string]any, actor Actor) (*MutationResult, error)
}

type mutationEngine struct{}

func NewMutationCommands() MutationCommands {
	return &mutationEngine{}
}

func (e *mutationEngine) Apply(ctx context.Context, t Transition, id uuid.UUID, docPatch map[string]any, actor Actor) (*MutationResult, error) {
	if len(docPatch) == 0 {
		return nil, errs.ErrEmptyPayload
	}

	for key := range docPatch {
		if !allowed(t.Allowed, key) {
			return nil, errs.Mark(errs.New("field "+key+" rejected for "+t.Store.Kind()), errs.ErrFieldNotAllowed)
		}
	}

	stored, err := t.Store.Fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	if t.Guard != nil {
		if err := t.Guard(stored, actor); err != nil {
			return nil, err
		}
	}

	// Diff before write: skip the update when every supplied field already
	// holds the requested value under string normalization.
	allMatch := true
	for key, incoming := range docPatch {
		if !patch.Equal(incoming, stored[key]) {
			allMatch = false
			break
		}
	}
	if allMatch {
		return &MutationResult{Changed: false, Doc: stored}, nil
	}

	if err := t.Store.Apply(ctx, id, docPatch); err != nil {
		return nil, err
	}

	merged := make(map[string]any, len(stored))
	for k, v := range stored {
		merged[k] = v
	}
	for k, v := range docPatch {
		merged[k] = v
	}
	return &MutationResult{Changed: true, Doc: merged}, nil
}

func allowed(fields []string, key string) bool {
	for _, f := range fields {
		if f == key {
			return true
		}
	}
	return false
}
