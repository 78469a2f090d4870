//go:build unit

package commands_test

import (
	"context"
	"log/slog"
	"testing"

	"petpromise/internal/infra"
	"petpromise/internal/pkg/errs"
	"petpromise/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDocStore keeps one document in memory and records whether Apply ran.
type fakeDocStore struct {
	id      uuid.UUID
	doc     map[string]any
	applied bool
}

func (s *fakeDocStore) Kind() string { return "fake" }

func (s *fakeDocStore) Fetch(_ context.Context, id uuid.UUID) (map[string]any, error) {
	if id != s.id {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "document not found", nil)
	}
	out := make(map[string]any, len(s.doc))
	for k, v := range s.doc {
		out[k] = v
	}
	return out, nil
}

func (s *fakeDocStore) Apply(_ context.Context, _ uuid.UUID, fields map[string]any) error {
	s.applied = true
	for k, v := range fields {
		s.doc[k] = v
	}
	return nil
}

func newFakeStore() *fakeDocStore {
	return &fakeDocStore{
		id: uuid.New(),
		doc: map[string]any{
			"petName":     "Rex",
			"petCategory": "Dog",
			"ownerEmail":  "owner@example.com",
			"adopted":     false,
		},
	}
}

var petFields = []string{"petName", "petCategory", "adopted"}

func transition(store commands.DocStore, guard commands.Guard) commands.Transition {
	return commands.Transition{Store: store, Allowed: petFields, Guard: guard}
}

func owner() commands.Actor {
	return commands.Actor{Email: "owner@example.com"}
}

func TestApply_NoOpWhenAllFieldsMatch(t *testing.T) {
	store := newFakeStore()
	engine := commands.NewMutationCommands()

	// Incoming values arrive JSON-typed; "false" as string still matches the
	// stored bool under normalization.
	res, err := engine.Apply(context.Background(), transition(store, commands.GuardOwner("ownerEmail")), store.id,
		map[string]any{"petName": "Rex", "adopted": "false"}, owner())

	require.NoError(t, err)
	assert.False(t, res.Changed)
	assert.False(t, store.applied, "no write may be issued for a no-op update")
}

func TestApply_PartialMerge(t *testing.T) {
	store := newFakeStore()
	engine := commands.NewMutationCommands()

	res, err := engine.Apply(context.Background(), transition(store, commands.GuardOwner("ownerEmail")), store.id,
		map[string]any{"petName": "Max"}, owner())

	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.True(t, store.applied)
	assert.Equal(t, "Max", store.doc["petName"])
	// Unlisted fields stay untouched.
	assert.Equal(t, "Dog", store.doc["petCategory"])
	assert.Equal(t, false, store.doc["adopted"])
}

func TestApply_EmptyPayload(t *testing.T) {
	store := newFakeStore()
	engine := commands.NewMutationCommands()

	_, err := engine.Apply(context.Background(), transition(store, nil), store.id, map[string]any{}, owner())
	assert.ErrorIs(t, err, errs.ErrEmptyPayload)
}

func TestApply_NotFound(t *testing.T) {
	store := newFakeStore()
	engine := commands.NewMutationCommands()

	_, err := engine.Apply(context.Background(), transition(store, nil), uuid.New(),
		map[string]any{"petName": "Max"}, owner())
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestApply_FieldNotAllowed(t *testing.T) {
	store := newFakeStore()
	engine := commands.NewMutationCommands()

	_, err := engine.Apply(context.Background(), transition(store, nil), store.id,
		map[string]any{"ownerEmail": "thief@example.com"}, owner())
	assert.ErrorIs(t, err, errs.ErrFieldNotAllowed)
	assert.False(t, store.applied)
}

func TestApply_Guards(t *testing.T) {
	tests := []struct {
		name    string
		guard   commands.Guard
		actor   commands.Actor
		wantErr error
	}{
		{name: "owner allowed", guard: commands.GuardOwner("ownerEmail"), actor: owner()},
		{name: "stranger forbidden", guard: commands.GuardOwner("ownerEmail"), actor: commands.Actor{Email: "other@example.com"}, wantErr: errs.ErrForbidden},
		{name: "admin bypasses ownership", guard: commands.GuardOwner("ownerEmail"), actor: commands.Actor{Email: "root@example.com", Role: "Admin"}},
		{name: "admin-only rejects user", guard: commands.GuardAdminOnly(), actor: owner(), wantErr: errs.ErrForbidden},
		{name: "admin-only admits admin", guard: commands.GuardAdminOnly(), actor: commands.Actor{Email: "root@example.com", Role: "Admin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			engine := commands.NewMutationCommands()

			_, err := engine.Apply(context.Background(), transition(store, tt.guard), store.id,
				map[string]any{"petName": "Max"}, tt.actor)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, store.applied)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
