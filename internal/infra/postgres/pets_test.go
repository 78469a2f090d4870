//go:build unit

package postgres

import (
	"testing"

	"petpromise/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool { return &b }

func TestPetFilterSQL(t *testing.T) {
	tests := []struct {
		name       string
		filter     queries.PetFilter
		wantClause string
		wantArgs   []any
	}{
		{
			name:       "empty filter produces no clause",
			filter:     queries.PetFilter{},
			wantClause: "",
			wantArgs:   nil,
		},
		{
			name:       "adopted flag only",
			filter:     queries.PetFilter{Adopted: boolPtr(false)},
			wantClause: " WHERE adopted = $1",
			wantArgs:   []any{false},
		},
		{
			name:       "category match is case insensitive",
			filter:     queries.PetFilter{Category: "Dog"},
			wantClause: " WHERE LOWER(category) = LOWER($1)",
			wantArgs:   []any{"Dog"},
		},
		{
			name:       "name search wraps the term in wildcards",
			filter:     queries.PetFilter{NameSearch: "rex"},
			wantClause: " WHERE name ILIKE $1",
			wantArgs:   []any{"%rex%"},
		},
		{
			name: "public listing combines flags in placeholder order",
			filter: queries.PetFilter{
				Adopted:    boolPtr(false),
				Category:   "Cat",
				NameSearch: "mi",
			},
			wantClause: " WHERE adopted = $1 AND LOWER(category) = LOWER($2) AND name ILIKE $3",
			wantArgs:   []any{false, "Cat", "%mi%"},
		},
		{
			name:       "owner scope",
			filter:     queries.PetFilter{OwnerEmail: "owner@example.com"},
			wantClause: " WHERE owner_email = $1",
			wantArgs:   []any{"owner@example.com"},
		},
		{
			name:       "admin listing excludes the caller",
			filter:     queries.PetFilter{ExcludeOwnerEmail: "admin@example.com"},
			wantClause: " WHERE owner_email <> $1",
			wantArgs:   []any{"admin@example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, args := petFilterSQL(tt.filter)
			assert.Equal(t, tt.wantClause, clause)
			if diff := cmp.Diff(tt.wantArgs, args); diff != "" {
				t.Errorf("args mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRequestFilterSQL(t *testing.T) {
	t.Run("owner and pending flag combine", func(t *testing.T) {
		clause, args := requestFilterSQL(queries.RequestFilter{
			OwnerEmail:  "owner@example.com",
			IsRequested: boolPtr(true),
		})
		assert.Equal(t, " WHERE owner_email = $1 AND is_requested = $2", clause)
		assert.Equal(t, []any{"owner@example.com", true}, args)
	})

	t.Run("empty filter produces no clause", func(t *testing.T) {
		clause, args := requestFilterSQL(queries.RequestFilter{})
		assert.Empty(t, clause)
		assert.Nil(t, args)
	})
}
