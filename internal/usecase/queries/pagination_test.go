//go:build unit

package queries_test

import (
	"testing"

	"petpromise/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
)

func TestNewPageRequest(t *testing.T) {
	tests := []struct {
		name      string
		page      string
		limit     string
		defLimit  int
		wantPage  int
		wantLimit int
	}{
		{name: "both absent", page: "", limit: "", defLimit: 10, wantPage: 1, wantLimit: 10},
		{name: "explicit values", page: "3", limit: "5", defLimit: 10, wantPage: 3, wantLimit: 5},
		{name: "non-numeric", page: "abc", limit: "x", defLimit: 8, wantPage: 1, wantLimit: 8},
		{name: "zero and negative", page: "0", limit: "-4", defLimit: 6, wantPage: 1, wantLimit: 6},
		{name: "limit capped", page: "1", limit: "10000", defLimit: 10, wantPage: 1, wantLimit: queries.MaxListLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pr := queries.NewPageRequest(tt.page, tt.limit, tt.defLimit)
			assert.Equal(t, tt.wantPage, pr.Page)
			assert.Equal(t, tt.wantLimit, pr.Limit)
		})
	}
}

func TestOffset(t *testing.T) {
	pr := queries.PageRequest{Page: 3, Limit: 10}
	assert.Equal(t, int32(20), pr.Offset())
}

// 25 documents with limit 10: pages of 10, 10 and 5.
func TestNewPageResult(t *testing.T) {
	page1 := queries.NewPageResult(make([]int, 10), 25, queries.PageRequest{Page: 1, Limit: 10})
	assert.Equal(t, 3, page1.TotalPages)
	assert.True(t, page1.HasMore)

	page3 := queries.NewPageResult(make([]int, 5), 25, queries.PageRequest{Page: 3, Limit: 10})
	assert.Equal(t, 3, page3.TotalPages)
	assert.False(t, page3.HasMore)
	assert.Len(t, page3.Items, 5)

	exact := queries.NewPageResult(make([]int, 10), 20, queries.PageRequest{Page: 2, Limit: 10})
	assert.Equal(t, 2, exact.TotalPages)
	assert.False(t, exact.HasMore)

	empty := queries.NewPageResult([]int{}, 0, queries.PageRequest{Page: 1, Limit: 10})
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasMore)
}
