package queries

import "strconv"

// Per-endpoint default page sizes, matching the public API contract.
const (
	DefaultPetListingLimit     = 10
	DefaultMyPetsLimit         = 8
	DefaultAdminListLimit      = 5
	DefaultCampaignLimit       = 6
	DefaultPublicCampaignLimit = 12
	DefaultUsersLimit          = 10
	DefaultDonationLimit       = 6

	MaxListLimit = 200
)

type PageRequest struct {
	Page  int
	Limit int
}

// NewPageRequest parses raw query values, falling back to page 1 and the
// endpoint's default limit on absent or non-numeric input.
func NewPageRequest(pageRaw, limitRaw string, defaultLimit int) PageRequest {
	page, err := strconv.Atoi(pageRaw)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(limitRaw)
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	return PageRequest{Page: page, Limit: limit}
}

func (p PageRequest) Offset() int32 {
	return int32((p.Page - 1) * p.Limit)
}

func (p PageRequest) Limit32() int32 {
	return int32(p.Limit)
}

// PageResult carries one page plus the totals every listing endpoint reports.
// Count and fetch run under the same filter but not the same snapshot, so the
// totals are approximate under concurrent inserts.
type PageResult[T any] struct {
	Items      []T
	TotalCount int64
	Page       int
	TotalPages int
	HasMore    bool
}

func NewPageResult[T any](items []T, total int64, req PageRequest) PageResult[T] {
	totalPages := int((total + int64(req.Limit) - 1) / int64(req.Limit))
	return PageResult[T]{
		Items:      items,
		TotalCount: total,
		Page:       req.Page,
		TotalPages: totalPages,
		HasMore:    int64(req.Page*req.Limit) < total,
	}
}
