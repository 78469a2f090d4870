package postgres

import (
	"context"
	"strings"

	"petpromise/internal/domain/campaign"
	"petpromise/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var campaignDocColumns = map[string]string{
	"petName":           "pet_name",
	"petImage":          "image_url",
	"maxDonationAmount": "max_donation_amount",
	"lastDate":          "last_date",
	"shortDescription":  "short_description",
	"longDescription":   "long_description",
	"isPaused":          "is_paused",
	// Reachable only through the donated-amount routes; the campaign update
	// surface does not list it.
	"totalDonatedAmount": "total_donated_amount",
}

type CampaignRepository struct {
	db DBTX
}

func NewCampaignRepository(db DBTX) *CampaignRepository {
	return &CampaignRepository{db: db}
}

const campaignColumns = `id, owner_email, pet_name, image_url, max_donation_amount,
	total_donated_amount, last_date, short_description, long_description, is_paused, campaign_added_date`

func scanCampaign(row pgx.Row) (*campaign.Campaign, error) {
	var c campaign.Campaign
	err := row.Scan(&c.ID, &c.OwnerEmail, &c.PetName, &c.ImageURL, &c.MaxDonationAmount,
		&c.TotalDonatedAmount, &c.LastDate, &c.ShortDescription, &c.LongDescription,
		&c.IsPaused, &c.CampaignAddedDate)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepository) FindByID(ctx context.Context, id uuid.UUID) (*campaign.Campaign, error) {
	row := r.db.QueryRow(ctx,
		"SELECT "+campaignColumns+" FROM campaigns WHERE id = $1", id)
	c, err := scanCampaign(row)
	if err != nil {
		return nil, wrapQueryErr("failed to find campaign", err)
	}
	return c, nil
}

func (r *CampaignRepository) Create(ctx context.Context, c *campaign.Campaign) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO campaigns (id, owner_email, pet_name, image_url, max_donation_amount,
		   total_donated_amount, last_date, short_description, long_description, is_paused, campaign_added_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		c.ID, c.OwnerEmail, c.PetName, c.ImageURL, c.MaxDonationAmount,
		c.TotalDonatedAmount, c.LastDate, c.ShortDescription, c.LongDescription,
		c.IsPaused, c.CampaignAddedDate)
	if err != nil {
		return wrapQueryErr("failed to create campaign", err)
	}
	return nil
}

func (r *CampaignRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM campaigns WHERE id = $1", id)
	if err != nil {
		return wrapQueryErr("failed to delete campaign", err)
	}
	if tag.RowsAffected() == 0 {
		return notFound("campaign not found")
	}
	return nil
}

func campaignFilterSQL(f queries.CampaignFilter) (string, []any) {
	conds := make([]string, 0, 2)
	args := make([]any, 0, 2)

	if f.OwnerEmail != "" {
		args = append(args, f.OwnerEmail)
		conds = append(conds, "owner_email = "+placeholder(len(args)))
	}
	if f.ExcludeOwnerEmail != "" {
		args = append(args, f.ExcludeOwnerEmail)
		conds = append(conds, "owner_email <> "+placeholder(len(args)))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *CampaignRepository) List(ctx context.Context, f queries.CampaignFilter, limit, offset int32) ([]campaign.Campaign, error) {
	where, args := campaignFilterSQL(f)
	args = append(args, limit, offset)
	query := "SELECT " + campaignColumns + " FROM campaigns" + where +
		" ORDER BY campaign_added_date DESC LIMIT " + placeholder(len(args)-1) + " OFFSET " + placeholder(len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapQueryErr("failed to list campaigns", err)
	}
	defer rows.Close()
	return collectCampaigns(rows)
}

func (r *CampaignRepository) Count(ctx context.Context, f queries.CampaignFilter) (int64, error) {
	where, args := campaignFilterSQL(f)
	var total int64
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM campaigns"+where, args...).Scan(&total)
	if err != nil {
		return 0, wrapQueryErr("failed to count campaigns", err)
	}
	return total, nil
}

// ListActive returns unexpired, unpaused campaigns for the public board.
func (r *CampaignRepository) ListActive(ctx context.Context) ([]campaign.Campaign, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+campaignColumns+` FROM campaigns
		 WHERE last_date >= NOW() AND NOT is_paused
		 ORDER BY campaign_added_date DESC`)
	if err != nil {
		return nil, wrapQueryErr("failed to list active campaigns", err)
	}
	defer rows.Close()
	return collectCampaigns(rows)
}

// SampleActive picks n random active campaigns, excluding the one the caller
// is already looking at.
func (r *CampaignRepository) SampleActive(ctx context.Context, excludeID uuid.UUID, n int32) ([]campaign.Campaign, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+campaignColumns+` FROM campaigns
		 WHERE last_date >= NOW() AND NOT is_paused AND id <> $1
		 ORDER BY random()
		 LIMIT $2`,
		excludeID, n)
	if err != nil {
		return nil, wrapQueryErr("failed to sample active campaigns", err)
	}
	defer rows.Close()
	return collectCampaigns(rows)
}

func collectCampaigns(rows pgx.Rows) ([]campaign.Campaign, error) {
	campaigns := make([]campaign.Campaign, 0)
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, wrapQueryErr("failed to scan campaign row", err)
		}
		campaigns = append(campaigns, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("failed reading campaign rows", err)
	}
	return campaigns, nil
}

func (r *CampaignRepository) Kind() string { return "campaign" }

func (r *CampaignRepository) Fetch(ctx context.Context, id uuid.UUID) (map[string]any, error) {
	c, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"id":                 c.ID,
		"ownerEmail":         c.OwnerEmail,
		"petName":            c.PetName,
		"petImage":           c.ImageURL,
		"maxDonationAmount":  c.MaxDonationAmount,
		"totalDonatedAmount": c.TotalDonatedAmount,
		"lastDate":           c.LastDate,
		"shortDescription":   c.ShortDescription,
		"longDescription":    c.LongDescription,
		"isPaused":           c.IsPaused,
		"campaignAddedDate":  c.CampaignAddedDate,
	}, nil
}

func (r *CampaignRepository) Apply(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	return applyPatch(ctx, r.db, "campaigns", campaignDocColumns, id, fields)
}
