package postgres

import (
	"context"
	"strings"

	"petpromise/internal/domain/donation"
	"petpromise/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type DonationRepository struct {
	db DBTX
}

func NewDonationRepository(db DBTX) *DonationRepository {
	return &DonationRepository{db: db}
}

const donationColumns = `transaction_id, campaign_id, donor_email, donor_name,
	pet_name, image_url, amount, created_at`

func scanDonation(row pgx.Row) (*donation.Donation, error) {
	var d donation.Donation
	err := row.Scan(&d.TransactionID, &d.CampaignID, &d.DonorEmail, &d.DonorName,
		&d.PetName, &d.ImageURL, &d.Amount, &d.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DonationRepository) FindByTransactionID(ctx context.Context, transactionID string) (*donation.Donation, error) {
	row := r.db.QueryRow(ctx,
		"SELECT "+donationColumns+" FROM donations WHERE transaction_id = $1", transactionID)
	d, err := scanDonation(row)
	if err != nil {
		return nil, wrapQueryErr("failed to find donation", err)
	}
	return d, nil
}

func donationFilterSQL(f queries.DonationFilter) (string, []any) {
	conds := make([]string, 0, 2)
	args := make([]any, 0, 2)

	if f.DonorEmail != "" {
		args = append(args, f.DonorEmail)
		conds = append(conds, "donor_email = "+placeholder(len(args)))
	}
	if f.CampaignID != nil {
		args = append(args, *f.CampaignID)
		conds = append(conds, "campaign_id = "+placeholder(len(args)))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *DonationRepository) List(ctx context.Context, f queries.DonationFilter, limit, offset int32) ([]donation.Donation, error) {
	where, args := donationFilterSQL(f)
	args = append(args, limit, offset)
	query := "SELECT " + donationColumns + " FROM donations" + where +
		" ORDER BY created_at DESC LIMIT " + placeholder(len(args)-1) + " OFFSET " + placeholder(len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapQueryErr("failed to list donations", err)
	}
	defer rows.Close()
	return collectDonations(rows)
}

func (r *DonationRepository) Count(ctx context.Context, f queries.DonationFilter) (int64, error) {
	where, args := donationFilterSQL(f)
	var total int64
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM donations"+where, args...).Scan(&total)
	if err != nil {
		return 0, wrapQueryErr("failed to count donations", err)
	}
	return total, nil
}

func (r *DonationRepository) ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]donation.Donation, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+donationColumns+` FROM donations
		 WHERE campaign_id = $1
		 ORDER BY created_at DESC`,
		campaignID)
	if err != nil {
		return nil, wrapQueryErr("failed to list campaign donations", err)
	}
	defer rows.Close()
	return collectDonations(rows)
}

func collectDonations(rows pgx.Rows) ([]donation.Donation, error) {
	donations := make([]donation.Donation, 0)
	for rows.Next() {
		d, err := scanDonation(rows)
		if err != nil {
			return nil, wrapQueryErr("failed to scan donation row", err)
		}
		donations = append(donations, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("failed reading donation rows", err)
	}
	return donations, nil
}
