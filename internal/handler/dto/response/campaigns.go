package response

import (
	"time"

	"petpromise/internal/domain/campaign"
	"petpromise/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

// CampaignResponse carries the derived expiry flag; it is computed against the
// request time and never stored.
type CampaignResponse struct {
	ID                 string    `json:"id"`
	OwnerEmail         string    `json:"ownerEmail"`
	PetName            string    `json:"petName"`
	ImageURL           string    `json:"petImage,omitempty"`
	MaxDonationAmount  float64   `json:"maxDonationAmount"`
	TotalDonatedAmount float64   `json:"totalDonatedAmount"`
	LastDate           time.Time `json:"lastDate"`
	ShortDescription   string    `json:"shortDescription,omitempty"`
	LongDescription    string    `json:"longDescription,omitempty"`
	IsPaused           bool      `json:"isPaused"`
	CampaignAddedDate  time.Time `json:"campaignAddedDate"`
	Expired            bool      `json:"expired"`
}

func FromCampaign(c *campaign.Campaign, now time.Time) *CampaignResponse {
	var resp CampaignResponse
	_ = copier.Copy(&resp, c)
	resp.ID = c.ID.String()
	resp.Expired = c.Expired(now)
	return &resp
}

func FromCampaigns(campaigns []campaign.Campaign, now time.Time) []CampaignResponse {
	items := make([]CampaignResponse, len(campaigns))
	for i := range campaigns {
		items[i] = *FromCampaign(&campaigns[i], now)
	}
	return items
}

type CampaignListResponse struct {
	Campaigns      []CampaignResponse `json:"campaigns"`
	TotalCampaigns int64              `json:"totalCampaigns"`
}

func FromCampaignList(page queries.PageResult[campaign.Campaign], now time.Time) CampaignListResponse {
	return CampaignListResponse{
		Campaigns:      FromCampaigns(page.Items, now),
		TotalCampaigns: page.TotalCount,
	}
}
