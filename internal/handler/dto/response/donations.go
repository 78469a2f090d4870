package response

import (
	"time"

	"petpromise/internal/domain/donation"
	"petpromise/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type DonationResponse struct {
	TransactionID string    `json:"transactionId"`
	CampaignID    string    `json:"campaignId"`
	DonorEmail    string    `json:"donorEmail"`
	DonorName     string    `json:"donorName,omitempty"`
	PetName       string    `json:"petName,omitempty"`
	ImageURL      string    `json:"petImage,omitempty"`
	Amount        float64   `json:"donatedAmount"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromDonation(d *donation.Donation) *DonationResponse {
	var resp DonationResponse
	_ = copier.Copy(&resp, d)
	resp.CampaignID = d.CampaignID.String()
	return &resp
}

func FromDonations(donations []donation.Donation) []DonationResponse {
	items := make([]DonationResponse, len(donations))
	for i := range donations {
		items[i] = *FromDonation(&donations[i])
	}
	return items
}

type DonationHistoryResponse struct {
	Result []DonationResponse `json:"result"`
	Total  int64              `json:"total"`
}

func FromDonationHistory(page queries.PageResult[donation.Donation]) DonationHistoryResponse {
	return DonationHistoryResponse{Result: FromDonations(page.Items), Total: page.TotalCount}
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
