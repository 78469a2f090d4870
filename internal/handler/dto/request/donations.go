package request

import (
	"petpromise/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateIntentRequest struct {
	DonationAmount float64 `json:"donationAmount" binding:"required"`
}

type RecordDonationRequest struct {
	TransactionID string    `json:"transactionId" binding:"required"`
	CampaignID    uuid.UUID `json:"campaignId" binding:"required"`
	DonorEmail    string    `json:"donorEmail" binding:"required,email"`
	DonorName     string    `json:"donorName"`
	PetName       string    `json:"petName"`
	PetImage      string    `json:"petImage"`
	Amount        float64   `json:"donatedAmount" binding:"required"`
}

func (r RecordDonationRequest) ToInput() commands.RecordDonationInput {
	return commands.RecordDonationInput{
		TransactionID: r.TransactionID,
		CampaignID:    r.CampaignID,
		DonorEmail:    r.DonorEmail,
		DonorName:     r.DonorName,
		PetName:       r.PetName,
		ImageURL:      r.PetImage,
		Amount:        r.Amount,
	}
}
