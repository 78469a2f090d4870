package request

import (
	"time"

	"petpromise/internal/usecase/commands"
)

type CreateCampaignRequest struct {
	OwnerEmail        string    `json:"ownerEmail" binding:"required,email"`
	PetName           string    `json:"petName" binding:"required"`
	PetImage          string    `json:"petImage"`
	MaxDonationAmount float64   `json:"maxDonationAmount"`
	LastDate          time.Time `json:"lastDate" binding:"required"`
	ShortDescription  string    `json:"shortDescription"`
	LongDescription   string    `json:"longDescription"`
}

func (r CreateCampaignRequest) ToInput() commands.CreateCampaignInput {
	return commands.CreateCampaignInput{
		OwnerEmail:        r.OwnerEmail,
		PetName:           r.PetName,
		ImageURL:          r.PetImage,
		MaxDonationAmount: r.MaxDonationAmount,
		LastDate:          r.LastDate,
		ShortDescription:  r.ShortDescription,
		LongDescription:   r.LongDescription,
	}
}
