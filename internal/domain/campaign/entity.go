package campaign

import (
	"time"

	"github.com/google/uuid"
)

// Campaign accumulates donations until LastDate. TotalDonatedAmount is a
// maintained counter; the donation ledger only moves it through idempotent,
// transaction-scoped adjustments.
type Campaign struct {
	ID                 uuid.UUID `json:"id"`
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
}

// Expired is derived, never persisted.
func (c *Campaign) Expired(now time.Time) bool {
	return c.LastDate.Before(now)
}

func (c *Campaign) AcceptsDonations(now time.Time) bool {
	return !c.IsPaused && !c.Expired(now)
}
