package donation

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Donation is keyed by the external charge reference: persisting the same
// transaction id twice must leave exactly one record.
type Donation struct {
	TransactionID string    `json:"transactionId"`
	CampaignID    uuid.UUID `json:"campaignId"`
	DonorEmail    string    `json:"donorEmail"`
	DonorName     string    `json:"donorName,omitempty"`
	PetName       string    `json:"petName,omitempty"`
	ImageURL      string    `json:"petImage,omitempty"`
	Amount        float64   `json:"donatedAmount"`
	CreatedAt     time.Time `json:"createdAt"`
}

// MinorUnits converts a decimal currency amount to the processor's smallest
// unit, rounding half away from zero to absorb float noise (12.345 → 1235).
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
