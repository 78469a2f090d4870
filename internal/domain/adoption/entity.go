package adoption

import (
	"time"

	"github.com/google/uuid"
)

// Request records one user's intent to adopt one pet. The
// (RequestorEmail, PetID) pair is unique; the storage layer enforces it with a
// constraint so concurrent submissions cannot both pass the existence check.
type Request struct {
	ID               uuid.UUID `json:"id"`
	PetID            uuid.UUID `json:"petId"`
	OwnerEmail       string    `json:"ownerEmail"`
	RequestorEmail   string    `json:"requestorEmail"`
	RequestorName    string    `json:"requestorName,omitempty"`
	RequestorPhone   string    `json:"requestorPhone,omitempty"`
	RequestorAddress string    `json:"requestorAddress,omitempty"`
	PetName          string    `json:"petName,omitempty"`
	PetImage         string    `json:"petImage,omitempty"`
	IsRequested      bool      `json:"isRequested"`
	Adopted          bool      `json:"adopted"`
	CreatedAt        time.Time `json:"createdAt"`
}

func NewRequest(petID uuid.UUID, ownerEmail, requestorEmail string, now time.Time) *Request {
	return &Request{
		ID:             uuid.New(),
		PetID:          petID,
		OwnerEmail:     ownerEmail,
		RequestorEmail: requestorEmail,
		IsRequested:    true,
		Adopted:        false,
		CreatedAt:      now,
	}
}
