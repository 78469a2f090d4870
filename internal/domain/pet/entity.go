package pet

import (
	"time"

	"github.com/google/uuid"
)

// State is derived from the two persisted flags. The lifecycle is
// available → requested → adopted, with rejection returning to available.
type State string

const (
	StateAvailable State = "available"
	StateRequested State = "requested"
	StateAdopted   State = "adopted"
)

type Pet struct {
	ID               uuid.UUID `json:"id"`
	OwnerEmail       string    `json:"ownerEmail"`
	Name             string    `json:"petName"`
	Category         string    `json:"petCategory"`
	Age              string    `json:"petAge,omitempty"`
	Location         string    `json:"petLocation,omitempty"`
	ShortDescription string    `json:"shortDescription,omitempty"`
	LongDescription  string    `json:"longDescription,omitempty"`
	ImageURL         string    `json:"petImage,omitempty"`
	Adopted          bool      `json:"adopted"`
	IsRequested      bool      `json:"isRequested"`
	CreatedAt        time.Time `json:"createdAt"`
}

func New(ownerEmail, name, category string, now time.Time) *Pet {
	return &Pet{
		ID:          uuid.New(),
		OwnerEmail:  ownerEmail,
		Name:        name,
		Category:    category,
		Adopted:     false,
		IsRequested: false,
		CreatedAt:   now,
	}
}

func (p *Pet) State() State {
	switch {
	case p.Adopted:
		return StateAdopted
	case p.IsRequested:
		return StateRequested
	default:
		return StateAvailable
	}
}

// Adoption is terminal.
func (p *Pet) CanBeRequested() bool {
	return !p.Adopted
}
