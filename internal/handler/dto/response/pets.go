package response

import (
	"time"

	"petpromise/internal/domain/pet"
	"petpromise/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type PetResponse struct {
	ID               string    `json:"id"`
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

func FromPet(p *pet.Pet) *PetResponse {
	var resp PetResponse
	_ = copier.Copy(&resp, p)
	resp.ID = p.ID.String()
	return &resp
}

func fromPets(pets []pet.Pet) []PetResponse {
	items := make([]PetResponse, len(pets))
	for i := range pets {
		items[i] = *FromPet(&pets[i])
	}
	return items
}

// PetListingResponse is the public adoptable-pet page.
type PetListingResponse struct {
	Pets        []PetResponse `json:"pets"`
	CurrentPage int           `json:"currentPage"`
	TotalPets   int64         `json:"totalPets"`
	TotalPages  int           `json:"totalPages"`
	HasMore     bool          `json:"hasMore"`
}

func FromPetListing(page queries.PageResult[pet.Pet]) PetListingResponse {
	return PetListingResponse{
		Pets:        fromPets(page.Items),
		CurrentPage: page.Page,
		TotalPets:   page.TotalCount,
		TotalPages:  page.TotalPages,
		HasMore:     page.HasMore,
	}
}

type MyPetsResponse struct {
	Result    []PetResponse `json:"result"`
	TotalPets int64         `json:"totalPets"`
}

func FromMyPets(page queries.PageResult[pet.Pet]) MyPetsResponse {
	return MyPetsResponse{Result: fromPets(page.Items), TotalPets: page.TotalCount}
}

type AllPetsResponse struct {
	Total int64         `json:"total"`
	Pets  []PetResponse `json:"pets"`
}

func FromAllPets(page queries.PageResult[pet.Pet]) AllPetsResponse {
	return AllPetsResponse{Total: page.TotalCount, Pets: fromPets(page.Items)}
}
