package request

import "petpromise/internal/usecase/commands"

type AddPetRequest struct {
	OwnerEmail       string `json:"ownerEmail" binding:"required,email"`
	PetName          string `json:"petName" binding:"required"`
	PetCategory      string `json:"petCategory" binding:"required"`
	PetAge           string `json:"petAge"`
	PetLocation      string `json:"petLocation"`
	ShortDescription string `json:"shortDescription"`
	LongDescription  string `json:"longDescription"`
	PetImage         string `json:"petImage"`
}

func (r AddPetRequest) ToInput() commands.AddPetInput {
	return commands.AddPetInput{
		OwnerEmail:       r.OwnerEmail,
		Name:             r.PetName,
		Category:         r.PetCategory,
		Age:              r.PetAge,
		Location:         r.PetLocation,
		ShortDescription: r.ShortDescription,
		LongDescription:  r.LongDescription,
		ImageURL:         r.PetImage,
	}
}
