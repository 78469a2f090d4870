package request

import "petpromise/internal/usecase/commands"

type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
}

func (r CreateUserRequest) ToInput() commands.RegisterUserInput {
	return commands.RegisterUserInput{
		Email:    r.Email,
		Name:     r.Name,
		PhotoURL: r.PhotoURL,
	}
}
