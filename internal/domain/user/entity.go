package user

import (
	"time"

	"github.com/google/uuid"
)

// User is created on first sight of an email and never deleted. Role defaults
// to RoleUser and changes only through an admin-gated promotion.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	PhotoURL  string    `json:"photoURL,omitempty"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func New(email Email, name, photoURL string, now time.Time) *User {
	return &User{
		ID:        uuid.New(),
		Email:     email.Value(),
		Name:      name,
		PhotoURL:  photoURL,
		Role:      RoleUser,
		CreatedAt: now,
	}
}
