package response

import (
	"time"

	"petpromise/internal/domain/user"

	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	PhotoURL  string    `json:"photoURL,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromUser(u *user.User) *UserResponse {
	var resp UserResponse
	_ = copier.Copy(&resp, u)
	resp.ID = u.ID.String()
	resp.Role = string(u.Role)
	return &resp
}

type UserListResponse struct {
	Users      []UserResponse `json:"users"`
	TotalUsers int64          `json:"totalUsers"`
}

func FromUserList(users []user.User, total int64) UserListResponse {
	items := make([]UserResponse, len(users))
	for i := range users {
		items[i] = *FromUser(&users[i])
	}
	return UserListResponse{Users: items, TotalUsers: total}
}
