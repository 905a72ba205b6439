package dto

import (
	"time"

	"helpdesk/internal/domain/user"
)

type UserDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func ToUserDTO(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:        u.ID(),
		Name:      u.Name(),
		Email:     u.Email().String(),
		Role:      u.Role().String(),
		CreatedAt: u.CreatedAt(),
	}
}

func ToUserDTOs(users []*user.User) []UserDTO {
	result := make([]UserDTO, 0, len(users))
	for _, u := range users {
		result = append(result, *ToUserDTO(u))
	}
	return result
}
