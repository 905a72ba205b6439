package auth

import (
	"helpdesk/internal/application/user/dto"
	"helpdesk/internal/application/user/usecases"
)

type SignupRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Role     string `json:"role,omitempty" binding:"omitempty,oneof=client developer"`
}

func (r *SignupRequest) ToCommand() usecases.RegisterUserCommand {
	return usecases.RegisterUserCommand{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Role:     r.Role,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	User        dto.UserDTO `json:"user"`
	AccessToken string      `json:"access_token"`
	ExpiresIn   int64       `json:"expires_in"`
}
