package usecases

import (
	"context"

	"helpdesk/internal/application/user/dto"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/logger"
)

type ListUsersQuery struct {
	Email string
	Role  string
}

type ListUsersResult struct {
	Users []dto.UserDTO
}

type ListUsersExecutor interface {
	Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error)
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(
	userRepo user.Repository,
	logger logger.Interface,
) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error) {
	users, err := uc.userRepo.List(ctx, user.ListFilter{
		Email: query.Email,
		Role:  query.Role,
	})
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, err
	}

	return &ListUsersResult{Users: dto.ToUserDTOs(users)}, nil
}
