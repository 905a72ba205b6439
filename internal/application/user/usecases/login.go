package usecases

import (
	"context"

	"helpdesk/internal/application/user/dto"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// TokenIssuer mints access tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID uint, email, role string) (token string, expiresIn int64, err error)
}

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	User        dto.UserDTO
	AccessToken string
	ExpiresIn   int64
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	found, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to look up user", "error", err)
		return nil, err
	}
	// same error for unknown email and wrong password
	if found == nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	if err := uc.hasher.Verify(cmd.Password, found.PasswordHash()); err != nil {
		uc.logger.Warnw("failed login attempt", "email", cmd.Email)
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	token, expiresIn, err := uc.tokens.Issue(found.ID(), found.Email().String(), found.Role().String())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "error", err)
		return nil, errors.NewInternalError("failed to issue access token")
	}

	uc.logger.Infow("user logged in", "user_id", found.ID())

	return &LoginResult{
		User:        *dto.ToUserDTO(found),
		AccessToken: token,
		ExpiresIn:   expiresIn,
	}, nil
}
