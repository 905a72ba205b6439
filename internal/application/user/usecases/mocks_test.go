package usecases

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type mockUserRepository struct {
	createFunc        func(ctx context.Context, u *user.User) error
	updateFunc        func(ctx context.Context, u *user.User) error
	getByIDFunc       func(ctx context.Context, id uint) (*user.User, error)
	getByEmailFunc    func(ctx context.Context, email string) (*user.User, error)
	existsByEmailFunc func(ctx context.Context, email string) (bool, error)
	listFunc          func(ctx context.Context, filter user.ListFilter) ([]*user.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.getByEmailFunc != nil {
		return m.getByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.existsByEmailFunc != nil {
		return m.existsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *mockUserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter)
	}
	return nil, nil
}

// fakeHasher marks hashes with a prefix so Verify can match without bcrypt.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("hash mismatch")
	}
	return nil
}

type mockTokenIssuer struct {
	issueFunc func(userID uint, email, role string) (string, int64, error)
}

func (m *mockTokenIssuer) Issue(userID uint, email, role string) (string, int64, error) {
	if m.issueFunc != nil {
		return m.issueFunc(userID, email, role)
	}
	return "token-abc", 3600, nil
}
