package auth

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userdto "helpdesk/internal/application/user/dto"
	"helpdesk/internal/application/user/usecases"
	"helpdesk/internal/interfaces/http/handlers/testutil"
	"helpdesk/internal/shared/errors"
)

type mockRegisterUC struct {
	result  *userdto.UserDTO
	err     error
	lastCmd usecases.RegisterUserCommand
}

func (m *mockRegisterUC) Execute(_ context.Context, cmd usecases.RegisterUserCommand) (*userdto.UserDTO, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockLoginUC struct {
	result  *usecases.LoginResult
	err     error
	lastCmd usecases.LoginCommand
}

func (m *mockLoginUC) Execute(_ context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

func newTestHandler() (*AuthHandler, *mockRegisterUC, *mockLoginUC) {
	register := &mockRegisterUC{}
	login := &mockLoginUC{}
	return NewAuthHandler(register, login), register, login
}

func TestSignup_Success(t *testing.T) {
	h, register, _ := newTestHandler()
	register.result = &userdto.UserDTO{ID: 1, Name: "Ann", Email: "ann@x.com", Role: "client"}

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/signup", SignupRequest{
		Name:     "Ann",
		Email:    "ann@x.com",
		Password: "sup3rsecret",
	})

	h.Signup(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "ann@x.com", register.lastCmd.Email)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}

func TestSignup_InvalidBody(t *testing.T) {
	h, _, _ := newTestHandler()

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/signup", map[string]string{
		"name":     "Ann",
		"email":    "not-an-address",
		"password": "sup3rsecret",
	})

	h.Signup(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignup_ShortPassword(t *testing.T) {
	h, _, _ := newTestHandler()

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/signup", map[string]string{
		"name":     "Ann",
		"email":    "ann@x.com",
		"password": "short",
	})

	h.Signup(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	h, register, _ := newTestHandler()
	register.err = errors.NewConflictError("a user with this email already exists")

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/signup", SignupRequest{
		Name:     "Ann",
		Email:    "ann@x.com",
		Password: "sup3rsecret",
	})

	h.Signup(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLogin_Success(t *testing.T) {
	h, _, login := newTestHandler()
	login.result = &usecases.LoginResult{
		User:        userdto.UserDTO{ID: 1, Email: "ann@x.com", Role: "client"},
		AccessToken: "jwt-token",
		ExpiresIn:   900,
	}

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/login", LoginRequest{
		Email:    "ann@x.com",
		Password: "sup3rsecret",
	})

	h.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ann@x.com", login.lastCmd.Email)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, string(resp.Data), "jwt-token")
}

func TestLogin_BadCredentials(t *testing.T) {
	h, _, login := newTestHandler()
	login.err = errors.NewUnauthorizedError("invalid email or password")

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/login", LoginRequest{
		Email:    "ann@x.com",
		Password: "wrongpass",
	})

	h.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
