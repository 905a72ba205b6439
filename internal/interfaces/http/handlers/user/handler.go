package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/user/usecases"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type UserHandler struct {
	listUsersUC      usecases.ListUsersExecutor
	changePasswordUC usecases.ChangePasswordExecutor
	logger           logger.Interface
}

func NewUserHandler(
	listUsersUC usecases.ListUsersExecutor,
	changePasswordUC usecases.ChangePasswordExecutor,
) *UserHandler {
	return &UserHandler{
		listUsersUC:      listUsersUC,
		changePasswordUC: changePasswordUC,
		logger:           logger.NewLogger(),
	}
}

// ChangePasswordRequest is bound from the password change body.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8,max=72"`
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	query := usecases.ListUsersQuery{
		Email: c.Query("email"),
		Role:  c.Query("role"),
	}

	result, err := h.listUsersUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Users)
}

// ChangePassword handles PATCH /users/password for the authenticated user.
func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for change password", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	cmd := usecases.ChangePasswordCommand{
		UserID:          c.GetUint("user_id"),
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	}

	if err := h.changePasswordUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Password updated successfully", nil)
}
