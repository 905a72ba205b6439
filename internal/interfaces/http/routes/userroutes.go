package routes

import (
	"github.com/gin-gonic/gin"

	userhandlers "helpdesk/internal/interfaces/http/handlers/user"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/authorization"
)

type UserRouteConfig struct {
	UserHandler    *userhandlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupUserRoutes(engine *gin.Engine, config *UserRouteConfig) {
	users := engine.Group("/users")
	users.Use(config.AuthMiddleware.RequireAuth())
	{
		users.GET("",
			authorization.RequireDeveloper(),
			config.UserHandler.ListUsers)
		users.PATCH("/password", config.UserHandler.ChangePassword)
	}
}
