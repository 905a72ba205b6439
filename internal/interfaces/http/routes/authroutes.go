package routes

import (
	"github.com/gin-gonic/gin"

	authhandlers "helpdesk/internal/interfaces/http/handlers/auth"
)

type AuthRouteConfig struct {
	AuthHandler *authhandlers.AuthHandler
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/signup", config.AuthHandler.Signup)
		auth.POST("/login", config.AuthHandler.Login)
	}
}
