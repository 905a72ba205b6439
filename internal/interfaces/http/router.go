package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	ticketusecases "helpdesk/internal/application/ticket/usecases"
	userusecases "helpdesk/internal/application/user/usecases"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/repository"
	"helpdesk/internal/infrastructure/services"
	"helpdesk/internal/infrastructure/storage"
	authhandlers "helpdesk/internal/interfaces/http/handlers/auth"
	tickethandlers "helpdesk/internal/interfaces/http/handlers/ticket"
	userhandlers "helpdesk/internal/interfaces/http/handlers/user"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/interfaces/http/routes"
	shareddb "helpdesk/internal/shared/db"
	"helpdesk/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	engine *gin.Engine
}

// NewRouter creates a new HTTP router with all dependencies wired
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	engine.Use(middleware.SecurityHeaders())

	// repositories and infrastructure services
	ticketRepo := repository.NewTicketRepository(db)
	userRepo := repository.NewUserRepository(db)
	refGen := services.NewTicketReferenceGenerator(db)
	txMgr := shareddb.NewTransactionManager(db)
	attachments := storage.NewLocalStore(&cfg.Storage, log)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	// use cases
	submitTicketUC := ticketusecases.NewSubmitTicketUseCase(ticketRepo, refGen, txMgr, log)
	getTicketUC := ticketusecases.NewGetTicketUseCase(ticketRepo, log)
	listTicketsUC := ticketusecases.NewListTicketsUseCase(ticketRepo, log)
	updateTicketUC := ticketusecases.NewUpdateTicketUseCase(ticketRepo, log)

	registerUC := userusecases.NewRegisterUserUseCase(userRepo, hasher, log)
	loginUC := userusecases.NewLoginUseCase(userRepo, hasher, jwtService, log)
	listUsersUC := userusecases.NewListUsersUseCase(userRepo, log)
	changePasswordUC := userusecases.NewChangePasswordUseCase(userRepo, hasher, log)

	// handlers
	ticketHandler := tickethandlers.NewTicketHandler(
		submitTicketUC, getTicketUC, listTicketsUC, updateTicketUC, attachments)
	authHandler := authhandlers.NewAuthHandler(registerUC, loginUC)
	userHandler := userhandlers.NewUserHandler(listUsersUC, changePasswordUC)

	// uploaded attachments are served as static files
	engine.Static("/uploads", cfg.Storage.UploadDir)

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		AuthHandler: authHandler,
	})
	routes.SetupTicketRoutes(engine, &routes.TicketRouteConfig{
		TicketHandler:  ticketHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupUserRoutes(engine, &routes.UserRouteConfig{
		UserHandler:    userHandler,
		AuthMiddleware: authMiddleware,
	})

	return &Router{engine: engine}
}

// Engine returns the underlying gin engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
