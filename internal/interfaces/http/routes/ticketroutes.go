package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "helpdesk/internal/interfaces/http/handlers/ticket"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/authorization"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	{
		// anyone can submit a ticket; no account required
		tickets.POST("",
			config.TicketHandler.SubmitTicket)

		// listing requires auth; clients are scoped to their own tickets
		tickets.GET("",
			config.AuthMiddleware.RequireAuth(),
			config.TicketHandler.ListTickets)

		// the board posts the ticket id in the body
		tickets.PATCH("",
			config.AuthMiddleware.RequireAuth(),
			authorization.RequireDeveloper(),
			config.TicketHandler.UpdateTicket)

		tickets.GET("/:id",
			config.AuthMiddleware.RequireAuth(),
			config.TicketHandler.GetTicket)
	}
}
