package ticket

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/shared/utils"
)

// SubmitTicketForm is bound from the public multipart submission form.
// The video and screenshot files are read separately from the request.
type SubmitTicketForm struct {
	ClientName  string `form:"client_name" binding:"required,max=100"`
	ClientEmail string `form:"client_email" binding:"required,email"`
	ClientPhone string `form:"client_phone" binding:"max=50"`
	Category    string `form:"category" binding:"required"`
	Message     string `form:"message" binding:"required,max=10000"`
}

type UpdateTicketRequest struct {
	ID         uint    `json:"id" binding:"required"`
	Status     *string `json:"status,omitempty"`
	AssignedTo *string `json:"assigned_to,omitempty"`
}

func (r *UpdateTicketRequest) ToCommand() usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		TicketID:   r.ID,
		Status:     r.Status,
		AssignedTo: r.AssignedTo,
	}
}

type ListTicketsRequest struct {
	ClientEmail *string `json:"client_email" validate:"omitempty,email,max=255"`
	Status      *string `json:"status" validate:"omitempty,max=50"`
	Category    *string `json:"category" validate:"omitempty,max=20"`
	AssignedTo  *string `json:"assigned_to" validate:"omitempty,max=255"`
}

func (r *ListTicketsRequest) ToQuery(userEmail, userRole string) usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		UserEmail:   userEmail,
		UserRole:    userRole,
		ClientEmail: r.ClientEmail,
		Status:      r.Status,
		Category:    r.Category,
		AssignedTo:  r.AssignedTo,
	}
}

func parseListTicketsRequest(c *gin.Context) (ListTicketsRequest, error) {
	req := ListTicketsRequest{}
	if v, ok := c.GetQuery("client_email"); ok {
		req.ClientEmail = &v
	}
	if v, ok := c.GetQuery("status"); ok {
		req.Status = &v
	}
	if v, ok := c.GetQuery("category"); ok {
		req.Category = &v
	}
	if v, ok := c.GetQuery("assigned_to"); ok {
		req.AssignedTo = &v
	}

	if err := utils.ValidateStruct(req); err != nil {
		return ListTicketsRequest{}, err
	}

	return req, nil
}
