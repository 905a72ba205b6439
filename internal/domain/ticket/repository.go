package ticket

import (
	"context"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	GetByReference(ctx context.Context, reference string) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, error)
}

// TicketFilter narrows List results. All fields are optional; results are
// always ordered newest-first by creation time.
type TicketFilter struct {
	ClientEmail *string
	Status      *vo.TicketStatus
	Category    *vo.Category
	AssignedTo  *string
}
