package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID  uint
	Reference string
	UserEmail string
	UserRole  string
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	var (
		found *ticket.Ticket
		err   error
	)

	switch {
	case query.TicketID != 0:
		found, err = uc.ticketRepo.GetByID(ctx, query.TicketID)
	case query.Reference != "":
		found, err = uc.ticketRepo.GetByReference(ctx, query.Reference)
	default:
		return nil, errors.NewValidationError("ticket id or reference is required")
	}
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", query.TicketID, "reference", query.Reference, "error", err)
		return nil, err
	}

	if !found.CanBeViewedBy(query.UserEmail, query.UserRole) {
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}

	return dto.ToTicketDTO(found), nil
}
