package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ListTicketsQuery struct {
	UserEmail   string
	UserRole    string
	ClientEmail *string
	Status      *string
	Category    *string
	AssignedTo  *string
}

type ListTicketsResult struct {
	Tickets []dto.TicketDTO
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	uc.logger.Infow("executing list tickets use case", "user_email", query.UserEmail, "role", query.UserRole)

	filter := ticket.TicketFilter{
		AssignedTo: query.AssignedTo,
	}

	if query.Status != nil {
		status, err := vo.NewTicketStatus(*query.Status)
		if err != nil {
			uc.logger.Warnw("invalid status filter", "status", *query.Status, "error", err)
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if query.Category != nil {
		category, err := vo.NewCategory(*query.Category)
		if err != nil {
			uc.logger.Warnw("invalid category filter", "category", *query.Category, "error", err)
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Category = &category
	}

	// clients only ever see their own tickets; developers may narrow the
	// board to a single client
	role := authorization.UserRole(query.UserRole)
	if role.IsDeveloper() {
		filter.ClientEmail = query.ClientEmail
	} else {
		email := query.UserEmail
		filter.ClientEmail = &email
	}

	tickets, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	return &ListTicketsResult{Tickets: dto.ToTicketDTOs(tickets)}, nil
}
