package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type SubmitTicketCommand struct {
	ClientName     string
	ClientEmail    string
	ClientPhone    string
	Category       string
	Message        string
	VideoURL       *string
	ScreenshotURLs []string
}

type SubmitTicketResult struct {
	TicketID  uint
	Reference string
	Status    string
	CreatedAt time.Time
}

type SubmitTicketExecutor interface {
	Execute(ctx context.Context, cmd SubmitTicketCommand) (*SubmitTicketResult, error)
}

// transactionRunner is satisfied by db.TransactionManager.
type transactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type SubmitTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	refGen     ticket.ReferenceGenerator
	txMgr      transactionRunner
	sanitizer  *bluemonday.Policy
	logger     logger.Interface
}

func NewSubmitTicketUseCase(
	ticketRepo ticket.TicketRepository,
	refGen ticket.ReferenceGenerator,
	txMgr transactionRunner,
	logger logger.Interface,
) *SubmitTicketUseCase {
	return &SubmitTicketUseCase{
		ticketRepo: ticketRepo,
		refGen:     refGen,
		txMgr:      txMgr,
		sanitizer:  bluemonday.StrictPolicy(),
		logger:     logger,
	}
}

func (uc *SubmitTicketUseCase) Execute(ctx context.Context, cmd SubmitTicketCommand) (*SubmitTicketResult, error) {
	uc.logger.Infow("executing submit ticket use case", "client_email", cmd.ClientEmail, "category", cmd.Category)

	category, err := vo.NewCategory(cmd.Category)
	if err != nil {
		uc.logger.Errorw("invalid submit ticket command", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	newTicket, err := ticket.NewTicket(
		uc.sanitize(cmd.ClientName),
		strings.TrimSpace(cmd.ClientEmail),
		uc.sanitize(cmd.ClientPhone),
		category,
		uc.sanitize(cmd.Message),
		cmd.VideoURL,
		cmd.ScreenshotURLs,
	)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	// Reference generation reads the current daily maximum, so it has to
	// share a transaction with the insert to keep references unique.
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		reference, err := uc.refGen.Generate(txCtx)
		if err != nil {
			uc.logger.Errorw("failed to generate ticket reference", "error", err)
			return errors.NewInternalError("failed to generate ticket reference", err.Error())
		}
		if err := newTicket.SetReference(reference); err != nil {
			return errors.NewInternalError("failed to set ticket reference", err.Error())
		}

		if err := uc.ticketRepo.Save(txCtx, newTicket); err != nil {
			uc.logger.Errorw("failed to save ticket", "error", err)
			return err
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("ticket submitted successfully",
		"ticket_id", newTicket.ID(),
		"reference", newTicket.Reference())

	return &SubmitTicketResult{
		TicketID:  newTicket.ID(),
		Reference: newTicket.Reference(),
		Status:    newTicket.Status().String(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}

func (uc *SubmitTicketUseCase) sanitize(value string) string {
	return strings.TrimSpace(uc.sanitizer.Sanitize(value))
}
