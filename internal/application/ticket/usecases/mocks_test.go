package usecases

import (
	"context"
	"io"
	"log/slog"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type mockTicketRepository struct {
	saveFunc           func(ctx context.Context, t *ticket.Ticket) error
	updateFunc         func(ctx context.Context, t *ticket.Ticket) error
	getByIDFunc        func(ctx context.Context, id uint) (*ticket.Ticket, error)
	getByReferenceFunc func(ctx context.Context, reference string) (*ticket.Ticket, error)
	listFunc           func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetByReference(ctx context.Context, reference string) (*ticket.Ticket, error) {
	if m.getByReferenceFunc != nil {
		return m.getByReferenceFunc(ctx, reference)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter)
	}
	return nil, nil
}

type mockTransactionRunner struct {
	runFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTransactionRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.runFunc != nil {
		return m.runFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockReferenceGenerator struct {
	generateFunc func(ctx context.Context) (string, error)
}

func (m *mockReferenceGenerator) Generate(ctx context.Context) (string, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx)
	}
	return "T-20250101-0001", nil
}
