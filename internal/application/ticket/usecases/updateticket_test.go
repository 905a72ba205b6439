package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
)

func newStoredTicket(t *testing.T, id uint) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket("Ann", "ann@x.com", "", vo.CategoryBug, "broken", nil, nil)
	require.NoError(t, err)
	require.NoError(t, tk.SetID(id))
	require.NoError(t, tk.SetReference("T-20250101-0001"))
	return tk
}

func strPtr(s string) *string { return &s }

func TestUpdateTicketUseCase_ChangeStatus(t *testing.T) {
	stored := newStoredTicket(t, 1)
	var updated *ticket.Ticket
	repo := &mockTicketRepository{
		getByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return stored, nil
		},
		updateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			updated = tk
			return nil
		},
	}
	uc := NewUpdateTicketUseCase(repo, testLogger())

	result, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID: 1,
		Status:   strPtr("in-progress"),
	})

	require.NoError(t, err)
	assert.Equal(t, "in-progress", result.Status)
	assert.Empty(t, result.AssignedTo)
	require.NotNil(t, updated)
	assert.Equal(t, "in-progress", updated.Status().String())
}

func TestUpdateTicketUseCase_AssignOnlyLeavesStatus(t *testing.T) {
	stored := newStoredTicket(t, 1)
	repo := &mockTicketRepository{
		getByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return stored, nil
		},
	}
	uc := NewUpdateTicketUseCase(repo, testLogger())

	result, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID:   1,
		AssignedTo: strPtr("dev@x.com"),
	})

	require.NoError(t, err)
	assert.Equal(t, "new", result.Status)
	assert.Equal(t, "dev@x.com", result.AssignedTo)
}

func TestUpdateTicketUseCase_ReleaseAssignment(t *testing.T) {
	stored := newStoredTicket(t, 1)
	stored.AssignTo("dev@x.com")
	repo := &mockTicketRepository{
		getByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return stored, nil
		},
	}
	uc := NewUpdateTicketUseCase(repo, testLogger())

	result, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID:   1,
		AssignedTo: strPtr(""),
	})

	require.NoError(t, err)
	assert.Empty(t, result.AssignedTo)
}

func TestUpdateTicketUseCase_UnknownStatusAcceptedVerbatim(t *testing.T) {
	stored := newStoredTicket(t, 1)
	repo := &mockTicketRepository{
		getByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return stored, nil
		},
	}
	uc := NewUpdateTicketUseCase(repo, testLogger())

	result, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID: 1,
		Status:   strPtr("archived"),
	})

	require.NoError(t, err)
	assert.Equal(t, "archived", result.Status)
}

func TestUpdateTicketUseCase_NotFound(t *testing.T) {
	repo := &mockTicketRepository{
		getByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return nil, errors.NewNotFoundError("ticket not found")
		},
	}
	uc := NewUpdateTicketUseCase(repo, testLogger())

	_, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID: 99,
		Status:   strPtr("done"),
	})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestUpdateTicketUseCase_EmptyCommandRejected(t *testing.T) {
	uc := NewUpdateTicketUseCase(&mockTicketRepository{}, testLogger())

	_, err := uc.Execute(context.Background(), UpdateTicketCommand{TicketID: 1})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), UpdateTicketCommand{Status: strPtr("done")})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdateTicketUseCase_EmptyStatusRejected(t *testing.T) {
	stored := newStoredTicket(t, 1)
	repo := &mockTicketRepository{
		getByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return stored, nil
		},
	}
	uc := NewUpdateTicketUseCase(repo, testLogger())

	_, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID: 1,
		Status:   strPtr(""),
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
