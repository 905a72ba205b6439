package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
)

func TestSubmitTicketUseCase_Success(t *testing.T) {
	var saved *ticket.Ticket
	repo := &mockTicketRepository{
		saveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			saved = tk
			return tk.SetID(42)
		},
	}
	refGen := &mockReferenceGenerator{}
	uc := NewSubmitTicketUseCase(repo, refGen, &mockTransactionRunner{}, testLogger())

	video := "/uploads/v.mp4"
	result, err := uc.Execute(context.Background(), SubmitTicketCommand{
		ClientName:     "Ann",
		ClientEmail:    "ann@x.com",
		ClientPhone:    "555-0100",
		Category:       "bug",
		Message:        "Checkout crashes",
		VideoURL:       &video,
		ScreenshotURLs: []string{"/uploads/s.png"},
	})

	require.NoError(t, err)
	assert.Equal(t, uint(42), result.TicketID)
	assert.Equal(t, "T-20250101-0001", result.Reference)
	assert.Equal(t, "new", result.Status)

	require.NotNil(t, saved)
	assert.Equal(t, "new", saved.Status().String())
	assert.Empty(t, saved.AssignedTo())
	assert.Equal(t, []string{"/uploads/s.png"}, saved.ScreenshotURLs())
}

func TestSubmitTicketUseCase_SanitizesClientText(t *testing.T) {
	var saved *ticket.Ticket
	repo := &mockTicketRepository{
		saveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			saved = tk
			return nil
		},
	}
	uc := NewSubmitTicketUseCase(repo, &mockReferenceGenerator{}, &mockTransactionRunner{}, testLogger())

	_, err := uc.Execute(context.Background(), SubmitTicketCommand{
		ClientName:  "<script>alert(1)</script>Ann",
		ClientEmail: "ann@x.com",
		Category:    "bug",
		Message:     "page shows <b>garbled</b> text",
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "Ann", saved.ClientName())
	assert.Equal(t, "page shows garbled text", saved.Message())
}

func TestSubmitTicketUseCase_InvalidCategory(t *testing.T) {
	uc := NewSubmitTicketUseCase(&mockTicketRepository{}, &mockReferenceGenerator{}, &mockTransactionRunner{}, testLogger())

	_, err := uc.Execute(context.Background(), SubmitTicketCommand{
		ClientName:  "Ann",
		ClientEmail: "ann@x.com",
		Category:    "spam",
		Message:     "hello",
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestSubmitTicketUseCase_MissingFields(t *testing.T) {
	uc := NewSubmitTicketUseCase(&mockTicketRepository{}, &mockReferenceGenerator{}, &mockTransactionRunner{}, testLogger())

	_, err := uc.Execute(context.Background(), SubmitTicketCommand{
		ClientEmail: "ann@x.com",
		Category:    "bug",
		Message:     "hello",
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestSubmitTicketUseCase_ReferenceGeneratorFailure(t *testing.T) {
	refGen := &mockReferenceGenerator{
		generateFunc: func(ctx context.Context) (string, error) {
			return "", fmt.Errorf("sequence exhausted")
		},
	}
	uc := NewSubmitTicketUseCase(&mockTicketRepository{}, refGen, &mockTransactionRunner{}, testLogger())

	_, err := uc.Execute(context.Background(), SubmitTicketCommand{
		ClientName:  "Ann",
		ClientEmail: "ann@x.com",
		Category:    "bug",
		Message:     "hello",
	})

	require.Error(t, err)
	assert.True(t, errors.IsInternalError(err))
}

func TestSubmitTicketUseCase_SaveFailurePropagates(t *testing.T) {
	repo := &mockTicketRepository{
		saveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			return errors.NewInternalError("db down")
		},
	}
	uc := NewSubmitTicketUseCase(repo, &mockReferenceGenerator{}, &mockTransactionRunner{}, testLogger())

	_, err := uc.Execute(context.Background(), SubmitTicketCommand{
		ClientName:  "Ann",
		ClientEmail: "ann@x.com",
		Category:    "bug",
		Message:     "hello",
	})

	require.Error(t, err)
	assert.True(t, errors.IsInternalError(err))
}
