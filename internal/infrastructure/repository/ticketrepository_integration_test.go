package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.TicketModel{}, &models.UserModel{})
	require.NoError(t, err)

	return db
}

func createTestTicket(t *testing.T, clientEmail, reference string) *ticket.Ticket {
	tk, err := ticket.NewTicket("Ann", clientEmail, "", vo.CategoryBug, "something broke", nil, nil)
	require.NoError(t, err)
	require.NoError(t, tk.SetReference(reference))
	return tk
}

func TestTicketRepository_Save(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	t.Run("save new ticket successfully", func(t *testing.T) {
		tk := createTestTicket(t, "ann@x.com", "T-20250101-0001")

		err := repo.Save(ctx, tk)
		assert.NoError(t, err)
		assert.NotZero(t, tk.ID())
	})

	t.Run("save ticket with attachments", func(t *testing.T) {
		video := "/uploads/v.mp4"
		tk, err := ticket.NewTicket("Bob", "bob@x.com", "555-0100", vo.CategoryRequest,
			"please add dark mode", &video, []string{"/uploads/s1.png", "/uploads/s2.png"})
		require.NoError(t, err)
		require.NoError(t, tk.SetReference("T-20250101-0002"))

		require.NoError(t, repo.Save(ctx, tk))

		found, err := repo.GetByID(ctx, tk.ID())
		require.NoError(t, err)
		require.NotNil(t, found.VideoURL())
		assert.Equal(t, video, *found.VideoURL())
		assert.Equal(t, []string{"/uploads/s1.png", "/uploads/s2.png"}, found.ScreenshotURLs())
	})

	t.Run("ticket without screenshots round-trips as empty array", func(t *testing.T) {
		tk := createTestTicket(t, "carol@x.com", "T-20250101-0003")
		require.NoError(t, repo.Save(ctx, tk))

		found, err := repo.GetByID(ctx, tk.ID())
		require.NoError(t, err)
		assert.NotNil(t, found.ScreenshotURLs())
		assert.Empty(t, found.ScreenshotURLs())
		assert.Nil(t, found.VideoURL())
	})

	t.Run("duplicate reference should fail", func(t *testing.T) {
		tk1 := createTestTicket(t, "a@x.com", "T-DUP")
		require.NoError(t, repo.Save(ctx, tk1))

		tk2 := createTestTicket(t, "b@x.com", "T-DUP")
		err := repo.Save(ctx, tk2)
		assert.Error(t, err)
		assert.True(t, errors.IsDuplicateError(err))
	})
}

func TestTicketRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	tk := createTestTicket(t, "ann@x.com", "T-20250101-0001")
	require.NoError(t, repo.Save(ctx, tk))

	t.Run("status and assignment persist", func(t *testing.T) {
		require.NoError(t, tk.ChangeStatus(vo.StatusInProgress))
		tk.AssignTo("dev@x.com")

		require.NoError(t, repo.Update(ctx, tk))

		found, err := repo.GetByID(ctx, tk.ID())
		require.NoError(t, err)
		assert.Equal(t, vo.StatusInProgress, found.Status())
		assert.Equal(t, "dev@x.com", found.AssignedTo())
	})

	t.Run("released assignment persists as empty string", func(t *testing.T) {
		tk.AssignTo("")
		require.NoError(t, repo.Update(ctx, tk))

		found, err := repo.GetByID(ctx, tk.ID())
		require.NoError(t, err)
		assert.Empty(t, found.AssignedTo())
	})
}

func TestTicketRepository_GetByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	t.Run("missing ticket returns not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 999)
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestTicketRepository_GetByReference(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	tk := createTestTicket(t, "ann@x.com", "T-20250101-0042")
	require.NoError(t, repo.Save(ctx, tk))

	found, err := repo.GetByReference(ctx, "T-20250101-0042")
	require.NoError(t, err)
	assert.Equal(t, tk.ID(), found.ID())

	_, err = repo.GetByReference(ctx, "T-19990101-0001")
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestTicketRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	seed := func(email, reference, status string) {
		tk := createTestTicket(t, email, reference)
		if status != "new" {
			require.NoError(t, tk.ChangeStatus(vo.TicketStatus(status)))
		}
		require.NoError(t, repo.Save(ctx, tk))
	}

	for i, s := range []struct{ email, status string }{
		{"ann@x.com", "new"},
		{"ann@x.com", "in-progress"},
		{"bob@x.com", "blocked"},
		{"bob@x.com", "done"},
	} {
		seed(s.email, fmt.Sprintf("T-20250101-%04d", i+1), s.status)
	}

	t.Run("no filter returns everything", func(t *testing.T) {
		tickets, err := repo.List(ctx, ticket.TicketFilter{})
		require.NoError(t, err)
		assert.Len(t, tickets, 4)
	})

	t.Run("filter by client email", func(t *testing.T) {
		email := "ann@x.com"
		tickets, err := repo.List(ctx, ticket.TicketFilter{ClientEmail: &email})
		require.NoError(t, err)
		assert.Len(t, tickets, 2)
		for _, tk := range tickets {
			assert.Equal(t, "ann@x.com", tk.ClientEmail())
		}
	})

	t.Run("filter by status", func(t *testing.T) {
		status := vo.StatusBlocked
		tickets, err := repo.List(ctx, ticket.TicketFilter{Status: &status})
		require.NoError(t, err)
		require.Len(t, tickets, 1)
		assert.Equal(t, vo.StatusBlocked, tickets[0].Status())
	})

	t.Run("filter by assignee", func(t *testing.T) {
		assignee := "dev@x.com"
		tickets, err := repo.List(ctx, ticket.TicketFilter{AssignedTo: &assignee})
		require.NoError(t, err)
		assert.Empty(t, tickets)
	})
}
