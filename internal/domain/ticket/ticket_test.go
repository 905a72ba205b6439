package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

func TestNewTicket_Success(t *testing.T) {
	tk, err := NewTicket(
		"Ann",
		"ann@x.com",
		"",
		vo.CategoryBug,
		"Button broken on checkout page",
		nil,
		nil,
	)

	require.NoError(t, err)
	assert.Equal(t, vo.StatusNew, tk.Status())
	assert.Empty(t, tk.AssignedTo())
	assert.False(t, tk.IsAssigned())
	assert.Nil(t, tk.VideoURL())
	assert.NotNil(t, tk.ScreenshotURLs())
	assert.Empty(t, tk.ScreenshotURLs())
	assert.Equal(t, tk.CreatedAt(), tk.UpdatedAt())
}

func TestNewTicket_WithAttachments(t *testing.T) {
	video := "/uploads/abc.mp4"
	tk, err := NewTicket(
		"Bob",
		"bob@x.com",
		"+1-555-0100",
		vo.CategoryRequest,
		"Please add dark mode",
		&video,
		[]string{"/uploads/s1.png", "/uploads/s2.png"},
	)

	require.NoError(t, err)
	require.NotNil(t, tk.VideoURL())
	assert.Equal(t, video, *tk.VideoURL())
	assert.Equal(t, []string{"/uploads/s1.png", "/uploads/s2.png"}, tk.ScreenshotURLs())
	assert.Equal(t, "+1-555-0100", tk.ClientPhone())
}

func TestNewTicket_ValidationErrors(t *testing.T) {
	tests := []struct {
		name        string
		clientName  string
		clientEmail string
		category    vo.Category
		message     string
		wantErr     string
	}{
		{
			name:        "missing client name",
			clientName:  "",
			clientEmail: "ann@x.com",
			category:    vo.CategoryBug,
			message:     "broken",
			wantErr:     "client name is required",
		},
		{
			name:        "whitespace client name",
			clientName:  "   ",
			clientEmail: "ann@x.com",
			category:    vo.CategoryBug,
			message:     "broken",
			wantErr:     "client name is required",
		},
		{
			name:        "missing email",
			clientName:  "Ann",
			clientEmail: "",
			category:    vo.CategoryBug,
			message:     "broken",
			wantErr:     "client email is required",
		},
		{
			name:        "malformed email",
			clientName:  "Ann",
			clientEmail: "not-an-address",
			category:    vo.CategoryBug,
			message:     "broken",
			wantErr:     "not a valid address",
		},
		{
			name:        "invalid category",
			clientName:  "Ann",
			clientEmail: "ann@x.com",
			category:    vo.Category("spam"),
			message:     "broken",
			wantErr:     "invalid category",
		},
		{
			name:        "missing message",
			clientName:  "Ann",
			clientEmail: "ann@x.com",
			category:    vo.CategoryBug,
			message:     "",
			wantErr:     "message is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk, err := NewTicket(tt.clientName, tt.clientEmail, "", tt.category, tt.message, nil, nil)
			require.Error(t, err)
			assert.Nil(t, tk)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestTicket_ChangeStatus_Permissive(t *testing.T) {
	tk := newTestTicket(t)

	for _, status := range []vo.TicketStatus{
		vo.StatusInProgress,
		vo.StatusDone,
		vo.StatusBlocked,
		vo.StatusNew,
		vo.TicketStatus("archived"), // unknown values are accepted verbatim
	} {
		err := tk.ChangeStatus(status)
		require.NoError(t, err)
		assert.Equal(t, status, tk.Status())
	}
}

func TestTicket_ChangeStatus_RejectsEmpty(t *testing.T) {
	tk := newTestTicket(t)
	err := tk.ChangeStatus("")
	require.Error(t, err)
	assert.Equal(t, vo.StatusNew, tk.Status())
}

func TestTicket_AssignTo(t *testing.T) {
	tk := newTestTicket(t)
	before := tk.UpdatedAt()

	time.Sleep(2 * time.Millisecond)
	tk.AssignTo("dev@x.com")

	assert.Equal(t, "dev@x.com", tk.AssignedTo())
	assert.True(t, tk.IsAssigned())
	assert.Equal(t, vo.StatusNew, tk.Status())
	assert.True(t, tk.UpdatedAt().After(before))

	tk.AssignTo("other@x.com")
	assert.Equal(t, "other@x.com", tk.AssignedTo())

	tk.AssignTo("")
	assert.False(t, tk.IsAssigned())
}

func TestTicket_Touch(t *testing.T) {
	tk := newTestTicket(t)
	before := tk.UpdatedAt()

	time.Sleep(2 * time.Millisecond)
	tk.Touch()

	assert.True(t, tk.UpdatedAt().After(before))
	assert.Equal(t, tk.CreatedAt().Before(tk.UpdatedAt()), true)
}

func TestTicket_SetIDAndReference(t *testing.T) {
	tk := newTestTicket(t)

	require.NoError(t, tk.SetID(7))
	assert.Equal(t, uint(7), tk.ID())
	assert.Error(t, tk.SetID(8))

	require.NoError(t, tk.SetReference("T-20250101-0001"))
	assert.Equal(t, "T-20250101-0001", tk.Reference())
	assert.Error(t, tk.SetReference("T-20250101-0002"))
}

func TestTicket_CanBeViewedBy(t *testing.T) {
	tk := newTestTicket(t)

	assert.True(t, tk.CanBeViewedBy("ann@x.com", "client"))
	assert.False(t, tk.CanBeViewedBy("other@x.com", "client"))
	assert.True(t, tk.CanBeViewedBy("anyone@x.com", "developer"))
}

func TestReconstructTicket_NormalizesScreenshots(t *testing.T) {
	now := time.Now()
	tk, err := ReconstructTicket(
		1, "T-20250101-0001", "Ann", "ann@x.com", "",
		vo.CategoryBug, "broken", nil, nil,
		vo.StatusNew, "", now, now,
	)
	require.NoError(t, err)
	assert.NotNil(t, tk.ScreenshotURLs())
	assert.Empty(t, tk.ScreenshotURLs())
}

func newTestTicket(t *testing.T) *Ticket {
	t.Helper()
	tk, err := NewTicket("Ann", "ann@x.com", "", vo.CategoryBug, "broken", nil, nil)
	require.NoError(t, err)
	return tk
}
