package ticket

import (
	"fmt"
	"strings"
	"time"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

type Ticket struct {
	id             uint
	reference      string
	clientName     string
	clientEmail    string
	clientPhone    string
	category       vo.Category
	message        string
	videoURL       *string
	screenshotURLs []string
	status         vo.TicketStatus
	assignedTo     string
	createdAt      time.Time
	updatedAt      time.Time
}

func NewTicket(
	clientName string,
	clientEmail string,
	clientPhone string,
	category vo.Category,
	message string,
	videoURL *string,
	screenshotURLs []string,
) (*Ticket, error) {
	if len(strings.TrimSpace(clientName)) == 0 {
		return nil, fmt.Errorf("client name is required")
	}
	if len(strings.TrimSpace(clientEmail)) == 0 {
		return nil, fmt.Errorf("client email is required")
	}
	if !strings.Contains(clientEmail, "@") {
		return nil, fmt.Errorf("client email is not a valid address")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}
	if len(strings.TrimSpace(message)) == 0 {
		return nil, fmt.Errorf("message is required")
	}
	if len(message) > 10000 {
		return nil, fmt.Errorf("message exceeds maximum length of 10000 characters")
	}

	if screenshotURLs == nil {
		screenshotURLs = []string{}
	}

	now := time.Now()

	return &Ticket{
		clientName:     clientName,
		clientEmail:    clientEmail,
		clientPhone:    clientPhone,
		category:       category,
		message:        message,
		videoURL:       videoURL,
		screenshotURLs: screenshotURLs,
		status:         vo.StatusNew,
		assignedTo:     "",
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructTicket(
	id uint,
	reference string,
	clientName string,
	clientEmail string,
	clientPhone string,
	category vo.Category,
	message string,
	videoURL *string,
	screenshotURLs []string,
	status vo.TicketStatus,
	assignedTo string,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(reference) == 0 {
		return nil, fmt.Errorf("ticket reference is required")
	}
	if len(clientName) == 0 {
		return nil, fmt.Errorf("client name is required")
	}
	if len(status) == 0 {
		return nil, fmt.Errorf("status is required")
	}

	if screenshotURLs == nil {
		screenshotURLs = []string{}
	}

	return &Ticket{
		id:             id,
		reference:      reference,
		clientName:     clientName,
		clientEmail:    clientEmail,
		clientPhone:    clientPhone,
		category:       category,
		message:        message,
		videoURL:       videoURL,
		screenshotURLs: screenshotURLs,
		status:         status,
		assignedTo:     assignedTo,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Reference() string {
	return t.reference
}

func (t *Ticket) ClientName() string {
	return t.clientName
}

func (t *Ticket) ClientEmail() string {
	return t.clientEmail
}

func (t *Ticket) ClientPhone() string {
	return t.clientPhone
}

func (t *Ticket) Category() vo.Category {
	return t.category
}

func (t *Ticket) Message() string {
	return t.message
}

func (t *Ticket) VideoURL() *string {
	return t.videoURL
}

func (t *Ticket) ScreenshotURLs() []string {
	urls := make([]string, len(t.screenshotURLs))
	copy(urls, t.screenshotURLs)
	return urls
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) AssignedTo() string {
	return t.assignedTo
}

func (t *Ticket) IsAssigned() bool {
	return t.assignedTo != ""
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) SetReference(reference string) error {
	if len(t.reference) > 0 {
		return fmt.Errorf("ticket reference is already set")
	}
	if len(reference) == 0 {
		return fmt.Errorf("ticket reference cannot be empty")
	}
	t.reference = reference
	return nil
}

// ChangeStatus writes the supplied status verbatim. Transitions are not
// validated; any status is reachable from any status.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if len(newStatus) == 0 {
		return fmt.Errorf("status cannot be empty")
	}

	t.status = newStatus
	t.updatedAt = time.Now()

	return nil
}

// AssignTo overwrites the assignee. An empty value releases the ticket.
func (t *Ticket) AssignTo(assignee string) {
	t.assignedTo = assignee
	t.updatedAt = time.Now()
}

// Touch refreshes the updated timestamp. Every mutation path calls this
// even when no field values changed.
func (t *Ticket) Touch() {
	t.updatedAt = time.Now()
}

func (t *Ticket) CanBeViewedBy(email string, role string) bool {
	if role == "developer" {
		return true
	}
	return t.clientEmail == email
}
