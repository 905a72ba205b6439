package dto

import (
	"time"

	"helpdesk/internal/domain/ticket"
)

type TicketDTO struct {
	ID             uint      `json:"id"`
	Reference      string    `json:"reference"`
	ClientName     string    `json:"client_name"`
	ClientEmail    string    `json:"client_email"`
	ClientPhone    string    `json:"client_phone"`
	Category       string    `json:"category"`
	Message        string    `json:"message"`
	VideoURL       *string   `json:"video_url"`
	ScreenshotURLs []string  `json:"screenshot_urls"`
	Status         string    `json:"status"`
	AssignedTo     string    `json:"assigned_to"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	if t == nil {
		return nil
	}

	screenshots := t.ScreenshotURLs()
	if screenshots == nil {
		screenshots = []string{}
	}

	return &TicketDTO{
		ID:             t.ID(),
		Reference:      t.Reference(),
		ClientName:     t.ClientName(),
		ClientEmail:    t.ClientEmail(),
		ClientPhone:    t.ClientPhone(),
		Category:       t.Category().String(),
		Message:        t.Message(),
		VideoURL:       t.VideoURL(),
		ScreenshotURLs: screenshots,
		Status:         t.Status().String(),
		AssignedTo:     t.AssignedTo(),
		CreatedAt:      t.CreatedAt(),
		UpdatedAt:      t.UpdatedAt(),
	}
}

func ToTicketDTOs(tickets []*ticket.Ticket) []TicketDTO {
	result := make([]TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		result = append(result, *ToTicketDTO(t))
	}
	return result
}
