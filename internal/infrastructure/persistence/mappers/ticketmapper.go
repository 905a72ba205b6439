package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToDomain converts a ticket persistence model to a domain entity.
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

// ToModel converts a ticket domain entity to a persistence model.
func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	model := &models.TicketModel{
		ID:          t.ID(),
		Reference:   t.Reference(),
		ClientName:  t.ClientName(),
		ClientEmail: t.ClientEmail(),
		ClientPhone: t.ClientPhone(),
		Category:    t.Category().String(),
		Message:     t.Message(),
		VideoURL:    t.VideoURL(),
		Status:      t.Status().String(),
		AssignedTo:  t.AssignedTo(),
		CreatedAt:   t.CreatedAt().UnixMilli(),
		UpdatedAt:   t.UpdatedAt().UnixMilli(),
	}

	// the column always holds a JSON array, never null
	screenshots := t.ScreenshotURLs()
	if screenshots == nil {
		screenshots = []string{}
	}
	screenshotsJSON, _ := json.Marshal(screenshots)
	model.ScreenshotURLs = datatypes.JSON(screenshotsJSON)

	return model
}

// ToDomain converts a ticket persistence model to a domain entity.
func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	category, err := vo.NewCategory(model.Category)
	if err != nil {
		return nil, fmt.Errorf("failed to map ticket %d: %w", model.ID, err)
	}
	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to map ticket %d: %w", model.ID, err)
	}

	screenshots := []string{}
	if len(model.ScreenshotURLs) > 0 {
		if err := json.Unmarshal(model.ScreenshotURLs, &screenshots); err != nil {
			return nil, fmt.Errorf("failed to unmarshal screenshot urls for ticket %d: %w", model.ID, err)
		}
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Reference,
		model.ClientName,
		model.ClientEmail,
		model.ClientPhone,
		category,
		model.Message,
		model.VideoURL,
		screenshots,
		status,
		model.AssignedTo,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
