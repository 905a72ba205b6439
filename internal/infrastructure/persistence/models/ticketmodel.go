package models

import "gorm.io/datatypes"

type TicketModel struct {
	ID             uint           `gorm:"primaryKey"`
	Reference      string         `gorm:"uniqueIndex;size:50;not null"`
	ClientName     string         `gorm:"size:100;not null"`
	ClientEmail    string         `gorm:"size:255;not null;index"`
	ClientPhone    string         `gorm:"size:50;not null;default:''"`
	Category       string         `gorm:"size:50;not null;index"`
	Message        string         `gorm:"type:text;not null"`
	VideoURL       *string        `gorm:"size:500"`
	ScreenshotURLs datatypes.JSON `gorm:"not null"`
	Status         string         `gorm:"size:50;not null;index"`
	AssignedTo     string         `gorm:"size:255;not null;default:'';index"`
	CreatedAt      int64          `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt      int64          `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}
