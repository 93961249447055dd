package models

import "time"

type TicketModel struct {
	ID          int64   `gorm:"primaryKey"`
	Subject     string  `gorm:"size:255;not null"`
	Description *string `gorm:"type:text"`
	CategoryID  *int64  `gorm:"index"`
	Priority    string  `gorm:"size:20;not null"`
	Status      string  `gorm:"size:20;not null;index"`
	CreatedAt   time.Time
	ReporterID  int64 `gorm:"not null;index"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type CommentModel struct {
	ID          int64  `gorm:"primaryKey"`
	TicketID    int64  `gorm:"not null;index"`
	CommenterID int64  `gorm:"not null;index"`
	Content     string `gorm:"type:text;not null"`
	CreatedAt   time.Time
}

func (CommentModel) TableName() string {
	return "comments"
}

type AssignmentModel struct {
	ID         int64     `gorm:"primaryKey"`
	TicketID   int64     `gorm:"not null;index"`
	AssigneeID int64     `gorm:"not null;index"`
	AssignerID int64     `gorm:"not null"`
	AssignedAt time.Time `gorm:"not null"`
}

func (AssignmentModel) TableName() string {
	return "assignments"
}
