package models

import "time"

type CategoryModel struct {
	ID          int64   `gorm:"primaryKey"`
	Name        string  `gorm:"size:100;not null"`
	Description *string `gorm:"type:text"`
	CreatorID   int64   `gorm:"not null;index"`
	CreatedAt   time.Time
	Archived    bool `gorm:"not null;default:false;index"`
}

func (CategoryModel) TableName() string {
	return "categories"
}
