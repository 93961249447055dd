package category

import (
	"fmt"
	"strings"
	"time"
)

// Category groups tickets. Archived categories are soft-deleted.
type Category struct {
	ID          int64
	Name        string
	Description *string
	CreatorID   int64
	CreatedAt   time.Time
	Archived    bool
}

func NewCategory(name string, description *string, creatorID int64) (*Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("category name is required")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	return &Category{
		Name:        name,
		Description: description,
		CreatorID:   creatorID,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

func (c *Category) Archive() {
	c.Archived = true
}
