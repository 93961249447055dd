package category

import "context"

// Repository persists categories.
type Repository interface {
	Create(ctx context.Context, c *Category) error
	GetByID(ctx context.Context, id int64) (*Category, error)
	// List returns categories filtered by archived state. A nil filter
	// excludes archived categories.
	List(ctx context.Context, archived *bool) ([]*Category, error)
	// Archive soft-deletes a category and reports the affected-row count.
	Archive(ctx context.Context, id int64) (int64, error)
}
