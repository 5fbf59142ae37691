package domain

import (
	"context"
	"time"
)

// ListItem is the membership of an Item within a List, with per-membership
// quantity and completion state. An item appears on a list at most once.
type ListItem struct {
	ID        string  `gorm:"primaryKey;size:36" json:"id"`
	Quantity  float64 `json:"quantity"`
	Completed bool    `gorm:"default:false" json:"completed"`

	ListID string `gorm:"size:36;not null;uniqueIndex:idx_list_item" json:"-"`
	List   *List  `gorm:"foreignKey:ListID" json:"list,omitempty"`
	ItemID string `gorm:"size:36;not null;uniqueIndex:idx_list_item" json:"-"`
	Item   *Item  `gorm:"foreignKey:ItemID" json:"item,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ListItemRepository interface {
	Create(ctx context.Context, li *ListItem) error
	// FindByID preloads the list and item references.
	FindByID(ctx context.Context, id string) (*ListItem, error)
	// FindAllByList searches on the referenced item's name.
	FindAllByList(ctx context.Context, listID string, q ListQuery) ([]ListItem, error)
	Save(ctx context.Context, li *ListItem) error
	Delete(ctx context.Context, id string) error
	CountByList(ctx context.Context, listID string) (int64, error)
	DeleteAll(ctx context.Context) error
}
