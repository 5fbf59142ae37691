package domain

import (
	"context"
	"time"
)

type Item struct {
	ID            string  `gorm:"primaryKey;size:36" json:"id"`
	Name          string  `gorm:"size:191;not null" json:"name"`
	Quantity      float64 `json:"quantity"`
	QuantityUnits *string `gorm:"size:32" json:"quantityUnits,omitempty"`

	// owner is fixed at creation time
	UserID string `gorm:"size:36;not null;index" json:"-"`
	User   *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ItemRepository interface {
	Create(ctx context.Context, it *Item) error
	// FindByIDAndUser returns (nil, nil) when no row matches both id and
	// owner, so callers cannot tell "missing" from "not yours".
	FindByIDAndUser(ctx context.Context, id, userID string) (*Item, error)
	FindAllByUser(ctx context.Context, userID string, q ListQuery) ([]Item, error)
	Save(ctx context.Context, it *Item) error
	Delete(ctx context.Context, id string) error
	CountByUser(ctx context.Context, userID string) (int64, error)
	DeleteAll(ctx context.Context) error
}
