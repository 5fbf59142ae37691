package domain

import (
	"context"
	"time"
)

type List struct {
	ID   string `gorm:"primaryKey;size:36" json:"id"`
	Name string `gorm:"size:191;not null" json:"name"`

	UserID string `gorm:"size:36;not null;index" json:"-"`
	User   *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ListRepository interface {
	Create(ctx context.Context, l *List) error
	FindByIDAndUser(ctx context.Context, id, userID string) (*List, error)
	FindAllByUser(ctx context.Context, userID string, q ListQuery) ([]List, error)
	Save(ctx context.Context, l *List) error
	Delete(ctx context.Context, id string) error
	CountByUser(ctx context.Context, userID string) (int64, error)
	DeleteAll(ctx context.Context) error
}
