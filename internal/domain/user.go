package domain

import (
	"context"
	"time"
)

type User struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	Email    string `gorm:"uniqueIndex;size:191" json:"email"`
	FullName string `gorm:"size:128" json:"fullName"`
	Password string `gorm:"size:191" json:"-"`
	Roles    []Role `gorm:"serializer:json;size:191" json:"roles"`
	IsActive bool   `gorm:"default:true" json:"isActive"`

	// who last touched this record; nullable self reference
	LastUpdateByID *string `gorm:"size:36" json:"-"`
	LastUpdateBy   *User   `gorm:"foreignKey:LastUpdateByID" json:"lastUpdateBy,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	// FindByID and FindByEmail return (nil, nil) when no row matches.
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	// FindAll returns every user, or with a non-empty filter only users
	// whose role set intersects it.
	FindAll(ctx context.Context, roles []Role) ([]User, error)
	Save(ctx context.Context, u *User) error
	DeleteAll(ctx context.Context) error
}
