package service

import "github.com/Fabirm9/nest-graphql/internal/domain"

// Update inputs use pointers for merge semantics: nil leaves the stored
// value untouched.

type SignUpInput struct {
	Email    string
	FullName string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type UpdateUserInput struct {
	Email    *string
	FullName *string
	Password *string
	Roles    []domain.Role // nil keeps current roles
	IsActive *bool
}

type CreateItemInput struct {
	Name          string
	Quantity      *float64
	QuantityUnits *string
}

type UpdateItemInput struct {
	Name          *string
	Quantity      *float64
	QuantityUnits *string
}

type CreateListInput struct {
	Name string
}

type UpdateListInput struct {
	Name *string
}

type CreateListItemInput struct {
	Quantity  *float64
	Completed *bool
	ListID    string
	ItemID    string
}

type UpdateListItemInput struct {
	Quantity  *float64
	Completed *bool
	ListID    *string
	ItemID    *string
}
