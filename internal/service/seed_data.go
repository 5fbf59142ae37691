package service

import "github.com/Fabirm9/nest-graphql/internal/domain"

// Fixture data for development environments. The first user owns every
// seeded item and list.

type seedUser struct {
	Email    string
	FullName string
	Password string
	Roles    []domain.Role
}

type seedItem struct {
	Name     string
	Quantity float64
	Units    string
}

var seedUsers = []seedUser{
	{Email: "admin@example.com", FullName: "Main Admin", Password: "123456", Roles: []domain.Role{domain.RoleAdmin, domain.RoleUser}},
	{Email: "norma@example.com", FullName: "Norma Fields", Password: "123456"},
	{Email: "elias@example.com", FullName: "Elias Wright", Password: "123456", Roles: []domain.Role{domain.RoleSuperUser, domain.RoleUser}},
}

var seedItems = []seedItem{
	{Name: "Chicken breast", Quantity: 2, Units: "lb"},
	{Name: "Eggs", Quantity: 12, Units: "unit"},
	{Name: "Whole milk", Quantity: 1, Units: "gal"},
	{Name: "Cheddar cheese", Quantity: 8, Units: "oz"},
	{Name: "Rice", Quantity: 2, Units: "kg"},
	{Name: "Black beans", Quantity: 3, Units: "can"},
	{Name: "Tomatoes", Quantity: 6, Units: "unit"},
	{Name: "Onions", Quantity: 4, Units: "unit"},
	{Name: "Garlic", Quantity: 1, Units: "head"},
	{Name: "Olive oil", Quantity: 500, Units: "ml"},
	{Name: "Bread", Quantity: 1, Units: "loaf"},
	{Name: "Butter", Quantity: 250, Units: "g"},
	{Name: "Coffee", Quantity: 340, Units: "g"},
	{Name: "Orange juice", Quantity: 1, Units: "l"},
	{Name: "Bananas", Quantity: 6, Units: "unit"},
	{Name: "Apples", Quantity: 5, Units: "unit"},
	{Name: "Spinach", Quantity: 200, Units: "g"},
	{Name: "Carrots", Quantity: 1, Units: "kg"},
	{Name: "Pasta", Quantity: 500, Units: "g"},
	{Name: "Tomato sauce", Quantity: 2, Units: "jar"},
	{Name: "Ground beef", Quantity: 1, Units: "lb"},
	{Name: "Yogurt", Quantity: 4, Units: "cup"},
	{Name: "Honey", Quantity: 1, Units: "jar"},
	{Name: "Salt", Quantity: 1, Units: "kg"},
	{Name: "Black pepper", Quantity: 100, Units: "g"},
	{Name: "Paper towels", Quantity: 6, Units: "roll"},
}

var seedLists = []string{
	"Weekly groceries",
	"Camping trip",
	"Birthday dinner",
}
