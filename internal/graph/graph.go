// Package graph exposes the domain services as a GraphQL schema. Types,
// queries and mutations are registered explicitly in declarative field maps,
// one register function per module, composed by NewSchema.
package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/Fabirm9/nest-graphql/internal/service"
)

type Services struct {
	Auth      *service.Auth
	Users     *service.Users
	Items     *service.Items
	Lists     *service.Lists
	ListItems *service.ListItems
	Seed      *service.Seed
}

type builder struct {
	svc Services

	roleEnum     *graphql.Enum
	userType     *graphql.Object
	itemType     *graphql.Object
	listType     *graphql.Object
	listItemType *graphql.Object
	authType     *graphql.Object

	query    graphql.Fields
	mutation graphql.Fields
}

func NewSchema(svc Services) (graphql.Schema, error) {
	b := &builder{
		svc:      svc,
		query:    graphql.Fields{},
		mutation: graphql.Fields{},
	}

	// types first, then per-module operations
	b.registerTypes()
	b.registerAuth()
	b.registerUsers()
	b.registerItems()
	b.registerLists()
	b.registerListItems()
	b.registerSeed()

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    graphql.NewObject(graphql.ObjectConfig{Name: "Query", Fields: b.query}),
		Mutation: graphql.NewObject(graphql.ObjectConfig{Name: "Mutation", Fields: b.mutation}),
	})
}
