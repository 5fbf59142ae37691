package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/Fabirm9/nest-graphql/internal/service"
)

func (b *builder) registerItems() {
	createItemInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateItemInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":          &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"quantity":      &graphql.InputObjectFieldConfig{Type: graphql.Float},
			"quantityUnits": &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	updateItemInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateItemInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"id":            &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"name":          &graphql.InputObjectFieldConfig{Type: graphql.String},
			"quantity":      &graphql.InputObjectFieldConfig{Type: graphql.Float},
			"quantityUnits": &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	b.mutation["createItem"] = &graphql.Field{
		Type: graphql.NewNonNull(b.itemType),
		Args: graphql.FieldConfigArgument{
			"createItemInput": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createItemInput)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			user, err := currentUser(p)
			if err != nil {
				return nil, err
			}
			in := inputMap(p, "createItemInput")
			return b.svc.Items.Create(p.Context, service.CreateItemInput{
				Name:          strField(in, "name"),
				Quantity:      optFloat(in, "quantity"),
				QuantityUnits: optString(in, "quantityUnits"),
			}, user)
		},
	}

	b.query["items"] = &graphql.Field{
		Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(b.itemType))),
		Args: listQueryArgs(),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			user, err := currentUser(p)
			if err != nil {
				return nil, err
			}
			return b.svc.Items.FindAll(p.Context, listQueryFrom(p.Args), user)
		},
	}

	b.query["item"] = &graphql.Field{
		Type: graphql.NewNonNull(b.itemType),
		Args: graphql.FieldConfigArgument{
			"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			user, err := currentUser(p)
			if err != nil {
				return nil, err
			}
			id, _ := p.Args["id"].(string)
			return b.svc.Items.FindOne(p.Context, id, user)
		},
	}

	b.mutation["updateItem"] = &graphql.Field{
		Type: graphql.NewNonNull(b.itemType),
		Args: graphql.FieldConfigArgument{
			"updateItemInput": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateItemInput)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			user, err := currentUser(p)
			if err != nil {
				return nil, err
			}
			in := inputMap(p, "updateItemInput")
			return b.svc.Items.Update(p.Context, strField(in, "id"), service.UpdateItemInput{
				Name:          optString(in, "name"),
				Quantity:      optFloat(in, "quantity"),
				QuantityUnits: optString(in, "quantityUnits"),
			}, user)
		},
	}

	b.mutation["removeItem"] = &graphql.Field{
		Type: graphql.NewNonNull(b.itemType),
		Args: graphql.FieldConfigArgument{
			"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			user, err := currentUser(p)
			if err != nil {
				return nil, err
			}
			id, _ := p.Args["id"].(string)
			return b.svc.Items.Remove(p.Context, id, user)
		},
	}
}
