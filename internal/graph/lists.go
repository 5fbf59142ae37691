package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/Fabirm9/nest-graphql/internal/service"
)

func (b *builder) registerLists() {
	createListInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateListInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	updateListInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateListInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"id":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"name": &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	b.mutation["createList"] = &graphql.Field{
		Type: graphql.NewNonNull(b.listType),
		Args: graphql.FieldConfigArgument{
			"createListInput": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createListInput)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			user, err := currentUser(p)
			if err != nil {
				return nil, err
			}
			in := inputMap(p, "createListInput")
			return b.svc.Lists.Create(p.Context, service.CreateListInput{
				Name: strField(in, "name"),
			}, user)
		},
	}

	b.query["lists"] = &graphql.Field{
		Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(b.listType))),
		Args: listQueryArgs(),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			user, err := currentUser(p)
			if err != nil {
				return nil, err
			}
			return b.svc.Lists.FindAll(p.Context, listQueryFrom(p.Args), user)
		},
	}

	b.query["list"] = &graphql.Field{
		Type: graphql.NewNonNull(b.listType),
		Args: graphql.FieldConfigArgument{
			"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			user, err := currentUser(p)
			if err != nil {
				return nil, err
			}
			id, _ := p.Args["id"].(string)
			return b.svc.Lists.FindOne(p.Context, id, user)
		},
	}

	b.mutation["updateList"] = &graphql.Field{
		Type: graphql.NewNonNull(b.listType),
		Args: graphql.FieldConfigArgument{
			"updateListInput": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateListInput)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			user, err := currentUser(p)
			if err != nil {
				return nil, err
			}
			in := inputMap(p, "updateListInput")
			return b.svc.Lists.Update(p.Context, strField(in, "id"), service.UpdateListInput{
				Name: optString(in, "name"),
			}, user)
		},
	}

	b.mutation["removeList"] = &graphql.Field{
		Type: graphql.NewNonNull(b.listType),
		Args: graphql.FieldConfigArgument{
			"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			user, err := currentUser(p)
			if err != nil {
				return nil, err
			}
			id, _ := p.Args["id"].(string)
			return b.svc.Lists.Remove(p.Context, id, user)
		},
	}
}
