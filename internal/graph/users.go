package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/Fabirm9/nest-graphql/internal/domain"
	"github.com/Fabirm9/nest-graphql/internal/service"
)

// The users surface is administrative: reads require admin or superUser,
// writes require admin.
func (b *builder) registerUsers() {
	updateUserInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateUserInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"id":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"email":    &graphql.InputObjectFieldConfig{Type: graphql.String},
			"fullName": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"password": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"roles":    &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.NewNonNull(b.roleEnum))},
			"isActive": &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
		},
	})

	b.query["users"] = &graphql.Field{
		Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(b.userType))),
		Args: graphql.FieldConfigArgument{
			"roles": &graphql.ArgumentConfig{Type: graphql.NewList(graphql.NewNonNull(b.roleEnum))},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			if _, err := currentUserWithRoles(p, domain.RoleAdmin, domain.RoleSuperUser); err != nil {
				return nil, err
			}
			return b.svc.Users.FindAll(p.Context, rolesFrom(p.Args["roles"]))
		},
	}

	b.query["user"] = &graphql.Field{
		Type: graphql.NewNonNull(b.userType),
		Args: graphql.FieldConfigArgument{
			"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			if _, err := currentUserWithRoles(p, domain.RoleAdmin, domain.RoleSuperUser); err != nil {
				return nil, err
			}
			id, _ := p.Args["id"].(string)
			return b.svc.Users.FindOneByID(p.Context, id)
		},
	}

	b.mutation["updateUser"] = &graphql.Field{
		Type: graphql.NewNonNull(b.userType),
		Args: graphql.FieldConfigArgument{
			"updateUserInput": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateUserInput)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			actor, err := currentUserWithRoles(p, domain.RoleAdmin)
			if err != nil {
				return nil, err
			}
			in := inputMap(p, "updateUserInput")
			upd := service.UpdateUserInput{
				Email:    optString(in, "email"),
				FullName: optString(in, "fullName"),
				Password: optString(in, "password"),
				IsActive: optBool(in, "isActive"),
			}
			if _, ok := in["roles"]; ok {
				upd.Roles = rolesFrom(in["roles"])
			}
			return b.svc.Users.Update(p.Context, strField(in, "id"), upd, actor)
		},
	}

	b.mutation["blockUser"] = &graphql.Field{
		Type: graphql.NewNonNull(b.userType),
		Args: graphql.FieldConfigArgument{
			"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			actor, err := currentUserWithRoles(p, domain.RoleAdmin)
			if err != nil {
				return nil, err
			}
			id, _ := p.Args["id"].(string)
			return b.svc.Users.Block(p.Context, id, actor)
		},
	}
}
