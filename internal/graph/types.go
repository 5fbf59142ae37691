package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/Fabirm9/nest-graphql/internal/domain"
)

// Source helpers: list fields hand elements by value, single-object fields
// by pointer.

func userSource(src interface{}) *domain.User {
	switch u := src.(type) {
	case *domain.User:
		return u
	case domain.User:
		return &u
	}
	return nil
}

func listSource(src interface{}) *domain.List {
	switch l := src.(type) {
	case *domain.List:
		return l
	case domain.List:
		return &l
	}
	return nil
}

func itemSource(src interface{}) *domain.Item {
	switch it := src.(type) {
	case *domain.Item:
		return it
	case domain.Item:
		return &it
	}
	return nil
}

func listItemSource(src interface{}) *domain.ListItem {
	switch li := src.(type) {
	case *domain.ListItem:
		return li
	case domain.ListItem:
		return &li
	}
	return nil
}

// registerTypes builds the object types. Scalar fields rely on the default
// resolver over the entities' json tags; relations and counters get explicit
// resolvers and are attached afterwards so self references work.
func (b *builder) registerTypes() {
	b.roleEnum = graphql.NewEnum(graphql.EnumConfig{
		Name: "ValidRoles",
		Values: graphql.EnumValueConfigMap{
			"admin":     &graphql.EnumValueConfig{Value: domain.RoleAdmin},
			"user":      &graphql.EnumValueConfig{Value: domain.RoleUser},
			"superUser": &graphql.EnumValueConfig{Value: domain.RoleSuperUser},
		},
	})

	b.userType = graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id":       &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"email":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"fullName": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"roles":    &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(b.roleEnum)))},
			"isActive": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		},
	})

	b.itemType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Item",
		Fields: graphql.Fields{
			"id":            &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":          &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"quantity":      &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
			"quantityUnits": &graphql.Field{Type: graphql.String},
		},
	})

	b.listType = graphql.NewObject(graphql.ObjectConfig{
		Name: "List",
		Fields: graphql.Fields{
			"id":   &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	b.listItemType = graphql.NewObject(graphql.ObjectConfig{
		Name: "ListItem",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"quantity":  &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
			"completed": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		},
	})

	b.authType = graphql.NewObject(graphql.ObjectConfig{
		Name: "AuthResponse",
		Fields: graphql.Fields{
			"token": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"user":  &graphql.Field{Type: graphql.NewNonNull(b.userType)},
		},
	})

	b.userType.AddFieldConfig("lastUpdateBy", &graphql.Field{
		Type: b.userType,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			u := userSource(p.Source)
			if u == nil || u.LastUpdateByID == nil {
				return nil, nil
			}
			if u.LastUpdateBy != nil {
				return u.LastUpdateBy, nil
			}
			return b.svc.Users.FindOneByID(p.Context, *u.LastUpdateByID)
		},
	})
	b.userType.AddFieldConfig("itemCount", &graphql.Field{
		Type: graphql.NewNonNull(graphql.Int),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			u := userSource(p.Source)
			if u == nil {
				return 0, nil
			}
			n, err := b.svc.Items.CountByUser(p.Context, u)
			return int(n), err
		},
	})
	b.userType.AddFieldConfig("listCount", &graphql.Field{
		Type: graphql.NewNonNull(graphql.Int),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			u := userSource(p.Source)
			if u == nil {
				return 0, nil
			}
			n, err := b.svc.Lists.CountByUser(p.Context, u)
			return int(n), err
		},
	})

	b.itemType.AddFieldConfig("user", &graphql.Field{
		Type: graphql.NewNonNull(b.userType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			it := itemSource(p.Source)
			if it == nil {
				return nil, nil
			}
			if it.User != nil {
				return it.User, nil
			}
			return b.svc.Users.FindOneByID(p.Context, it.UserID)
		},
	})

	b.listType.AddFieldConfig("user", &graphql.Field{
		Type: graphql.NewNonNull(b.userType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			l := listSource(p.Source)
			if l == nil {
				return nil, nil
			}
			if l.User != nil {
				return l.User, nil
			}
			return b.svc.Users.FindOneByID(p.Context, l.UserID)
		},
	})
	b.listType.AddFieldConfig("items", &graphql.Field{
		Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(b.listItemType))),
		Args: listQueryArgs(),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			l := listSource(p.Source)
			if l == nil {
				return nil, nil
			}
			return b.svc.ListItems.FindAll(p.Context, l, listQueryFrom(p.Args))
		},
	})
	b.listType.AddFieldConfig("totalItems", &graphql.Field{
		Type: graphql.NewNonNull(graphql.Int),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			l := listSource(p.Source)
			if l == nil {
				return 0, nil
			}
			n, err := b.svc.ListItems.CountByList(p.Context, l)
			return int(n), err
		},
	})

	b.listItemType.AddFieldConfig("list", &graphql.Field{
		Type: graphql.NewNonNull(b.listType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			li := listItemSource(p.Source)
			if li == nil {
				return nil, nil
			}
			return li.List, nil
		},
	})
	b.listItemType.AddFieldConfig("item", &graphql.Field{
		Type: graphql.NewNonNull(b.itemType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			li := listItemSource(p.Source)
			if li == nil {
				return nil, nil
			}
			return li.Item, nil
		},
	})
}
