package graph

import (
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/Fabirm9/nest-graphql/internal/domain"
	"github.com/Fabirm9/nest-graphql/internal/service"
	"github.com/Fabirm9/nest-graphql/pkg/apperr"
)

// List-item resolvers enforce ownership transitively: the referenced list
// and item are resolved through the caller-scoped services before the join
// row is touched. A membership under someone else's list is reported as the
// membership not being found.
func (b *builder) registerListItems() {
	createListItemInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateListItemInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"quantity":  &graphql.InputObjectFieldConfig{Type: graphql.Float},
			"completed": &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
			"listId":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"itemId":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
		},
	})

	updateListItemInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateListItemInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"id":        &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"quantity":  &graphql.InputObjectFieldConfig{Type: graphql.Float},
			"completed": &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
			"listId":    &graphql.InputObjectFieldConfig{Type: graphql.ID},
			"itemId":    &graphql.InputObjectFieldConfig{Type: graphql.ID},
		},
	})

	b.mutation["createListItem"] = &graphql.Field{
		Type: graphql.NewNonNull(b.listItemType),
		Args: graphql.FieldConfigArgument{
			"createListItemInput": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createListItemInput)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			user, err := currentUser(p)
			if err != nil {
				return nil, err
			}
			in := inputMap(p, "createListItemInput")
			listID := strField(in, "listId")
			itemID := strField(in, "itemId")
			if _, err := b.svc.Lists.FindOne(p.Context, listID, user); err != nil {
				return nil, err
			}
			if _, err := b.svc.Items.FindOne(p.Context, itemID, user); err != nil {
				return nil, err
			}
			return b.svc.ListItems.Create(p.Context, service.CreateListItemInput{
				Quantity:  optFloat(in, "quantity"),
				Completed: optBool(in, "completed"),
				ListID:    listID,
				ItemID:    itemID,
			})
		},
	}

	b.query["listItem"] = &graphql.Field{
		Type: graphql.NewNonNull(b.listItemType),
		Args: graphql.FieldConfigArgument{
			"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			user, err := currentUser(p)
			if err != nil {
				return nil, err
			}
			id, _ := p.Args["id"].(string)
			return b.ownedListItem(p, id, user)
		},
	}

	b.mutation["updateListItem"] = &graphql.Field{
		Type: graphql.NewNonNull(b.listItemType),
		Args: graphql.FieldConfigArgument{
			"updateListItemInput": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateListItemInput)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			user, err := currentUser(p)
			if err != nil {
				return nil, err
			}
			in := inputMap(p, "updateListItemInput")
			id := strField(in, "id")
			if _, err := b.ownedListItem(p, id, user); err != nil {
				return nil, err
			}
			upd := service.UpdateListItemInput{
				Quantity:  optFloat(in, "quantity"),
				Completed: optBool(in, "completed"),
			}
			// moving the membership requires ownership of the target too
			if lid := optString(in, "listId"); lid != nil {
				if _, err := b.svc.Lists.FindOne(p.Context, *lid, user); err != nil {
					return nil, err
				}
				upd.ListID = lid
			}
			if iid := optString(in, "itemId"); iid != nil {
				if _, err := b.svc.Items.FindOne(p.Context, *iid, user); err != nil {
					return nil, err
				}
				upd.ItemID = iid
			}
			return b.svc.ListItems.Update(p.Context, id, upd)
		},
	}

	b.mutation["removeListItem"] = &graphql.Field{
		Type: graphql.NewNonNull(b.listItemType),
		Args: graphql.FieldConfigArgument{
			"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			user, err := currentUser(p)
			if err != nil {
				return nil, err
			}
			id, _ := p.Args["id"].(string)
			if _, err := b.ownedListItem(p, id, user); err != nil {
				return nil, err
			}
			return b.svc.ListItems.Remove(p.Context, id)
		},
	}
}

func (b *builder) ownedListItem(p graphql.ResolveParams, id string, user *domain.User) (*domain.ListItem, error) {
	li, err := b.svc.ListItems.FindOne(p.Context, id)
	if err != nil {
		return nil, err
	}
	if _, err := b.svc.Lists.FindOne(p.Context, li.ListID, user); err != nil {
		return nil, apperr.NotFound(fmt.Sprintf("list item with %s not found", id))
	}
	return li, nil
}
