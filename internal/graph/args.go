package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/Fabirm9/nest-graphql/internal/domain"
)

// listQueryArgs is the shared pagination/search argument set. limit left
// unset means unrestricted.
func listQueryArgs() graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"offset": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 0},
		"limit":  &graphql.ArgumentConfig{Type: graphql.Int},
		"search": &graphql.ArgumentConfig{Type: graphql.String},
	}
}

func listQueryFrom(args map[string]interface{}) domain.ListQuery {
	q := domain.ListQuery{}
	if v, ok := args["limit"].(int); ok {
		q.Limit = v
	}
	if v, ok := args["offset"].(int); ok {
		q.Offset = v
	}
	if v, ok := args["search"].(string); ok {
		q.Search = v
	}
	return q
}

func inputMap(p graphql.ResolveParams, key string) map[string]interface{} {
	if m, ok := p.Args[key].(map[string]interface{}); ok {
		return m
	}
	return map[string]interface{}{}
}

func strField(m map[string]interface{}, key string) string {
	v, _ := m[key].(string)
	return v
}

func optString(m map[string]interface{}, key string) *string {
	if v, ok := m[key].(string); ok {
		return &v
	}
	return nil
}

func optFloat(m map[string]interface{}, key string) *float64 {
	switch v := m[key].(type) {
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	}
	return nil
}

func optBool(m map[string]interface{}, key string) *bool {
	if v, ok := m[key].(bool); ok {
		return &v
	}
	return nil
}

func rolesFrom(v interface{}) []domain.Role {
	raw, ok := v.([]interface{})
	if !ok {
		return nil
	}
	roles := make([]domain.Role, 0, len(raw))
	for _, r := range raw {
		if role, ok := r.(domain.Role); ok {
			roles = append(roles, role)
		}
	}
	return roles
}
