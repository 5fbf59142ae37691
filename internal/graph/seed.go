package graph

import "github.com/graphql-go/graphql"

// executeSeed is deliberately unauthenticated: it only works outside prod
// and exists to bootstrap empty development databases.
func (b *builder) registerSeed() {
	b.mutation["executeSeed"] = &graphql.Field{
		Type: graphql.NewNonNull(graphql.Boolean),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			return b.svc.Seed.Execute(p.Context)
		},
	}
}
