package graph

import (
	"context"
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/Fabirm9/nest-graphql/internal/domain"
	"github.com/Fabirm9/nest-graphql/pkg/apperr"
)

type userContextKey struct{}

// WithUser attaches the authenticated caller to the request context. The
// HTTP middleware resolves the bearer token and calls this; resolvers pull
// the caller back out and pass it down explicitly.
func WithUser(ctx context.Context, u *domain.User) context.Context {
	return context.WithValue(ctx, userContextKey{}, u)
}

func UserFrom(ctx context.Context) (*domain.User, bool) {
	u, ok := ctx.Value(userContextKey{}).(*domain.User)
	return u, ok && u != nil
}

func currentUser(p graphql.ResolveParams) (*domain.User, error) {
	u, ok := UserFrom(p.Context)
	if !ok {
		return nil, apperr.Unauthorized("authorization required")
	}
	return u, nil
}

func currentUserWithRoles(p graphql.ResolveParams, roles ...domain.Role) (*domain.User, error) {
	u, err := currentUser(p)
	if err != nil {
		return nil, err
	}
	if !u.HasRole(roles...) {
		return nil, apperr.Forbidden(fmt.Sprintf("user %s needs a valid role", u.FullName))
	}
	return u, nil
}
