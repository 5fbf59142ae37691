package graph

import (
	"strings"

	"github.com/graphql-go/graphql"

	"github.com/Fabirm9/nest-graphql/internal/service"
	"github.com/Fabirm9/nest-graphql/pkg/apperr"
)

func (b *builder) registerAuth() {
	signupInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "SignupInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"fullName": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	loginInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "LoginInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	b.mutation["signup"] = &graphql.Field{
		Type: graphql.NewNonNull(b.authType),
		Args: graphql.FieldConfigArgument{
			"signupInput": &graphql.ArgumentConfig{Type: graphql.NewNonNull(signupInput)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			in := inputMap(p, "signupInput")
			email := strField(in, "email")
			password := strField(in, "password")
			if err := validateCredentials(email, password); err != nil {
				return nil, err
			}
			return b.svc.Auth.Signup(p.Context, service.SignUpInput{
				Email:    email,
				FullName: strField(in, "fullName"),
				Password: password,
			})
		},
	}

	b.mutation["login"] = &graphql.Field{
		Type: graphql.NewNonNull(b.authType),
		Args: graphql.FieldConfigArgument{
			"loginInput": &graphql.ArgumentConfig{Type: graphql.NewNonNull(loginInput)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			in := inputMap(p, "loginInput")
			return b.svc.Auth.Login(p.Context, service.LoginInput{
				Email:    strField(in, "email"),
				Password: strField(in, "password"),
			})
		},
	}

	b.query["refreshToken"] = &graphql.Field{
		Type: graphql.NewNonNull(b.authType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			u, err := currentUser(p)
			if err != nil {
				return nil, err
			}
			return b.svc.Auth.RefreshToken(u)
		},
	}
}

func validateCredentials(email, password string) error {
	if !strings.Contains(email, "@") {
		return apperr.BadRequest("email must be a valid email address")
	}
	if len(password) < 6 {
		return apperr.BadRequest("password must be at least 6 characters")
	}
	return nil
}
