package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	coreauth "github.com/Fabirm9/nest-graphql/internal/core/auth"
	"github.com/Fabirm9/nest-graphql/internal/core/database"
	"github.com/Fabirm9/nest-graphql/internal/domain"
	"github.com/Fabirm9/nest-graphql/internal/graph"
	"github.com/Fabirm9/nest-graphql/internal/repo"
	"github.com/Fabirm9/nest-graphql/internal/service"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.NewGorm(database.Opts{
		Driver:       "sqlite",
		DSN:          ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		LogLevel:     "silent",
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(
		&domain.User{}, &domain.Item{}, &domain.List{}, &domain.ListItem{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	log := zap.NewNop()
	jwter := &coreauth.JWTer{Secret: []byte("test-secret"), Issuer: "test", TTL: time.Hour}

	users := service.NewUsers(repo.NewUserRepo(db), nil, log)
	items := service.NewItems(repo.NewItemRepo(db), log)
	lists := service.NewLists(repo.NewListRepo(db), log)
	listItems := service.NewListItems(repo.NewListItemRepo(db), log)
	authSvc := service.NewAuth(users, jwter, nil, 0, log)

	schema, err := graph.NewSchema(graph.Services{
		Auth:      authSvc,
		Users:     users,
		Items:     items,
		Lists:     lists,
		ListItems: listItems,
		Seed: service.NewSeed(service.SeedDeps{
			Env: "dev", Users: users, Items: items, Lists: lists, ListItems: listItems,
			UserRepo:     repo.NewUserRepo(db),
			ItemRepo:     repo.NewItemRepo(db),
			ListRepo:     repo.NewListRepo(db),
			ListItemRepo: repo.NewListItemRepo(db),
		}, log),
	})
	if err != nil {
		t.Fatalf("failed to build schema: %v", err)
	}

	return NewAPIEngine(log, schema, jwter, authSvc)
}

type gqlResponse struct {
	Data   map[string]json.RawMessage `json:"data"`
	Errors []struct {
		Message    string                 `json:"message"`
		Extensions map[string]interface{} `json:"extensions"`
	} `json:"errors"`
}

func postGraphQL(t *testing.T, r *gin.Engine, token, query string) (int, gqlResponse) {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"query": query})
	req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var res gqlResponse
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("bad response body %q: %v", w.Body.String(), err)
	}
	return w.Code, res
}

func TestGraphQLEndpoint(t *testing.T) {
	r := newTestEngine(t)

	var token string
	t.Run("signup without a token", func(t *testing.T) {
		code, res := postGraphQL(t, r, "", `mutation {
			signup(signupInput: {email: "ana@example.com", fullName: "Ana", password: "secret1"}) { token }
		}`)
		if code != http.StatusOK || len(res.Errors) > 0 {
			t.Fatalf("signup failed: %d %v", code, res.Errors)
		}
		var signup struct {
			Token string `json:"token"`
		}
		if err := json.Unmarshal(res.Data["signup"], &signup); err != nil {
			t.Fatal(err)
		}
		if signup.Token == "" {
			t.Fatal("signup returned no token")
		}
		token = signup.Token
	})

	t.Run("bearer token resolves the caller", func(t *testing.T) {
		code, res := postGraphQL(t, r, token, `{ refreshToken { user { email } } }`)
		if code != http.StatusOK || len(res.Errors) > 0 {
			t.Fatalf("refresh failed: %d %v", code, res.Errors)
		}
	})

	t.Run("protected query without a token stays 200 with a coded error", func(t *testing.T) {
		code, res := postGraphQL(t, r, "", `{ items { id } }`)
		if code != http.StatusOK {
			t.Fatalf("expected 200, got %d", code)
		}
		if len(res.Errors) == 0 || res.Errors[0].Extensions["code"] != "UNAUTHENTICATED" {
			t.Fatalf("expected UNAUTHENTICATED, got %v", res.Errors)
		}
	})

	t.Run("garbage token is rejected at the transport", func(t *testing.T) {
		code, res := postGraphQL(t, r, "garbage", `{ items { id } }`)
		if code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", code)
		}
		if len(res.Errors) == 0 {
			t.Fatal("expected an errors envelope")
		}
	})

	t.Run("malformed envelope is a 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader([]byte(`{"nope": true}`)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestHealth(t *testing.T) {
	r := newTestEngine(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestBlockedUserTokenRejected(t *testing.T) {
	r := newTestEngine(t)

	_, res := postGraphQL(t, r, "", `mutation {
		signup(signupInput: {email: "bob@example.com", fullName: "Bob", password: "secret1"}) {
			token
			user { id }
		}
	}`)
	if len(res.Errors) > 0 {
		t.Fatalf("signup failed: %v", res.Errors)
	}
	var signup struct {
		Token string `json:"token"`
		User  struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	if err := json.Unmarshal(res.Data["signup"], &signup); err != nil {
		t.Fatal(err)
	}

	// executeSeed wipes the user table, so the subject behind the token is gone
	if _, res := postGraphQL(t, r, "", `mutation { executeSeed }`); len(res.Errors) > 0 {
		t.Fatalf("seed failed: %v", res.Errors)
	}

	code, res := postGraphQL(t, r, signup.Token, fmt.Sprintf(`{ user(id: %q) { id } }`, signup.User.ID))
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a stale token, got %d (%v)", code, res.Errors)
	}
}
