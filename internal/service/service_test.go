package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Fabirm9/nest-graphql/internal/core/auth"
	"github.com/Fabirm9/nest-graphql/internal/core/database"
	"github.com/Fabirm9/nest-graphql/internal/domain"
	"github.com/Fabirm9/nest-graphql/internal/repo"
	"github.com/Fabirm9/nest-graphql/pkg/apperr"
)

type testEnv struct {
	db *gorm.DB

	userRepo     *repo.UserRepo
	itemRepo     *repo.ItemRepo
	listRepo     *repo.ListRepo
	listItemRepo *repo.ListItemRepo

	users     *Users
	auth      *Auth
	items     *Items
	lists     *Lists
	listItems *ListItems
	seed      *Seed
}

// newTestEnv builds the full service stack on an in-memory SQLite database.
// A single pooled connection keeps :memory: state shared across queries.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

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
	jwter := &auth.JWTer{Secret: []byte("test-secret"), Issuer: "test", TTL: time.Hour}

	env := &testEnv{
		db:           db,
		userRepo:     repo.NewUserRepo(db),
		itemRepo:     repo.NewItemRepo(db),
		listRepo:     repo.NewListRepo(db),
		listItemRepo: repo.NewListItemRepo(db),
	}
	env.users = NewUsers(env.userRepo, nil, log)
	env.auth = NewAuth(env.users, jwter, nil, 0, log)
	env.items = NewItems(env.itemRepo, log)
	env.lists = NewLists(env.listRepo, log)
	env.listItems = NewListItems(env.listItemRepo, log)
	env.seed = env.seedFor("dev")
	return env
}

func (e *testEnv) seedFor(envName string) *Seed {
	return NewSeed(SeedDeps{
		Env:          envName,
		Users:        e.users,
		Items:        e.items,
		Lists:        e.lists,
		ListItems:    e.listItems,
		UserRepo:     e.userRepo,
		ItemRepo:     e.itemRepo,
		ListRepo:     e.listRepo,
		ListItemRepo: e.listItemRepo,
	}, zap.NewNop())
}

func (e *testEnv) mustSignup(t *testing.T, email, name, password string) *domain.User {
	t.Helper()
	u, err := e.users.Create(context.Background(), SignUpInput{
		Email: email, FullName: name, Password: password,
	})
	if err != nil {
		t.Fatalf("failed to create user %s: %v", email, err)
	}
	return u
}

func assertCode(t *testing.T, err error, want int) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with code %d, got nil", want)
	}
	if got := apperr.CodeOf(err); got != want {
		t.Fatalf("expected error code %d, got %d (%v)", want, got, err)
	}
}
