package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/Fabirm9/nest-graphql/internal/domain"
	"github.com/Fabirm9/nest-graphql/pkg/apperr"
	"github.com/Fabirm9/nest-graphql/pkg/utils"
)

func TestUsersCreate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	u := env.mustSignup(t, "  Ana@Example.COM ", "Ana Torres", "secret1")

	t.Run("normalizes email", func(t *testing.T) {
		if u.Email != "ana@example.com" {
			t.Fatalf("expected normalized email, got %q", u.Email)
		}
	})

	t.Run("hashes password", func(t *testing.T) {
		if u.Password == "secret1" {
			t.Fatal("password stored in plain text")
		}
		if !utils.CheckPassword("secret1", u.Password) {
			t.Fatal("stored hash does not verify against the original password")
		}
	})

	t.Run("assigns default role", func(t *testing.T) {
		if len(u.Roles) != 1 || u.Roles[0] != domain.RoleUser {
			t.Fatalf("expected default role %q, got %v", domain.RoleUser, u.Roles)
		}
		if !u.IsActive {
			t.Fatal("new user should be active")
		}
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		_, err := env.users.Create(ctx, SignUpInput{
			Email: "ana@example.com", FullName: "Other Ana", Password: "secret2",
		})
		assertCode(t, err, http.StatusBadRequest)
		if err.Error() != "key email already exists" {
			t.Fatalf("unexpected duplicate message: %q", err.Error())
		}
	})
}

func TestUsersFindAll(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := env.mustSignup(t, "admin@example.com", "Admin", "secret1")
	env.mustSignup(t, "plain@example.com", "Plain", "secret1")
	super := env.mustSignup(t, "super@example.com", "Super", "secret1")

	if _, err := env.users.Update(ctx, admin.ID, UpdateUserInput{
		Roles: []domain.Role{domain.RoleAdmin, domain.RoleUser},
	}, admin); err != nil {
		t.Fatalf("failed to promote admin: %v", err)
	}
	if _, err := env.users.Update(ctx, super.ID, UpdateUserInput{
		Roles: []domain.Role{domain.RoleSuperUser},
	}, admin); err != nil {
		t.Fatalf("failed to promote superUser: %v", err)
	}

	t.Run("no filter returns everyone", func(t *testing.T) {
		all, err := env.users.FindAll(ctx, nil)
		if err != nil {
			t.Fatal(err)
		}
		if len(all) != 3 {
			t.Fatalf("expected 3 users, got %d", len(all))
		}
	})

	t.Run("filters by role", func(t *testing.T) {
		admins, err := env.users.FindAll(ctx, []domain.Role{domain.RoleAdmin})
		if err != nil {
			t.Fatal(err)
		}
		if len(admins) != 1 || admins[0].ID != admin.ID {
			t.Fatalf("expected only the admin, got %d users", len(admins))
		}
	})

	t.Run("filter with several roles unions matches", func(t *testing.T) {
		got, err := env.users.FindAll(ctx, []domain.Role{domain.RoleAdmin, domain.RoleSuperUser})
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 2 {
			t.Fatalf("expected admin and superUser, got %d users", len(got))
		}
	})
}

func TestUsersUpdate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	actor := env.mustSignup(t, "actor@example.com", "Actor", "secret1")
	u := env.mustSignup(t, "mario@example.com", "Mario", "secret1")

	t.Run("merges only provided fields", func(t *testing.T) {
		name := "Mario Rossi"
		got, err := env.users.Update(ctx, u.ID, UpdateUserInput{FullName: &name}, actor)
		if err != nil {
			t.Fatal(err)
		}
		if got.FullName != "Mario Rossi" {
			t.Fatalf("full name not updated: %q", got.FullName)
		}
		if got.Email != "mario@example.com" {
			t.Fatalf("email changed unexpectedly: %q", got.Email)
		}
		if got.LastUpdateByID == nil || *got.LastUpdateByID != actor.ID {
			t.Fatal("update not stamped with the acting user")
		}
	})

	t.Run("rehashes a new password", func(t *testing.T) {
		pw := "newsecret"
		got, err := env.users.Update(ctx, u.ID, UpdateUserInput{Password: &pw}, actor)
		if err != nil {
			t.Fatal(err)
		}
		if !utils.CheckPassword("newsecret", got.Password) {
			t.Fatal("updated password hash does not verify")
		}
	})

	t.Run("rejects an invalid role", func(t *testing.T) {
		_, err := env.users.Update(ctx, u.ID, UpdateUserInput{
			Roles: []domain.Role{"root"},
		}, actor)
		assertCode(t, err, http.StatusBadRequest)
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		email := "actor@example.com"
		_, err := env.users.Update(ctx, u.ID, UpdateUserInput{Email: &email}, actor)
		assertCode(t, err, http.StatusBadRequest)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		name := "Nobody"
		_, err := env.users.Update(ctx, "missing-id", UpdateUserInput{FullName: &name}, actor)
		assertCode(t, err, http.StatusNotFound)
	})
}

func TestUsersBlock(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	actor := env.mustSignup(t, "actor@example.com", "Actor", "secret1")
	u := env.mustSignup(t, "target@example.com", "Target", "secret1")

	got, err := env.users.Block(ctx, u.ID, actor)
	if err != nil {
		t.Fatal(err)
	}
	if got.IsActive {
		t.Fatal("blocked user still active")
	}

	stored, err := env.users.FindOneByID(ctx, u.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.IsActive {
		t.Fatal("block not persisted")
	}
	if stored.LastUpdateByID == nil || *stored.LastUpdateByID != actor.ID {
		t.Fatal("block not stamped with the acting user")
	}
}

func TestUsersFindOne(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	u := env.mustSignup(t, "ana@example.com", "Ana", "secret1")

	if got, err := env.users.FindOneByEmail(ctx, "ANA@example.com"); err != nil || got.ID != u.ID {
		t.Fatalf("lookup by email failed: %v", err)
	}

	_, err := env.users.FindOneByID(ctx, "missing-id")
	if !apperr.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
