package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/Fabirm9/nest-graphql/internal/domain"
	"github.com/Fabirm9/nest-graphql/pkg/apperr"
)

func TestListsCRUD(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.mustSignup(t, "ana@example.com", "Ana", "secret1")

	l, err := env.lists.Create(ctx, CreateListInput{Name: "Weekly groceries"}, owner)
	if err != nil {
		t.Fatal(err)
	}
	if l.UserID != owner.ID {
		t.Fatal("list not attributed to its owner")
	}

	t.Run("rename", func(t *testing.T) {
		got, err := env.lists.Update(ctx, l.ID, UpdateListInput{Name: ptr("Monthly groceries")}, owner)
		if err != nil {
			t.Fatal(err)
		}
		if got.Name != "Monthly groceries" {
			t.Fatalf("name not updated: %q", got.Name)
		}
	})

	t.Run("search", func(t *testing.T) {
		if _, err := env.lists.Create(ctx, CreateListInput{Name: "Camping trip"}, owner); err != nil {
			t.Fatal(err)
		}
		got, err := env.lists.FindAll(ctx, domain.ListQuery{Search: "groceries"}, owner)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 1 || got[0].ID != l.ID {
			t.Fatalf("search returned %d lists", len(got))
		}
	})

	t.Run("count", func(t *testing.T) {
		n, err := env.lists.CountByUser(ctx, owner)
		if err != nil {
			t.Fatal(err)
		}
		if n != 2 {
			t.Fatalf("expected 2 lists, got %d", n)
		}
	})

	t.Run("remove", func(t *testing.T) {
		if _, err := env.lists.Remove(ctx, l.ID, owner); err != nil {
			t.Fatal(err)
		}
		_, err := env.lists.FindOne(ctx, l.ID, owner)
		if !apperr.IsNotFound(err) {
			t.Fatalf("expected not found after remove, got %v", err)
		}
	})
}

func TestListsOwnershipScoping(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ana := env.mustSignup(t, "ana@example.com", "Ana", "secret1")
	bob := env.mustSignup(t, "bob@example.com", "Bob", "secret1")

	l, err := env.lists.Create(ctx, CreateListInput{Name: "Private"}, ana)
	if err != nil {
		t.Fatal(err)
	}

	_, err = env.lists.FindOne(ctx, l.ID, bob)
	assertCode(t, err, http.StatusNotFound)

	_, err = env.lists.Update(ctx, l.ID, UpdateListInput{Name: ptr("Hijacked")}, bob)
	assertCode(t, err, http.StatusNotFound)

	_, err = env.lists.Remove(ctx, l.ID, bob)
	assertCode(t, err, http.StatusNotFound)
}
