package service

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/Fabirm9/nest-graphql/internal/domain"
	"github.com/Fabirm9/nest-graphql/pkg/apperr"
)

func TestItemsCRUD(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.mustSignup(t, "ana@example.com", "Ana", "secret1")

	it, err := env.items.Create(ctx, CreateItemInput{
		Name: "Coffee", Quantity: ptr(340.0), QuantityUnits: ptr("g"),
	}, owner)
	if err != nil {
		t.Fatal(err)
	}
	if it.UserID != owner.ID {
		t.Fatal("item not attributed to its owner")
	}

	t.Run("update merges fields", func(t *testing.T) {
		got, err := env.items.Update(ctx, it.ID, UpdateItemInput{Quantity: ptr(500.0)}, owner)
		if err != nil {
			t.Fatal(err)
		}
		if got.Name != "Coffee" {
			t.Fatalf("name changed unexpectedly: %q", got.Name)
		}
		if got.Quantity != 500 {
			t.Fatalf("quantity not updated: %v", got.Quantity)
		}
		if got.QuantityUnits == nil || *got.QuantityUnits != "g" {
			t.Fatal("units changed unexpectedly")
		}
	})

	t.Run("count", func(t *testing.T) {
		n, err := env.items.CountByUser(ctx, owner)
		if err != nil {
			t.Fatal(err)
		}
		if n != 1 {
			t.Fatalf("expected 1 item, got %d", n)
		}
	})

	t.Run("remove returns the former record", func(t *testing.T) {
		gone, err := env.items.Remove(ctx, it.ID, owner)
		if err != nil {
			t.Fatal(err)
		}
		if gone.ID != it.ID {
			t.Fatal("remove returned a different record")
		}
		_, err = env.items.FindOne(ctx, it.ID, owner)
		if !apperr.IsNotFound(err) {
			t.Fatalf("expected not found after remove, got %v", err)
		}
	})
}

// A row owned by somebody else must be indistinguishable from a missing row.
func TestItemsOwnershipScoping(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ana := env.mustSignup(t, "ana@example.com", "Ana", "secret1")
	bob := env.mustSignup(t, "bob@example.com", "Bob", "secret1")

	it, err := env.items.Create(ctx, CreateItemInput{Name: "Pasta"}, ana)
	if err != nil {
		t.Fatal(err)
	}

	_, err = env.items.FindOne(ctx, it.ID, bob)
	assertCode(t, err, http.StatusNotFound)

	_, err = env.items.Update(ctx, it.ID, UpdateItemInput{Name: ptr("Stolen")}, bob)
	assertCode(t, err, http.StatusNotFound)

	_, err = env.items.Remove(ctx, it.ID, bob)
	assertCode(t, err, http.StatusNotFound)

	all, err := env.items.FindAll(ctx, domain.ListQuery{}, bob)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 0 {
		t.Fatalf("listing leaked %d foreign items", len(all))
	}
}

func TestItemsPaginationAndSearch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.mustSignup(t, "ana@example.com", "Ana", "secret1")

	for i := 0; i < 20; i++ {
		name := fmt.Sprintf("Item %02d", i)
		if i%4 == 0 {
			name = fmt.Sprintf("Apple batch %02d", i)
		}
		if _, err := env.items.Create(ctx, CreateItemInput{Name: name}, owner); err != nil {
			t.Fatal(err)
		}
	}

	full, err := env.items.FindAll(ctx, domain.ListQuery{}, owner)
	if err != nil {
		t.Fatal(err)
	}
	if len(full) != 20 {
		t.Fatalf("expected 20 items, got %d", len(full))
	}

	t.Run("window matches the full ordering", func(t *testing.T) {
		page, err := env.items.FindAll(ctx, domain.ListQuery{Limit: 5, Offset: 10}, owner)
		if err != nil {
			t.Fatal(err)
		}
		if len(page) != 5 {
			t.Fatalf("expected 5 items, got %d", len(page))
		}
		for i, it := range page {
			if it.ID != full[10+i].ID {
				t.Fatalf("page row %d out of order: %s vs %s", i, it.ID, full[10+i].ID)
			}
		}
	})

	t.Run("adjacent windows are disjoint and contiguous", func(t *testing.T) {
		a, err := env.items.FindAll(ctx, domain.ListQuery{Limit: 7, Offset: 0}, owner)
		if err != nil {
			t.Fatal(err)
		}
		b, err := env.items.FindAll(ctx, domain.ListQuery{Limit: 7, Offset: 7}, owner)
		if err != nil {
			t.Fatal(err)
		}
		seen := map[string]bool{}
		for _, it := range append(a, b...) {
			if seen[it.ID] {
				t.Fatalf("item %s appeared in both windows", it.ID)
			}
			seen[it.ID] = true
		}
		if len(seen) != 14 {
			t.Fatalf("expected 14 distinct items across windows, got %d", len(seen))
		}
	})

	t.Run("search is case-insensitive substring", func(t *testing.T) {
		got, err := env.items.FindAll(ctx, domain.ListQuery{Search: "aPpLe"}, owner)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 5 {
			t.Fatalf("expected 5 apple batches, got %d", len(got))
		}
	})

	t.Run("zero limit means unrestricted", func(t *testing.T) {
		got, err := env.items.FindAll(ctx, domain.ListQuery{Limit: 0, Offset: 5}, owner)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 15 {
			t.Fatalf("expected the 15 remaining items, got %d", len(got))
		}
	})
}
